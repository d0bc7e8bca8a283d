package tools

import (
	"context"

	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
)

type MockSource struct {
	TopTickersFunc func(ctx context.Context, limit int) ([]domain.AssetRecord, error)
	TickerFunc     func(ctx context.Context, id string) (*domain.AssetRecord, error)

	TopCalls    int
	TickerCalls int
	LastLimit   int
	LastID      string
}

func (m *MockSource) TopTickers(ctx context.Context, limit int) ([]domain.AssetRecord, error) {
	m.TopCalls++
	m.LastLimit = limit
	if m.TopTickersFunc != nil {
		return m.TopTickersFunc(ctx, limit)
	}
	return nil, nil
}

func (m *MockSource) Ticker(ctx context.Context, id string) (*domain.AssetRecord, error) {
	m.TickerCalls++
	m.LastID = id
	if m.TickerFunc != nil {
		return m.TickerFunc(ctx, id)
	}
	return nil, domain.ErrAssetNotFound
}

var _ PriceSource = (*MockSource)(nil)
