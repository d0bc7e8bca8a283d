package tools

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
)

type ListTopAssets struct {
	source PriceSource
	logger *zap.Logger
}

func NewListTopAssets(source PriceSource, logger *zap.Logger) *ListTopAssets {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListTopAssets{source: source, logger: logger}
}

func (t *ListTopAssets) Name() string { return domain.ToolListTopAssets }

func (t *ListTopAssets) Description() string {
	return "Get current USD prices of the top 10 cryptocurrencies, with their ids."
}

func (t *ListTopAssets) Parameters() map[string]any {
	return map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
}

// Call - аргументов нет, args игнорируются
func (t *ListTopAssets) Call(ctx context.Context, _ map[string]string) domain.ToolResult {
	assets, err := t.source.TopTickers(ctx, TopAssetsLimit)
	if err != nil {
		t.logger.Warn("list top assets failed", zap.Error(err))
		return domain.Failure(FailListText)
	}

	if len(assets) > TopAssetsLimit {
		assets = assets[:TopAssetsLimit]
	}

	// порядок источника не трогаем
	lines := make([]string, 0, len(assets))
	for _, a := range assets {
		lines = append(lines, FormatListLine(a))
	}

	return domain.Success(strings.Join(lines, "\n"))
}

func FormatListLine(a domain.AssetRecord) string {
	return fmt.Sprintf("%s (id: %s): %s", a.Symbol, a.ID, a.PriceUSD.Dollars())
}
