// Package tools - адаптеры над источником цен. Каждый инструмент превращает
// ответ источника в готовую строку; ошибки наружу не отдаются, только
// фиксированный текст.
package tools

import (
	"context"

	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
	"github.com/kitbuilder587/crypto-price-bot/internal/llm"
)

const (
	FailListText  = "Failed to fetch coin prices."
	FailAssetText = "Failed to fetch coin price."

	TopAssetsLimit = 10
)

// PriceSource - то, что умеет coinlore.Client
type PriceSource interface {
	TopTickers(ctx context.Context, limit int) ([]domain.AssetRecord, error)
	Ticker(ctx context.Context, id string) (*domain.AssetRecord, error)
}

type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]any
	Call(ctx context.Context, args map[string]string) domain.ToolResult
}

func Spec(t Tool) llm.ToolSpec {
	return llm.ToolSpec{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters:  t.Parameters(),
	}
}
