package tools

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
)

type AssetByID struct {
	source PriceSource
	logger *zap.Logger
}

func NewAssetByID(source PriceSource, logger *zap.Logger) *AssetByID {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetByID{source: source, logger: logger}
}

func (t *AssetByID) Name() string { return domain.ToolAssetByID }

func (t *AssetByID) Description() string {
	return "Get the current USD price of one cryptocurrency by its CoinLore id (e.g. 90 for BTC, 80 for ETH)."
}

func (t *AssetByID) Parameters() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{
				"type":        "string",
				"description": "CoinLore coin id",
			},
		},
		"required": []string{"id"},
	}
}

// Call: неизвестный id и сетевая ошибка дают один и тот же текст,
// источник их никак не различает
func (t *AssetByID) Call(ctx context.Context, args map[string]string) domain.ToolResult {
	id := strings.TrimSpace(args["id"])
	if id == "" {
		t.logger.Warn("asset by id called without id")
		return domain.Failure(FailAssetText)
	}

	asset, err := t.source.Ticker(ctx, id)
	if err != nil {
		t.logger.Warn("asset by id failed", zap.String("id", id), zap.Error(err))
		return domain.Failure(FailAssetText)
	}

	return domain.Success(FormatAssetLine(*asset))
}

func FormatAssetLine(a domain.AssetRecord) string {
	return fmt.Sprintf("%s (%s) current price is %s", a.Name, a.Symbol, a.PriceUSD.Dollars())
}
