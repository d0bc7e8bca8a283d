package coinlore

import (
	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
)

// ticker - запись в формате CoinLore. id приходит строкой, но на всякий
// случай принимаем и число, поэтому тот же Decimal.
type ticker struct {
	ID       domain.Decimal `json:"id"`
	Symbol   string         `json:"symbol"`
	Name     string         `json:"name"`
	PriceUSD domain.Decimal `json:"price_usd"`
}

func (t ticker) record() domain.AssetRecord {
	return domain.AssetRecord{
		ID:       t.ID.String(),
		Symbol:   t.Symbol,
		Name:     t.Name,
		PriceUSD: t.PriceUSD,
	}
}
