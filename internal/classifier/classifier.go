// Package classifier решает, какой инструмент нужен запросу.
// Classify детерминирован для Rules; модель спрятана за тем же интерфейсом.
package classifier

import (
	"context"

	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
)

const HelpReply = "I can help with cryptocurrency prices. Ask me for all coin prices, " +
	"or for the price of one coin by its ID (e.g., 90 for BTC, 80 for ETH)."

type Classifier interface {
	Classify(ctx context.Context, req domain.Request) (domain.Selection, error)
}
