package classifier

import (
	"context"
	"regexp"
	"strings"

	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
)

var (
	tokenRe = regexp.MustCompile(`[A-Za-z0-9_-]+`)
	hashRe  = regexp.MustCompile(`#(\d+)\b`)
	digitRe = regexp.MustCompile(`^\d+$`)
)

var (
	// запрос на весь список; "prices" и "coins" просто про цены: "prices of coin with id 90" - одна монета
	listWords = []string{"all", "top", "list", "every", "everything", "market"}

	priceWords = []string{
		"price", "prices", "cost", "costs", "worth", "value", "quote", "rate",
		"coin", "coins", "crypto", "cryptocurrency", "cryptocurrencies", "token", "ticker", "usd",
	}
)

// Rules - классификатор по ключевым словам, без модели
type Rules struct {
	Reply string
}

func NewRules() *Rules {
	return &Rules{Reply: HelpReply}
}

func (r *Rules) Classify(_ context.Context, req domain.Request) (domain.Selection, error) {
	return r.decide(req), nil
}

func (r *Rules) decide(req domain.Request) domain.Selection {
	if id := strings.TrimSpace(req.AssetID); id != "" {
		return domain.AssetByID(id)
	}

	tokens := tokenRe.FindAllString(req.Text, -1)
	lower := make([]string, len(tokens))
	for i, t := range tokens {
		lower[i] = strings.ToLower(t)
	}

	wantsList := containsAny(lower, listWords)
	aboutPrice := wantsList || containsAny(lower, priceWords)
	id := extractID(req.Text, tokens, lower, aboutPrice)

	switch {
	case id != "" && wantsList:
		// неоднозначно - берем более широкий вариант
		return domain.ListTopAssets()
	case id != "":
		return domain.AssetByID(id)
	case aboutPrice:
		return domain.ListTopAssets()
	default:
		return domain.NoTool(r.Reply)
	}
}

// extractID ищет "id 90", "ID: 90", "#90", или одиночное число рядом со словами про цену.
// id у coinlore числовые, "id of bitcoin" id не дает.
func extractID(text string, tokens, lower []string, aboutPrice bool) string {
	for i, t := range lower {
		if t == "id" && i+1 < len(tokens) && digitRe.MatchString(tokens[i+1]) {
			return tokens[i+1]
		}
	}

	if m := hashRe.FindStringSubmatch(text); len(m) > 1 {
		return m[1]
	}

	if !aboutPrice {
		return ""
	}

	var found string
	for _, t := range tokens {
		if !digitRe.MatchString(t) {
			continue
		}
		if found != "" && found != t {
			// несколько разных чисел - непонятно, какое из них id
			return ""
		}
		found = t
	}
	return found
}

func containsAny(tokens, words []string) bool {
	for _, t := range tokens {
		for _, w := range words {
			if t == w {
				return true
			}
		}
	}
	return false
}

var _ Classifier = (*Rules)(nil)
