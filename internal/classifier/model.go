package classifier

import (
	"context"
	"strings"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
	"github.com/kitbuilder587/crypto-price-bot/internal/llm"
)

const SystemPrompt = "You are a crypto assistant. Use tools to fetch real-time prices for cryptocurrencies. " +
	"Use 'get_all_coin_prices' to get all prices, or 'get_coin_price_by_id' to get one coin's price by id. " +
	"Call at most one tool. If the request is not about cryptocurrency prices, answer briefly without tools."

// Model - классификатор на модели с function calling.
// Если модель недоступна, решение принимает fallback.
type Model struct {
	caller   llm.ToolCaller
	specs    []llm.ToolSpec
	fallback Classifier
	logger   *zap.Logger
}

func NewModel(caller llm.ToolCaller, specs []llm.ToolSpec, fallback Classifier, logger *zap.Logger) *Model {
	if fallback == nil {
		fallback = NewRules()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		caller:   caller,
		specs:    specs,
		fallback: fallback,
		logger:   logger,
	}
}

func (m *Model) Classify(ctx context.Context, req domain.Request) (domain.Selection, error) {
	// id уже известен - модель не нужна
	if id := strings.TrimSpace(req.AssetID); id != "" {
		return domain.AssetByID(id), nil
	}

	completion, err := m.caller.CompleteWithTools(ctx, SystemPrompt, req.Text, m.specs)
	if err != nil {
		m.logger.Warn("model classification failed, using fallback",
			zap.String("request_id", req.ID),
			zap.Error(err),
		)
		return m.fallback.Classify(ctx, req)
	}

	return SelectionFromCompletion(completion), nil
}

// SelectionFromCompletion сводит ответ модели к одному выбору.
// Оба инструмента или разные id - это неоднозначность, берем список.
func SelectionFromCompletion(c *llm.Completion) domain.Selection {
	var (
		wantsList bool
		ids       []string
	)

	for _, call := range c.ToolCalls {
		switch call.Name {
		case domain.ToolListTopAssets:
			wantsList = true
		case domain.ToolAssetByID:
			ids = appendUnique(ids, argumentID(call.Arguments))
		}
	}

	switch {
	case wantsList:
		return domain.ListTopAssets()
	case len(ids) == 1:
		// пустой id нормализует диспетчер
		return domain.AssetByID(ids[0])
	case len(ids) > 1:
		return domain.ListTopAssets()
	}

	reply := strings.TrimSpace(c.Content)
	if reply == "" {
		reply = HelpReply
	}
	return domain.NoTool(reply)
}

// модель иногда присылает id числом, gjson отдает его текстом без потерь
func argumentID(args string) string {
	if !gjson.Valid(args) {
		return ""
	}
	return strings.TrimSpace(gjson.Get(args, "id").String())
}

func appendUnique(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

var _ Classifier = (*Model)(nil)
