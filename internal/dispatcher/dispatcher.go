// Package dispatcher связывает запрос, классификатор и инструменты.
// Один запрос - один выбор - не больше одного внешнего вызова.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kitbuilder587/crypto-price-bot/internal/classifier"
	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
	"github.com/kitbuilder587/crypto-price-bot/internal/metrics"
	"github.com/kitbuilder587/crypto-price-bot/internal/tools"
)

var ErrAlreadyDispatched = errors.New("request already dispatched")

type State int

const (
	AwaitingRequest State = iota
	ToolSelected
)

func (s State) String() string {
	if s == ToolSelected {
		return "tool_selected"
	}
	return "awaiting_request"
}

type Outcome struct {
	Selection domain.Selection
	Result    domain.ToolResult
	Duration  time.Duration
}

// Text - то, что увидит пользователь
func (o *Outcome) Text() string { return o.Result.Text() }

type Dispatcher struct {
	classifier classifier.Classifier
	registry   *tools.Registry
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

func New(c classifier.Classifier, registry *tools.Registry, logger *zap.Logger, m *metrics.Metrics) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		classifier: c,
		registry:   registry,
		logger:     logger,
		metrics:    m,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, req domain.Request) (*Outcome, error) {
	return d.NewTurn(req).Run(ctx)
}

// Turn - жизненный цикл одного запроса: AwaitingRequest -> ToolSelected
type Turn struct {
	d     *Dispatcher
	req   domain.Request
	state State
}

func (d *Dispatcher) NewTurn(req domain.Request) *Turn {
	return &Turn{d: d, req: req, state: AwaitingRequest}
}

func (t *Turn) State() State { return t.state }

func (t *Turn) Run(ctx context.Context) (*Outcome, error) {
	if t.state != AwaitingRequest {
		return nil, ErrAlreadyDispatched
	}
	start := time.Now()

	req := t.req
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req.Sanitize()

	sel, err := t.d.classifier.Classify(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("classify request: %w", err)
	}
	sel = normalize(sel)
	t.state = ToolSelected

	t.d.metrics.RecordDispatch(sel.Kind.String())
	t.d.logger.Info("request classified",
		zap.String("request_id", req.ID),
		zap.String("selection", sel.Kind.String()),
		zap.String("asset_id", sel.AssetID),
	)

	if sel.Kind == domain.SelectNone {
		return &Outcome{
			Selection: sel,
			Result:    domain.Success(sel.Reply),
			Duration:  time.Since(start),
		}, nil
	}

	tool, err := t.d.registry.Get(sel.ToolName())
	if err != nil {
		return nil, err
	}

	// ошибки инструмента не оборачиваем, текст уходит как есть
	result := tool.Call(ctx, sel.Args())
	t.d.metrics.RecordToolCall(tool.Name(), result.Status())

	outcome := &Outcome{
		Selection: sel,
		Result:    result,
		Duration:  time.Since(start),
	}

	t.d.logger.Info("tool finished",
		zap.String("request_id", req.ID),
		zap.String("tool", tool.Name()),
		zap.String("status", result.Status()),
		zap.Duration("duration", outcome.Duration),
	)

	return outcome, nil
}

// normalize: id без значения не извлечен, значит это общий запрос о ценах
func normalize(sel domain.Selection) domain.Selection {
	if sel.Kind == domain.SelectAssetByID {
		sel.AssetID = strings.TrimSpace(sel.AssetID)
		if sel.AssetID == "" {
			return domain.ListTopAssets()
		}
	}
	return sel
}
