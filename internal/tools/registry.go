package tools

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kitbuilder587/crypto-price-bot/internal/llm"
)

var (
	ErrUnknownTool   = errors.New("unknown tool")
	ErrDuplicateTool = errors.New("tool already registered")
)

// Registry хранит инструменты в порядке регистрации
type Registry struct {
	tools []Tool
	index map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]Tool)}
}

// NewDefaultRegistry собирает оба инструмента над источником цен
func NewDefaultRegistry(source PriceSource, logger *zap.Logger) *Registry {
	r := NewRegistry()
	// имена фиксированы, дубликатов тут быть не может
	_ = r.Register(NewListTopAssets(source, logger))
	_ = r.Register(NewAssetByID(source, logger))
	return r
}

func (r *Registry) Register(t Tool) error {
	if _, ok := r.index[t.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name())
	}
	r.tools = append(r.tools, t)
	r.index[t.Name()] = t
	return nil
}

func (r *Registry) Get(name string) (Tool, error) {
	t, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return t, nil
}

func (r *Registry) Names() []string {
	names := make([]string, len(r.tools))
	for i, t := range r.tools {
		names[i] = t.Name()
	}
	return names
}

// Specs - описания для function calling
func (r *Registry) Specs() []llm.ToolSpec {
	specs := make([]llm.ToolSpec, len(r.tools))
	for i, t := range r.tools {
		specs[i] = Spec(t)
	}
	return specs
}
