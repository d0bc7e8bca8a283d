package llm

import (
	"context"
	"errors"
)

var (
	ErrAuthFailed    = errors.New("authentication failed")
	ErrRequestFailed = errors.New("request failed")
	ErrEmptyResponse = errors.New("empty response")
	ErrRateLimit     = errors.New("rate limit exceeded")
)

// ToolSpec - описание инструмента для function calling
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any // JSON schema
}

// ToolCall - вызов инструмента, который запросила модель. Arguments - сырой JSON.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

type Completion struct {
	Content   string
	ToolCalls []ToolCall
}

// ToolCaller - модель, умеющая выбирать инструменты
type ToolCaller interface {
	CompleteWithTools(ctx context.Context, system, prompt string, tools []ToolSpec) (*Completion, error)
}
