package mock

import (
	"context"
	"time"

	"github.com/kitbuilder587/crypto-price-bot/internal/llm"
)

type Client struct {
	Response  string
	ToolCalls []llm.ToolCall
	Error     error
	Delay     time.Duration

	CallCount  int
	LastSystem string
	LastPrompt string
	LastTools  []llm.ToolSpec
	AllCalls   []LLMCall
}

type LLMCall struct {
	System string
	Prompt string
}

func New() *Client {
	return &Client{
		Response: "I can look up cryptocurrency prices for you.",
	}
}

func (c *Client) WithResponse(response string) *Client {
	c.Response = response
	return c
}

// WithToolCall добавляет вызов инструмента в ответ модели
func (c *Client) WithToolCall(name, arguments string) *Client {
	c.ToolCalls = append(c.ToolCalls, llm.ToolCall{
		ID:        "call_" + name,
		Name:      name,
		Arguments: arguments,
	})
	return c
}

func (c *Client) WithError(err error) *Client {
	c.Error = err
	return c
}

func (c *Client) WithDelay(delay time.Duration) *Client {
	c.Delay = delay
	return c
}

func (c *Client) CompleteWithTools(ctx context.Context, system, prompt string, tools []llm.ToolSpec) (*llm.Completion, error) {
	c.LastTools = tools
	if err := c.record(ctx, system, prompt); err != nil {
		return nil, err
	}

	out := &llm.Completion{Content: c.Response}
	out.ToolCalls = append(out.ToolCalls, c.ToolCalls...)
	return out, nil
}

func (c *Client) record(ctx context.Context, system, prompt string) error {
	c.CallCount++
	c.LastSystem = system
	c.LastPrompt = prompt
	c.AllCalls = append(c.AllCalls, LLMCall{System: system, Prompt: prompt})

	if c.Delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.Delay):
		}
	}

	return c.Error
}

func (c *Client) Reset() {
	c.CallCount = 0
	c.LastSystem = ""
	c.LastPrompt = ""
	c.LastTools = nil
	c.AllCalls = nil
}

var _ llm.ToolCaller = (*Client)(nil)
