// Package console - консольное меню и вывод результата.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/kitbuilder587/crypto-price-bot/internal/dispatcher"
	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, req domain.Request) (*dispatcher.Outcome, error)
}

type Console struct {
	in         *bufio.Reader
	out        io.Writer
	dispatcher Dispatcher
	logger     *zap.Logger
}

func New(in io.Reader, out io.Writer, d Dispatcher, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		in:         bufio.NewReader(in),
		out:        out,
		dispatcher: d,
		logger:     logger,
	}
}

// RunMenu - одна итерация меню: выбор, запрос, результат
func (c *Console) RunMenu(ctx context.Context) error {
	fmt.Fprintln(c.out, Banner)
	fmt.Fprintln(c.out, OptionList)
	fmt.Fprintln(c.out, OptionByID)

	input, err := c.prompt(ChoicePrompt)
	if err != nil {
		return err
	}

	choice, err := ParseChoice(input)
	if errors.Is(err, ErrInvalidChoice) {
		// никаких внешних вызовов, выходим без ошибки
		fmt.Fprintln(c.out, InvalidChoiceText)
		return nil
	}

	var req domain.Request
	switch choice {
	case ChoiceList:
		req = domain.NewRequest(ListRequestText, "")
	case ChoiceByID:
		id, err := c.prompt(IDPrompt)
		if err != nil {
			return err
		}
		req = domain.NewRequest(AssetRequestText(id), id)
	}

	return c.Ask(ctx, req)
}

// Ask отправляет запрос диспетчеру и печатает результат
func (c *Console) Ask(ctx context.Context, req domain.Request) error {
	out, err := c.dispatcher.Dispatch(ctx, req)
	if err != nil {
		c.logger.Error("dispatch failed", zap.String("request_id", req.ID), zap.Error(err))
		return err
	}
	return Render(c.out, out.Text())
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	// EOF без перевода строки - это просто последняя строка ввода
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
