package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/kitbuilder587/crypto-price-bot/internal/console"
	"github.com/kitbuilder587/crypto-price-bot/internal/dispatcher"
	"github.com/kitbuilder587/crypto-price-bot/internal/domain"
)

const (
	helpText = "💹 Real-Time Crypto Price Checker\n\n" +
		"/prices - prices of the top 10 coins\n" +
		"/price <id> - price of one coin (e.g. /price 90 for BTC, /price 80 for ETH)\n\n" +
		"Or just ask in your own words."
	unknownCommandText = "Unknown command. Use /help to see what I can do."
	missingIDText      = "Usage: /price <id>, e.g. /price 90"
	errorText          = "Something went wrong. Please try again later."
)

type Dispatcher interface {
	Dispatch(ctx context.Context, req domain.Request) (*dispatcher.Outcome, error)
}

type Sender interface {
	Send(chatID int64, text string) error
}

type Handler struct {
	dispatcher Dispatcher
	sender     Sender
	logger     *zap.Logger
}

func NewHandler(d Dispatcher, sender Sender, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{dispatcher: d, sender: sender, logger: logger}
}

func (h *Handler) HandleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg == nil || msg.Chat == nil {
		return
	}

	var userID int64
	if msg.From != nil {
		userID = msg.From.ID
	}
	cmd := ParseCommand(msg.Text)

	h.logger.Info("received message",
		zap.Int64("user_id", userID),
		zap.Int("command", int(cmd.Kind)),
	)

	chatID := msg.Chat.ID
	switch cmd.Kind {
	case CommandStart, CommandHelp:
		h.send(chatID, helpText)
	case CommandPrices:
		h.dispatch(ctx, chatID, domain.NewRequest(console.ListRequestText, ""))
	case CommandPrice:
		if cmd.Arg == "" {
			h.send(chatID, missingIDText)
			return
		}
		h.dispatch(ctx, chatID, domain.NewRequest(console.AssetRequestText(cmd.Arg), cmd.Arg))
	case CommandQuery:
		h.dispatch(ctx, chatID, domain.NewRequest(cmd.Arg, ""))
	default:
		h.send(chatID, unknownCommandText)
	}
}

func (h *Handler) dispatch(ctx context.Context, chatID int64, req domain.Request) {
	out, err := h.dispatcher.Dispatch(ctx, req)
	if err != nil {
		h.logger.Error("dispatch failed", zap.String("request_id", req.ID), zap.Error(err))
		h.send(chatID, mapErrorToMessage(err))
		return
	}

	for _, part := range SplitMessage(FormatResult(out.Text()), MaxMessageLength) {
		h.send(chatID, part)
	}
}

func (h *Handler) send(chatID int64, text string) {
	if err := h.sender.Send(chatID, text); err != nil {
		h.logger.Warn("send failed", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

func mapErrorToMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyRequest):
		return "Empty request. Ask me about a coin price."
	case errors.Is(err, domain.ErrRequestTooLong):
		return "Request is too long."
	default:
		return errorText
	}
}
