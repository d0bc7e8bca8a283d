package telegram

import (
	"strings"
)

type CommandKind int

const (
	CommandQuery CommandKind = iota // обычный текст
	CommandStart
	CommandHelp
	CommandPrices
	CommandPrice
	CommandUnknown
)

type Command struct {
	Kind CommandKind
	Arg  string
}

// /prices -> список, /price 90 -> одна монета, обычный текст -> свободный запрос
func ParseCommand(text string) Command {
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "/") {
		return Command{Kind: CommandQuery, Arg: text}
	}

	parts := strings.SplitN(text, " ", 2)
	command := strings.ToLower(parts[0])
	// в группах команда приходит как /price@botname
	if i := strings.Index(command, "@"); i >= 0 {
		command = command[:i]
	}

	var rest string
	if len(parts) > 1 {
		rest = normalizeSpaces(parts[1])
	}

	switch command {
	case "/start":
		return Command{Kind: CommandStart}
	case "/help":
		return Command{Kind: CommandHelp}
	case "/prices":
		return Command{Kind: CommandPrices}
	case "/price":
		return Command{Kind: CommandPrice, Arg: rest}
	default:
		return Command{Kind: CommandUnknown, Arg: text}
	}
}

func normalizeSpaces(s string) string {
	fields := strings.Fields(s)
	return strings.Join(fields, " ")
}
