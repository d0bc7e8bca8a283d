package console

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Banner       = "💹 Real-Time Crypto Price Checker"
	OptionList   = "1. Get All Coin Prices"
	OptionByID   = "2. Get Price of Specific Coin"
	ChoicePrompt = "Enter 1 or 2: "
	IDPrompt     = "Enter coin ID (e.g., 90 for BTC, 80 for ETH): "

	InvalidChoiceText = "Invalid choice."

	ListRequestText = "Get me all coin prices."
)

var ErrInvalidChoice = errors.New("invalid choice")

type Choice int

const (
	ChoiceList Choice = iota + 1
	ChoiceByID
)

// ParseChoice - допустимы только "1" и "2"
func ParseChoice(input string) (Choice, error) {
	switch strings.TrimSpace(input) {
	case "1":
		return ChoiceList, nil
	case "2":
		return ChoiceByID, nil
	default:
		return 0, ErrInvalidChoice
	}
}

func AssetRequestText(id string) string {
	return fmt.Sprintf("What is the price of the coin with ID %s?", id)
}
