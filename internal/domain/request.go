package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxRequestLength - в символах, не в байтах
const MaxRequestLength = 1000

// Request - один запрос пользователя, живет ровно один цикл запрос/ответ
type Request struct {
	ID      string
	Text    string
	AssetID string // опционально, если вызывающий уже знает идентификатор
}

func NewRequest(text, assetID string) Request {
	return Request{
		ID:      uuid.NewString(),
		Text:    text,
		AssetID: assetID,
	}
}

func (r *Request) Validate() error {
	if strings.TrimSpace(r.Text) == "" && strings.TrimSpace(r.AssetID) == "" {
		return ErrEmptyRequest
	}
	if utf8.RuneCountInString(strings.TrimSpace(r.Text)) > MaxRequestLength {
		return ErrRequestTooLong
	}
	return nil
}

func (r *Request) Sanitize() {
	r.Text = strings.TrimSpace(r.Text)
	r.AssetID = strings.TrimSpace(r.AssetID)
	r.Text = truncateRunes(r.Text, MaxRequestLength)
}

func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
