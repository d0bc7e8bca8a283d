package telegram

import (
	"html"
	"strings"
	"unicode/utf8"
)

const MaxMessageLength = 4096

const resultHeader = "<b>📊 Result:</b>"

// FormatResult - тот же заголовок, что в консоли; текст экранируем, но не меняем
func FormatResult(text string) string {
	var sb strings.Builder
	sb.WriteString(resultHeader)
	sb.WriteString("\n")
	sb.WriteString(html.EscapeString(text))
	return sb.String()
}

func SplitMessage(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var messages []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			messages = append(messages, text)
			break
		}

		splitPoint := findSafeSplitPoint(text, maxLen)
		if splitPoint <= 0 || splitPoint > len(text) {
			splitPoint = maxLen
		}

		messages = append(messages, text[:splitPoint])
		text = text[splitPoint:]
	}

	return messages
}

// режем по переводу строки, строки списка цен не рвем
func findSafeSplitPoint(text string, maxLen int) int {
	for i := maxLen - 1; i > 0; i-- {
		if text[i] == '\n' {
			return i + 1
		}
	}
	for i := maxLen - 1; i > 0; i-- {
		if text[i] == ' ' {
			return i + 1
		}
	}
	return hardSplitPoint(text, maxLen)
}

// maxEntityLength - самая длинная сущность от html.EscapeString: &#34; &#39;
const maxEntityLength = 5

// hardSplitPoint режет без разделителя: не посреди символа UTF-8 и не внутри &amp;
func hardSplitPoint(text string, maxLen int) int {
	p := maxLen
	for p > 0 && !utf8.RuneStart(text[p]) {
		p--
	}

	if amp := strings.LastIndexByte(text[:p], '&'); amp > 0 && p-amp < maxEntityLength {
		if !strings.Contains(text[amp:p], ";") {
			p = amp
		}
	}

	if p == 0 {
		return maxLen
	}
	return p
}
