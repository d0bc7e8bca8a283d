package console

import (
	"fmt"
	"io"
)

const ResultHeader = "📊 Result:"

// Render печатает заголовок и текст как есть, без изменений содержимого и переносов
func Render(w io.Writer, text string) error {
	_, err := fmt.Fprintf(w, "\n%s\n%s\n", ResultHeader, text)
	return err
}
