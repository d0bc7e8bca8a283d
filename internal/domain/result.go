package domain

// ToolResult - результат инструмента: либо Success(text), либо Failure(reason).
// Наружу из диспетчера уходит только текст, AssetRecord туда не попадает.
type ToolResult struct {
	ok   bool
	text string
}

func Success(text string) ToolResult {
	return ToolResult{ok: true, text: text}
}

func Failure(reason string) ToolResult {
	return ToolResult{ok: false, text: reason}
}

func (r ToolResult) OK() bool { return r.ok }

// Text возвращает видимый пользователю текст для обоих вариантов
func (r ToolResult) Text() string { return r.text }

func (r ToolResult) Status() string {
	if r.ok {
		return "success"
	}
	return "failure"
}
