package buffer

// TextBuffer accumulates rendered output as an append-only sequence of
// parts. The only mutation besides appending is a single trailing-newline
// trim at document close.
type TextBuffer struct {
	parts []string
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends text to the buffer.
func (tb *TextBuffer) Write(text string) {
	tb.parts = append(tb.parts, text)
}

// Len returns the total byte length of the buffer.
func (tb *TextBuffer) Len() int {
	total := 0
	for _, p := range tb.parts {
		total += len(p)
	}
	return total
}

// TrailingNewlineCount counts trailing newline characters in the buffer.
func (tb *TextBuffer) TrailingNewlineCount() int {
	count := 0
	for i := len(tb.parts) - 1; i >= 0; i-- {
		part := tb.parts[i]
		for j := len(part) - 1; j >= 0; j-- {
			if part[j] == '\n' {
				count++
			} else {
				return count
			}
		}
	}
	return count
}

// TrimTrailingNewline removes exactly one trailing '\n' if the buffer
// ends with one.
func (tb *TextBuffer) TrimTrailingNewline() {
	for i := len(tb.parts) - 1; i >= 0; i-- {
		part := tb.parts[i]
		if part == "" {
			continue
		}
		if part[len(part)-1] == '\n' {
			tb.parts[i] = part[:len(part)-1]
		}
		return
	}
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	totalLen := 0
	for _, p := range tb.parts {
		totalLen += len(p)
	}
	result := make([]byte, 0, totalLen)
	for _, p := range tb.parts {
		result = append(result, []byte(p)...)
	}
	return string(result)
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
}
