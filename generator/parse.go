package generator

import "strings"

// parseResponse separates the markup document and the README from a provider
// response. Either result may be empty; the caller decides the fallback.
func parseResponse(text string) (markup, readme string) {
	markup = extractFence(text, "```html")
	if markup == "" {
		markup = extractDocument(text)
	}

	readme = extractFence(text, "```markdown")
	if readme == "" {
		readme = extractFence(text, "```md")
	}
	return markup, readme
}

// extractFence returns the trimmed body of the first fenced block opened by
// marker, or "" when there is no complete block.
func extractFence(text, marker string) string {
	start := strings.Index(text, marker)
	if start < 0 {
		return ""
	}
	start += len(marker)
	end := strings.Index(text[start:], "```")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(text[start : start+end])
}

// extractDocument pulls a bare <!DOCTYPE html>...</html> document out of
// unfenced response text.
func extractDocument(text string) string {
	start := strings.Index(text, "<!DOCTYPE html>")
	if start < 0 {
		return ""
	}
	end := strings.Index(text[start:], "</html>")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(text[start : start+end+len("</html>")])
}
