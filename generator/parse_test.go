package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseResponse(t *testing.T) {
	type want struct {
		markup string
		readme string
	}
	tests := []struct {
		name string
		text string
		want want
	}{
		{
			"html and markdown fences",
			"Here you go:\n```html\n<!DOCTYPE html>\n<html></html>\n```\nAnd docs:\n```markdown\n# My App\n```\n",
			want{"<!DOCTYPE html>\n<html></html>", "# My App"},
		},
		{
			"md fence variant",
			"```html\n<!DOCTYPE html>\n<html></html>\n```\n```md\n# Readme\n```",
			want{"<!DOCTYPE html>\n<html></html>", "# Readme"},
		},
		{
			"bare document without fences",
			"Sure!\n<!DOCTYPE html>\n<html><body>hi</body></html>\nEnjoy.",
			want{"<!DOCTYPE html>\n<html><body>hi</body></html>", ""},
		},
		{
			"unterminated fence falls back to the bare document",
			"```html\n<!DOCTYPE html><html></html>",
			want{"<!DOCTYPE html><html></html>", ""},
		},
		{
			"no document at all",
			"I cannot help with that.",
			want{"", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup, readme := parseResponse(tt.text)
			assert.Equal(t, tt.want.markup, markup)
			assert.Equal(t, tt.want.readme, readme)
		})
	}
}
