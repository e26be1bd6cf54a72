package generator

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are an expert web developer who creates clean, production-ready code."

const promptRequirements = `REQUIREMENTS:
1. Create a single HTML file (index.html) with embedded CSS and JavaScript
2. Use modern, semantic HTML5
3. Include responsive design (mobile-friendly)
4. Use Bootstrap 5 from CDN for styling (unless specified otherwise)
5. Handle errors gracefully
6. Ensure all validation checks can pass
7. Include proper meta tags and title

OUTPUT FORMAT:
Provide the complete application inside a single ` + "```html" + ` fenced block,
followed by a README inside a single ` + "```markdown" + ` fenced block.
Generate ONLY production-ready, working code. No placeholders, no TODOs.`

const attachmentInlineLimit = 1000

// buildPrompt assembles the generation instruction from the brief, the
// acceptance checks, any decoded attachments and, on round 2, the currently
// published markup so the provider revises rather than regenerates.
func buildPrompt(brief string, checks []string, attachments []*decodedAttachment, priorMarkup string) string {
	var b strings.Builder

	if priorMarkup == "" {
		b.WriteString("Generate a complete, production-ready single-page web application based on the following requirements:\n\n")
	} else {
		b.WriteString("Revise the existing single-page web application below so it satisfies the updated requirements. Keep working behavior; change only what the brief requires.\n\n")
	}

	b.WriteString("BRIEF:\n")
	b.WriteString(brief)
	b.WriteString("\n")

	if len(checks) > 0 {
		b.WriteString("\nVALIDATION CHECKS:\n")
		for _, check := range checks {
			fmt.Fprintf(&b, "- %s\n", check)
		}
	}

	if len(attachments) > 0 {
		b.WriteString("\nATTACHMENTS:\n")
		for _, att := range attachments {
			fmt.Fprintf(&b, "- %s (%s)\n", att.Name, att.MimeType)
			if att.textual() && len(att.Content) <= attachmentInlineLimit {
				fmt.Fprintf(&b, "  Content: %s\n", att.Content)
			}
		}
	}

	if priorMarkup != "" {
		b.WriteString("\nCURRENT index.html:\n```html\n")
		b.WriteString(priorMarkup)
		b.WriteString("\n```\n")
	}

	b.WriteString("\n")
	b.WriteString(promptRequirements)
	return b.String()
}
