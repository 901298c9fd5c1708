package model

import (
	markdown "github.com/MichaelMure/go-term-markdown"
	"github.com/charmbracelet/glamour"
)

func renderMarkdown(md string, width int) (string, error) {
	if width < 40 {
		width = 40
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return "", err
	}

	return r.Render(md)
}

func renderMarkdownToANSI(md string, width int) string {
	if width < 40 {
		width = 40
	}
	return string(markdown.Render(md, width-4, 2))
}

// renderPreview never fails: glamour first, go-term-markdown if it errors.
func renderPreview(title, content string, width int) string {
	md := "# " + title + "\n\n" + content
	if out, err := renderMarkdown(md, width); err == nil {
		return out
	}
	return renderMarkdownToANSI(md, width)
}
