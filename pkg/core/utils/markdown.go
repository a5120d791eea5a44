package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(goldmark.WithExtensions(extension.GFM))

// CleanMarkdown strips outer markdown code blocks so the output is pure
// Markdown ready for rendering.
func CleanMarkdown(input string) string {
	cleaned := strings.TrimSpace(input)

	if strings.HasPrefix(cleaned, "```markdown") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```markdown")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	} else if strings.HasPrefix(cleaned, "```") && strings.HasSuffix(cleaned, "```") {
		cleaned = strings.TrimPrefix(cleaned, "```")
		cleaned = strings.TrimSuffix(cleaned, "```")
		cleaned = strings.TrimSpace(cleaned)
	}

	return cleaned
}

// RenderHTML converts Markdown to HTML. Raw HTML in the input is not passed
// through (goldmark's default), so model output cannot inject markup.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("MARKDOWN_RENDER_ERROR: %v", err)
	}
	return buf.String(), nil
}

// ExternalLinks makes every link in an HTML fragment open in a new tab
// without giving the target page access to window.opener.
func ExternalLinks(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<div id=\"root\">" + fragment + "</div>"))
	if err != nil {
		return "", fmt.Errorf("HTML_PARSE_ERROR: %v", err)
	}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		a.SetAttr("target", "_blank")
		a.SetAttr("rel", "noopener noreferrer")
	})

	out, err := doc.Find("#root").Html()
	if err != nil {
		return "", fmt.Errorf("HTML_RENDER_ERROR: %v", err)
	}
	return out, nil
}
