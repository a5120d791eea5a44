package llm

import (
	"fmt"
	"strings"
)

// sourcesHeader separates a grounded answer from its citation list.
const sourcesHeader = "\n\n**Sources:**\n"

// Citation is a web source a grounded answer relied on.
type Citation struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// AppendCitations adds citations to text as a markdown link list:
//
//	<text>
//
//	**Sources:**
//	[Title](https://...)
func AppendCitations(text string, citations []Citation) string {
	if len(citations) == 0 {
		return text
	}
	lines := make([]string, 0, len(citations))
	for _, c := range citations {
		title := strings.NewReplacer("[", "(", "]", ")", "\n", " ").Replace(c.Title)
		lines = append(lines, fmt.Sprintf("[%s](%s)", title, c.URI))
	}
	return text + sourcesHeader + strings.Join(lines, "\n")
}

// SplitCitations separates text produced by AppendCitations back into the
// answer and its citations. Text without a sources list is returned as-is.
func SplitCitations(text string) (string, []Citation) {
	i := strings.LastIndex(text, sourcesHeader)
	if i < 0 {
		return text, nil
	}

	var citations []Citation
	for _, line := range strings.Split(text[i+len(sourcesHeader):], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		mid := strings.LastIndex(line, "](")
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, ")") || mid < 0 {
			// Not a list we wrote; leave the text alone.
			return text, nil
		}
		citations = append(citations, Citation{Title: line[1:mid], URI: line[mid+2 : len(line)-1]})
	}
	return text[:i], citations
}
