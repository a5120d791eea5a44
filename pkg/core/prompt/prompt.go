// Package prompt provides a centralized prompt library for LLM interactions.
// Built-in prompts are embedded in the binary; a directory of JSON files can
// override them at runtime without code changes.
package prompt

import (
	"bytes"
	"fmt"
	"text/template"
)

// PromptTemplate represents a reusable prompt with metadata
type PromptTemplate struct {
	ID             string `json:"id"`                   // Unique identifier (e.g., "analysis.summary")
	Name           string `json:"name"`                 // Human-readable name
	Category       string `json:"category"`             // Category (analysis, ...)
	Description    string `json:"description"`          // Description of prompt purpose
	SystemPrompt   string `json:"system_prompt"`        // The system prompt content
	UserPromptTmpl string `json:"user_prompt_template"` // Go template for user prompt
	Version        string `json:"version"`              // Version for tracking changes
}

// RenderUserPrompt executes the user prompt template with data.
func (pt *PromptTemplate) RenderUserPrompt(data any) (string, error) {
	if pt.UserPromptTmpl == "" {
		return "", nil
	}

	tmpl, err := template.New(pt.ID).Option("missingkey=error").Parse(pt.UserPromptTmpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", pt.ID, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", pt.ID, err)
	}
	return buf.String(), nil
}
