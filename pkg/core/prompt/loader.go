package prompt

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path"
	"strings"
)

//go:embed defaults
var defaults embed.FS

// LoadFromDirectory loads prompts from baseDir over the built-in ones.
// Expected structure:
//
//	baseDir/
//	  category1/
//	    prompt1.json
//	  category2/
//	    prompt2.json
func (r *Registry) LoadFromDirectory(baseDir string) error {
	if _, err := os.Stat(baseDir); err != nil {
		return fmt.Errorf("prompts directory not found: %s", baseDir)
	}
	before := r.Count()
	if err := r.loadFS(os.DirFS(baseDir), "."); err != nil {
		return fmt.Errorf("failed to load prompts: %w", err)
	}
	log.Printf("[Prompt] Loaded prompts from %s (%d total, %d new)", baseDir, r.Count(), r.Count()-before)
	return nil
}

// loadFS recursively loads all .json files under root
func (r *Registry) loadFS(fsys fs.FS, root string) error {
	return fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip directories and non-JSON files
		if d.IsDir() || path.Ext(p) != ".json" {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}

		var pt PromptTemplate
		if err := json.Unmarshal(data, &pt); err != nil {
			return fmt.Errorf("failed to parse %s: %w", p, err)
		}

		rel := p
		if root != "." {
			rel = strings.TrimPrefix(p, root+"/")
		}

		// Auto-generate ID from path if not specified
		if pt.ID == "" {
			pt.ID = generateIDFromPath(rel)
		}

		// Auto-detect category from folder name if not specified
		if pt.Category == "" {
			pt.Category = detectCategory(rel)
		}

		if err := r.Register(&pt); err != nil {
			return fmt.Errorf("failed to register %s: %w", p, err)
		}
		return nil
	})
}

// generateIDFromPath creates a prompt ID from the file path
// e.g., "analysis/summary.json" -> "analysis.summary"
func generateIDFromPath(rel string) string {
	return strings.ReplaceAll(strings.TrimSuffix(rel, ".json"), "/", ".")
}

// detectCategory extracts the category from the folder structure
func detectCategory(rel string) string {
	if dir, _, ok := strings.Cut(rel, "/"); ok {
		return dir
	}
	return "default"
}
