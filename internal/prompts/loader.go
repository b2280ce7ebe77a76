// Package prompts assembles the LLM prompt strings. The raw templates
// live in embedded JSON files, one file per feature area, keyed by
// operation.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var templateFS embed.FS

var (
	parsedMu sync.Mutex
	parsed   = map[string]map[string]string{}
)

// Get returns the raw template stored under key in the named embedded
// file, e.g. Get("resume.json", "improve-summary").
func Get(filename, key string) (string, error) {
	templates, err := fileTemplates(filename)
	if err != nil {
		return "", err
	}
	tmpl, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt file %s has no key %q", filename, key)
	}
	return tmpl, nil
}

// Format fills {{.Name}} placeholders with the matching values.
// Placeholders without a value stay in place, so a field a builder
// forgot shows up verbatim in the prompt instead of vanishing.
func Format(tmpl string, values map[string]string) string {
	for name, value := range values {
		tmpl = strings.ReplaceAll(tmpl, "{{."+name+"}}", value)
	}
	return tmpl
}

// fileTemplates parses a file on first use and serves later reads from
// memory. The embedded files never change at runtime.
func fileTemplates(filename string) (map[string]string, error) {
	parsedMu.Lock()
	defer parsedMu.Unlock()

	if templates, ok := parsed[filename]; ok {
		return templates, nil
	}

	raw, err := templateFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read prompt file %s: %w", filename, err)
	}
	var templates map[string]string
	if err := json.Unmarshal(raw, &templates); err != nil {
		return nil, fmt.Errorf("parse prompt file %s: %w", filename, err)
	}
	parsed[filename] = templates
	return templates, nil
}
