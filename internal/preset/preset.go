// Package preset bundles the example prompts shown to first-time users.
// Each preset is a markdown document with YAML frontmatter (id, label) and
// H1 sections holding the rough request and its polished counterpart.
package preset

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed presets/*.md
var presetFiles embed.FS

// Preset pairs a rough prompt with a hand-polished version of it.
type Preset struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Rough    string `json:"rough"`
	Polished string `json:"polished"`
}

type frontmatter struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// All parses every bundled preset, ordered by filename.
func All() ([]Preset, error) {
	entries, err := presetFiles.ReadDir("presets")
	if err != nil {
		return nil, fmt.Errorf("listing presets: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	presets := make([]Preset, 0, len(names))
	for _, name := range names {
		data, err := presetFiles.ReadFile("presets/" + name)
		if err != nil {
			return nil, fmt.Errorf("reading preset %s: %w", name, err)
		}
		p, err := parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing preset %s: %w", name, err)
		}
		presets = append(presets, p)
	}
	return presets, nil
}

func parse(data []byte) (Preset, error) {
	fm, body, err := extractFrontmatter(string(data))
	if err != nil {
		return Preset{}, err
	}

	var meta frontmatter
	if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
		return Preset{}, fmt.Errorf("parsing frontmatter YAML: %w", err)
	}
	if meta.ID == "" {
		return Preset{}, fmt.Errorf("frontmatter missing required field: id")
	}
	if meta.Label == "" {
		return Preset{}, fmt.Errorf("frontmatter missing required field: label")
	}

	sections := extractSections(body)
	rough, ok := sections["Rough"]
	if !ok || rough == "" {
		return Preset{}, fmt.Errorf("missing required section: # Rough")
	}
	polished, ok := sections["Polished"]
	if !ok || polished == "" {
		return Preset{}, fmt.Errorf("missing required section: # Polished")
	}

	return Preset{ID: meta.ID, Label: meta.Label, Rough: rough, Polished: polished}, nil
}

// extractFrontmatter splits on --- delimiters and returns frontmatter YAML
// and the markdown body.
func extractFrontmatter(content string) (string, string, error) {
	trimmed := strings.TrimSpace(content)
	if !strings.HasPrefix(trimmed, "---") {
		return "", "", fmt.Errorf("preset must start with YAML frontmatter (---)")
	}

	rest := trimmed[3:]
	idx := strings.Index(rest, "\n---")
	if idx < 0 {
		return "", "", fmt.Errorf("preset missing closing frontmatter delimiter (---)")
	}

	fm := strings.TrimSpace(rest[:idx])
	body := strings.TrimSpace(rest[idx+4:])
	return fm, body, nil
}

// extractSections splits the markdown body on H1 headings into named sections.
func extractSections(body string) map[string]string {
	sections := make(map[string]string)
	if body == "" {
		return sections
	}

	lines := strings.Split(body, "\n")
	var currentSection string
	var currentContent []string

	for _, line := range lines {
		if strings.HasPrefix(line, "# ") {
			if currentSection != "" {
				sections[currentSection] = strings.TrimSpace(strings.Join(currentContent, "\n"))
			}
			currentSection = strings.TrimSpace(line[2:])
			currentContent = nil
		} else {
			currentContent = append(currentContent, line)
		}
	}

	if currentSection != "" {
		sections[currentSection] = strings.TrimSpace(strings.Join(currentContent, "\n"))
	}

	return sections
}
