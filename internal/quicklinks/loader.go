package quicklinks

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/glassbrowser/glassd/internal/domain"
)

// Loader reads an optional YAML file that replaces the built-in tile table.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for the given defaults file.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// linkEntry is the on-disk shape of one tile.
type linkEntry struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
	Icon  string `yaml:"icon,omitempty"`
	Color string `yaml:"color,omitempty"`
}

// Load reads and parses the defaults file. Entries become default tiles,
// so deleting one from the start page hides it instead of removing it.
func (l *Loader) Load() ([]domain.QuickLink, error) {
	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read quick link file: %w", err)
	}

	var entries []linkEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse quick link yaml: %w", err)
	}

	links := make([]domain.QuickLink, 0, len(entries))
	for i, e := range entries {
		if e.Title == "" || e.URL == "" {
			return nil, fmt.Errorf("quick link entry %d: title and url are required", i)
		}
		icon := e.Icon
		if icon == "" {
			icon = fallbackIcon
		}
		links = append(links, domain.QuickLink{
			Title:     e.Title,
			URL:       e.URL,
			Icon:      icon,
			Color:     e.Color,
			IsDefault: true,
		})
	}
	return links, nil
}
