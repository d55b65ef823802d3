package importers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Entry is one imported book with its fields kept as text.
type Entry struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   string `yaml:"year"`
	Genre  string `yaml:"genre"`
}

// ParseYAML decodes a YAML sequence of books. Extra keys such as id are
// ignored. An empty document yields no entries.
func ParseYAML(r io.Reader) ([]Entry, error) {
	var entries []Entry
	err := yaml.NewDecoder(r).Decode(&entries)
	if errors.Is(err, io.EOF) {
		return []Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
