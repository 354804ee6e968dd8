package feed

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"faqflip/internal/domain"
)

// FileProvider reads entries from a local .json, .yaml or .yml file
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider for path
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

func (p *FileProvider) Source() string {
	return p.path
}

// yamlEntry accepts the same image field variants as the JSON feed
type yamlEntry struct {
	ID        string   `yaml:"id"`
	Question  string   `yaml:"question"`
	Answer    string   `yaml:"answer"`
	ImageURL  string   `yaml:"imageUrl"`
	ImageURLs []string `yaml:"imageUrls"`
}

func (p *FileProvider) Fetch(ctx context.Context) ([]domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, &FetchError{Source: p.path, Err: err}
	}

	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, &FetchError{Source: p.path, Err: err}
	}

	var entries []domain.Entry
	switch strings.ToLower(filepath.Ext(p.path)) {
	case ".yaml", ".yml":
		entries, err = decodeYAML(data)
	default:
		err = json.Unmarshal(data, &entries)
	}
	if err != nil {
		return nil, &FetchError{Source: p.path, Err: fmt.Errorf("failed to parse FAQ file: %w", err)}
	}

	if err := validate(p.path, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func decodeYAML(data []byte) ([]domain.Entry, error) {
	var raw []yamlEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	entries := make([]domain.Entry, len(raw))
	for i, r := range raw {
		urls := r.ImageURLs
		if len(urls) == 0 && r.ImageURL != "" {
			urls = []string{r.ImageURL}
		}
		entries[i] = domain.Entry{ID: r.ID, Question: r.Question, Answer: r.Answer, ImageURLs: urls}
	}
	return entries, nil
}
