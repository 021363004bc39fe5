package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/atomicstack/learnaz/internal/feed"
)

// ErrUnsupportedFormat is returned for catalog files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported catalog format")

var defaultRecords = []feed.Record{
	{
		Title:   "Open multimodal model hits new benchmark",
		Summary: "A compact multimodal transformer surpasses prior open baselines on reasoning tasks.",
		Date:    "2025-09-18",
		Tags:    []string{"Models", "Research"},
	},
	{
		Title:   "Agent frameworks get workflow graphs",
		Summary: "Visual DAG builders arrive for orchestrating tool-using LLM agents with retries and guards.",
		Date:    "2025-09-16",
		Tags:    []string{"Tools", "Product"},
	},
	{
		Title:   "Policy: AI transparency rules drafted",
		Summary: "Draft policy calls for eval reporting and safety disclosures for high-risk models.",
		Date:    "2025-09-14",
		Tags:    []string{"Policy"},
	},
	{
		Title:   "Vector DB adds hybrid search",
		Summary: "Combines dense and sparse retrieval with auto-weighting for better recall.",
		Date:    "2025-09-12",
		Tags:    []string{"Tools"},
	},
	{
		Title:   "Research roundup: toolformer variants",
		Summary: "Self-annotation for API calls boosts math and coding accuracy.",
		Date:    "2025-09-10",
		Tags:    []string{"Research"},
	},
}

// Default returns a copy of the built-in catalog.
func Default() []feed.Record {
	return feed.CloneRecords(defaultRecords)
}

// SupportedExtension reports whether path names a format Load understands.
func SupportedExtension(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json", ".jsonc":
		return true
	}
	return false
}

// Load reads a catalog file. YAML and JSON (comments and trailing commas
// allowed) are accepted; the top level is either a list of records or an
// object with an "updates" list.
func Load(path string) ([]feed.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(filepath.Ext(path), data)
}

// Parse decodes catalog bytes using the format implied by ext.
func Parse(ext string, data []byte) ([]feed.Record, error) {
	var (
		records []feed.Record
		err     error
	)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		records, err = decodeYAML(data)
	case ".json", ".jsonc":
		records, err = decodeJSON(jsonc.ToJSON(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Validate(records); err != nil {
		return nil, err
	}
	return records, nil
}

// Validate checks the invariants every record must satisfy.
func Validate(records []feed.Record) error {
	for i, r := range records {
		if strings.TrimSpace(r.Title) == "" {
			return fmt.Errorf("catalog record %d: title is required", i)
		}
	}
	return nil
}

type document struct {
	Updates []feed.Record `json:"updates" yaml:"updates"`
}

func decodeYAML(data []byte) ([]feed.Record, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return []feed.Record{}, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var records []feed.Record
		if err := root.Decode(&records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var doc document
	if err := root.Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Updates, nil
}

func decodeJSON(data []byte) ([]feed.Record, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var records []feed.Record
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Updates, nil
}
