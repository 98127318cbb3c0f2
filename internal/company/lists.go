package company

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// Lists holds the curated company lists and the name-indicator keywords.
// Missing lists stay empty: the classifier then degrades toward unknown
// instead of failing.
type Lists struct {
	HardwareCompanies []string      `json:"hardware_companies"`
	SoftwareCompanies []string      `json:"software_companies"`
	BothDomains       []string      `json:"both_domains"`
	Keywords          ListsKeywords `json:"_keywords"`
}

type ListsKeywords struct {
	HardwareIndicators []string `json:"hardware_indicators"`
	SoftwareIndicators []string `json:"software_indicators"`
}

// LoadLists reads the curated lists document from a JSON file.
func LoadLists(path string) (*Lists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading company lists from %q: %w", path, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing company lists %q: %w", path, err)
	}

	lists := &Lists{}
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   lists,
		TagName:  "json",
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decoding company lists %q: %w", path, err)
	}

	return lists, nil
}
