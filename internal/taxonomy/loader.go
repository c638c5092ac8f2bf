package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// patternFile is the YAML shape of an external taxonomy override file.
type patternFile struct {
	Negators       []string            `yaml:"negators"`
	ContinuityCues []string            `yaml:"continuity_cues"`
	Categories     map[string][]Signal `yaml:"categories"`
}

// Load builds the pattern table: built-in defaults, optionally overridden
// per category by a YAML file. An empty path returns the defaults. The
// result is treated as immutable after this call.
func Load(path string) (*PatternTable, error) {
	table := DefaultPatternTable()
	if path == "" {
		return table, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy file: %w", err)
	}

	var file patternFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy file: %w", err)
	}

	for name, signals := range file.Categories {
		cat := Category(name)
		if !cat.Valid() {
			return nil, fmt.Errorf("taxonomy file references unknown category %q", name)
		}
		for _, sig := range signals {
			if sig.Phrase == "" {
				return nil, fmt.Errorf("taxonomy file has empty phrase under %q", name)
			}
			if sig.Weight <= 0 {
				return nil, fmt.Errorf("taxonomy file has non-positive weight for %q under %q", sig.Phrase, name)
			}
		}
		table.Signals[cat] = signals
	}

	if len(file.Negators) > 0 {
		table.Negators = file.Negators
	}
	if len(file.ContinuityCues) > 0 {
		table.ContinuityCues = file.ContinuityCues
	}

	return table, nil
}
