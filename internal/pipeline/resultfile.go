// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litscout/pkg/types"
)

// ResultFile is the on-disk representation of a run: every entity's result
// set plus a summary of failures. Researchers can inspect or post-process the
// file without re-running the searches.
type ResultFile struct {
	Generated time.Time               `yaml:"generated"`
	Results   []types.SearchResultSet `yaml:"results"`
	Failures  []string                `yaml:"failures,omitempty"`
}

// WriteResultFile saves the run outcomes to a YAML file. Failed tasks appear
// in the failures list with their error text; their rows produce no result
// entry.
func WriteResultFile(path string, outcomes []Outcome) error {
	rf := ResultFile{Generated: time.Now()}
	for _, o := range outcomes {
		if o.Err != nil {
			rf.Failures = append(rf.Failures, fmt.Sprintf("%s: %v", o.Row.Key, o.Err))
			continue
		}
		if o.Result != nil {
			rf.Results = append(rf.Results, *o.Result)
		}
	}

	data, err := yaml.Marshal(&rf)
	if err != nil {
		return fmt.Errorf("marshaling result file: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadResultFile loads a previously saved result file from disk.
func ReadResultFile(path string) (*ResultFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading result file: %w", err)
	}
	var rf ResultFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing result file %s: %w", path, err)
	}
	return &rf, nil
}
