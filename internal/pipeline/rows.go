// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/litscout/pkg/types"
)

// Identifier shapes that are not searchable gene names: clone-based names
// (AC004744.1) and chromosome map locations (19p13.2) appear in gene lists
// exported from other tools but match nothing useful in literature.
var (
	cloneNameRe   = regexp.MustCompile(`^[A-Z]{2,}\d{6}\.\d`)
	mapLocationRe = regexp.MustCompile(`^\d{1,2}[pq]\d+\.?\d*`)
)

// Defaults for row fields left empty in the input file.
const (
	DefaultIDType = "gene_exact"
	DefaultTaxon  = "9606"
)

// rowFile is the on-disk shape of an input row file.
type rowFile struct {
	Genes []types.GeneRow `yaml:"genes"`
}

// LoadRows reads an input row file, rejects unsearchable identifiers, fills
// in defaults, removes duplicate rows and assigns unique entity keys.
// Rejected rows are logged and skipped; a file yielding no usable rows is an
// error.
func LoadRows(path string, logger *slog.Logger) ([]types.GeneRow, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading row file: %w", err)
	}

	var rf rowFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing row file %s: %w", path, err)
	}

	rows := make([]types.GeneRow, 0, len(rf.Genes))
	seen := map[string]bool{}
	for _, row := range rf.Genes {
		if row.Identifier == "" {
			return nil, fmt.Errorf("row file %s: row without a gene identifier", path)
		}
		if cloneNameRe.MatchString(row.Identifier) || mapLocationRe.MatchString(row.Identifier) {
			logger.Warn("skipping unsearchable identifier (clone name or map location)",
				"id", row.Identifier)
			continue
		}
		if row.IDType == "" {
			row.IDType = DefaultIDType
		}
		if row.TaxonID == "" {
			row.TaxonID = DefaultTaxon
		}
		fingerprint := fmt.Sprintf("%s|%s|%s|%v", row.Identifier, row.IDType, row.TaxonID, row.Keywords)
		if seen[fingerprint] {
			continue
		}
		seen[fingerprint] = true
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("row file %s: no searchable rows", path)
	}
	return AssignKeys(rows), nil
}

// AssignKeys gives every row a key unique within the run: the identifier
// itself, with repeat identifiers suffixed by their occurrence number
// (ADAMTS5, ADAMTS5_2, ...).
func AssignKeys(rows []types.GeneRow) []types.GeneRow {
	counts := map[string]int{}
	out := make([]types.GeneRow, len(rows))
	for i, row := range rows {
		counts[row.Identifier]++
		if counts[row.Identifier] == 1 {
			row.Key = row.Identifier
		} else {
			row.Key = fmt.Sprintf("%s_%d", row.Identifier, counts[row.Identifier])
		}
		out[i] = row
	}
	return out
}
