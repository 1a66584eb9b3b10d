// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pipeline

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pdiddy/litscout/pkg/types"
)

func writeRowFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "genes.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing row file: %v", err)
	}
	return path
}

func TestLoadRows(t *testing.T) {
	path := writeRowFile(t, `genes:
  - id: ADAMTS5
  - id: TP53
    id_type: accession
    taxon: "10090"
    keywords: [senescence]
`)

	rows, err := LoadRows(path, nil)
	if err != nil {
		t.Fatalf("LoadRows() error: %v", err)
	}

	want := []types.GeneRow{
		{Key: "ADAMTS5", Identifier: "ADAMTS5", IDType: "gene_exact", TaxonID: "9606"},
		{Key: "TP53", Identifier: "TP53", IDType: "accession", TaxonID: "10090", Keywords: []string{"senescence"}},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("LoadRows() = %+v, want %+v", rows, want)
	}
}

func TestLoadRowsSkipsUnsearchableIdentifiers(t *testing.T) {
	path := writeRowFile(t, `genes:
  - id: AC004744.1
  - id: 19p13.2
  - id: ADAMTS5
`)

	rows, err := LoadRows(path, nil)
	if err != nil {
		t.Fatalf("LoadRows() error: %v", err)
	}
	if len(rows) != 1 || rows[0].Identifier != "ADAMTS5" {
		t.Errorf("LoadRows() = %+v, want only ADAMTS5", rows)
	}
}

func TestLoadRowsDeduplicates(t *testing.T) {
	path := writeRowFile(t, `genes:
  - id: ADAMTS5
  - id: ADAMTS5
  - id: ADAMTS5
    keywords: [senescence]
`)

	rows, err := LoadRows(path, nil)
	if err != nil {
		t.Fatalf("LoadRows() error: %v", err)
	}
	// Identical rows collapse; a row differing in keywords is a distinct
	// search and gets a suffixed key.
	if len(rows) != 2 {
		t.Fatalf("LoadRows() = %d rows, want 2", len(rows))
	}
	if rows[0].Key != "ADAMTS5" || rows[1].Key != "ADAMTS5_2" {
		t.Errorf("LoadRows() keys = %q, %q", rows[0].Key, rows[1].Key)
	}
}

func TestLoadRowsErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing identifier", "genes:\n  - id_type: gene_exact\n"},
		{"no usable rows", "genes:\n  - id: AC004744.1\n"},
		{"empty file", ""},
		{"malformed yaml", "genes: [unclosed\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRowFile(t, tt.content)
			if _, err := LoadRows(path, nil); err == nil {
				t.Error("LoadRows() error = nil, want failure")
			}
		})
	}
}

func TestAssignKeys(t *testing.T) {
	rows := []types.GeneRow{
		{Identifier: "ADAMTS5"},
		{Identifier: "TP53"},
		{Identifier: "ADAMTS5"},
		{Identifier: "ADAMTS5"},
	}

	got := AssignKeys(rows)
	keys := []string{}
	for _, r := range got {
		keys = append(keys, r.Key)
	}
	want := []string{"ADAMTS5", "TP53", "ADAMTS5_2", "ADAMTS5_3"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("AssignKeys() = %v, want %v", keys, want)
	}
}
