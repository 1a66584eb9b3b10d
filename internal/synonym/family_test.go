// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synonym

import (
	"reflect"
	"testing"

	"github.com/pdiddy/litscout/pkg/types"
)

func TestIsSystematicFamilyName(t *testing.T) {
	tests := []struct {
		gene string
		want bool
	}{
		{"ADAMTS5", true},
		{"TP53", true},
		{"COL4A1", true},
		{"BRCA", false},
		{"aggrecanase", false},
		// Fixed-format codes end in digits but are not families.
		{"C9orf72", false},
		{"KIAA0319", false},
		{"UNQ6126/PRO20091", false},
	}
	for _, tt := range tests {
		t.Run(tt.gene, func(t *testing.T) {
			if got := IsSystematicFamilyName(tt.gene); got != tt.want {
				t.Errorf("IsSystematicFamilyName(%q) = %v, want %v", tt.gene, got, tt.want)
			}
		})
	}
}

func TestRootOf(t *testing.T) {
	tests := []struct {
		syn  string
		want string
	}{
		{"ADAMTS5", "ADAMTS"},
		{"ADAMTS-5", "ADAMTS"},
		{"collagen type 4", "collagen"},
		{"fibulin 3", "fibulin"},
		// No family-style suffix.
		{"aggrecanase", ""},
		// Starts with the numbering itself.
		{"type 2", ""},
		// Fixed-format codes never root.
		{"C9orf72", ""},
		{"KIAA0319", ""},
	}
	for _, tt := range tests {
		t.Run(tt.syn, func(t *testing.T) {
			if got := RootOf(tt.syn); got != tt.want {
				t.Errorf("RootOf(%q) = %q, want %q", tt.syn, got, tt.want)
			}
		})
	}
}

func TestRecurrentRoots(t *testing.T) {
	tests := []struct {
		name string
		syns []string
		want []string
	}{
		{
			name: "shared root counted once per synonym",
			syns: []string{"ADAMTS4", "ADAMTS5", "TP53"},
			want: []string{"ADAMTS"},
		},
		{
			name: "one-off suffixes excluded",
			syns: []string{"ADAMTS5", "TP53", "aggrecanase"},
			want: []string{},
		},
		{
			name: "duplicates do not inflate the count",
			syns: []string{"ADAMTS5", "ADAMTS5", "TP53"},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RecurrentRoots(tt.syns)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("RecurrentRoots(%v) = %v, want %v", tt.syns, got, tt.want)
			}
		})
	}
}

func TestRootsAndParts(t *testing.T) {
	roots := []string{"ADAMTS"}
	syns := []string{"ADAMTS4", "ADAMTS5", "ADAMTS 5", "aggrecanase"}

	got := RootsAndParts(roots, syns)
	want := []types.FamilyRoot{{Root: "ADAMTS", Remainders: []string{"4", "5"}}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RootsAndParts() = %v, want %v", got, want)
	}
}

func TestRootsAndPartsOmitsEmptyRemainders(t *testing.T) {
	got := RootsAndParts([]string{"XYZ"}, []string{"XYZ"})
	if len(got) != 0 {
		t.Errorf("RootsAndParts() = %v, want no roots", got)
	}
}
