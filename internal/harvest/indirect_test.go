// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"testing"

	"github.com/pdiddy/litscout/pkg/types"
)

func TestMatchesIndirectList(t *testing.T) {
	abc := []types.FamilyRoot{{Root: "ABC", Remainders: []string{"2"}}}
	adamts := []types.FamilyRoot{{Root: "ADAMTS", Remainders: []string{"5"}}}

	tests := []struct {
		name     string
		title    string
		abstract string
		roots    []types.FamilyRoot
		want     bool
	}{
		{
			name:  "numbered list implies the member",
			title: "Expression of ABC1, 2 and 3 in synovium",
			roots: abc,
			want:  true,
		},
		{
			name:     "match in the abstract",
			title:    "Aggrecanase regulation",
			abstract: "We profiled ABC1, 2 and 4 isoforms.",
			roots:    abc,
			want:     true,
		},
		{
			name:  "hyphenated list",
			title: "ADAMTS-4, -5 and -9 in cartilage degradation",
			roots: adamts,
			want:  true,
		},
		{
			name:  "apostrophe after the root",
			title: "the ADAMTS' 4, 5 roles in arthritis",
			roots: adamts,
			want:  true,
		},
		{
			name:  "conjunction after a single member",
			title: "ADAMTS 4 and 5 in joint disease",
			roots: adamts,
			want:  true,
		},
		{
			name:  "direct mention is not a list",
			title: "The role of ADAMTS5 in osteoarthritis",
			roots: adamts,
			want:  false,
		},
		{
			name:  "root absent",
			title: "MMP1, 2 and 3 in cartilage",
			roots: adamts,
			want:  false,
		},
		{
			name:  "remainder absent",
			title: "ADAMTS-1, 2 and 4 comparison",
			roots: adamts,
			want:  false,
		},
		{
			name:  "case folded",
			title: "adamts-4, -5 and -9 revisited",
			roots: adamts,
			want:  true,
		},
		{
			name:  "no roots",
			title: "ABC1, 2 and 3",
			roots: nil,
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchesIndirectList(tt.title, tt.abstract, tt.roots)
			if got != tt.want {
				t.Errorf("MatchesIndirectList(%q, %q) = %v, want %v", tt.title, tt.abstract, got, tt.want)
			}
		})
	}
}
