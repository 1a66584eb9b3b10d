// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"

	"github.com/pdiddy/litscout/internal/epmc"
	"github.com/pdiddy/litscout/pkg/types"
)

// fakeSearch serves canned pages keyed by query and cursor.
type fakeSearch struct {
	mu    sync.Mutex
	pages map[string]epmc.Page
	calls int
	err   error
}

func (f *fakeSearch) Search(_ context.Context, query, cursor string) (epmc.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return epmc.Page{}, f.err
	}
	return f.pages[query+"|"+cursor], nil
}

func doc(id, title string) types.DocumentRecord {
	return types.DocumentRecord{ID: id, Source: "MED", Title: title}
}

func TestHarvesterRun(t *testing.T) {
	fake := &fakeSearch{pages: map[string]epmc.Page{
		"q1|*": {
			HitCount:    2,
			QueryString: "echoed q1",
			Documents:   []types.DocumentRecord{doc("1", "first"), doc("2", "second")},
		},
		"q2|*": {
			HitCount:    1,
			QueryString: "echoed q2",
			Documents:   []types.DocumentRecord{doc("2", "second"), doc("3", "third")},
		},
	}}
	h := NewHarvester(fake, 2, nil)

	audit, docs, hits, err := h.Run(context.Background(), []string{"q1", "q2"})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	wantAudit := []string{"1: echoed q1", "2: echoed q2"}
	if !reflect.DeepEqual(audit, wantAudit) {
		t.Errorf("Run() audit = %v, want %v", audit, wantAudit)
	}
	if hits != 3 {
		t.Errorf("Run() hits = %d, want 3", hits)
	}

	ids := []string{}
	for _, d := range docs {
		ids = append(ids, d.ID)
	}
	if !reflect.DeepEqual(ids, []string{"1", "2", "3"}) {
		t.Errorf("Run() docs = %v, want deduplicated 1,2,3", ids)
	}
}

func TestHarvesterRunError(t *testing.T) {
	fake := &fakeSearch{err: errors.New("service down")}
	h := NewHarvester(fake, 2, nil)

	if _, _, _, err := h.Run(context.Background(), []string{"q1"}); err == nil {
		t.Fatal("Run() error = nil, want failure")
	}
}

func TestEliminatePreprints(t *testing.T) {
	published := doc("33654531", "published")
	superseded := types.DocumentRecord{ID: "PPR1", Source: "PPR", PreprintOf: "33654531"}
	standalone := types.DocumentRecord{ID: "PPR2", Source: "PPR", PreprintOf: "99999999"}

	got := EliminatePreprints([]types.DocumentRecord{published, superseded, standalone})

	ids := []string{}
	for _, d := range got {
		ids = append(ids, d.ID)
	}
	// The superseded preprint goes; the one whose published version is not
	// in the set stays.
	want := []string{"33654531", "PPR2"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("EliminatePreprints() = %v, want %v", ids, want)
	}
}

func TestRunRoots(t *testing.T) {
	roots := []types.FamilyRoot{{Root: "ADAMTS", Remainders: []string{"5"}}}
	fake := &fakeSearch{pages: map[string]epmc.Page{
		"rq|*": {
			HitCount:   1500,
			NextCursor: "c2",
			Documents: []types.DocumentRecord{
				doc("10", "ADAMTS-4, -5 and -9 in cartilage"), // indirect mention
				doc("11", "unrelated title"),
				doc("12", "ADAMTS-4 and -5 expression"), // already known
			},
		},
		"rq|c2": {
			HitCount:   1500,
			NextCursor: "",
			Documents: []types.DocumentRecord{
				doc("13", "comparing ADAMTS 4 or 5 in joint disease"),
			},
		},
	}}
	h := NewHarvester(fake, 2, nil)

	matched, err := h.RunRoots(context.Background(), []string{"rq"}, 10,
		map[string]bool{"12": true}, roots, "ADAMTS5")
	if err != nil {
		t.Fatalf("RunRoots() error: %v", err)
	}

	ids := []string{}
	for _, d := range matched {
		ids = append(ids, d.ID)
	}
	if !reflect.DeepEqual(ids, []string{"10", "13"}) {
		t.Errorf("RunRoots() = %v, want [10 13]", ids)
	}
	if fake.calls != 2 {
		t.Errorf("RunRoots() made %d calls, want 2 (both cursor pages)", fake.calls)
	}
}

func TestRunRootsStopsAtCeiling(t *testing.T) {
	fake := &fakeSearch{pages: map[string]epmc.Page{}}
	h := NewHarvester(fake, 2, nil)

	// Primary results already at the ceiling: no root query should run.
	matched, err := h.RunRoots(context.Background(), []string{"rq"}, ReportingCeiling+1,
		nil, nil, "ADAMTS5")
	if err != nil {
		t.Fatalf("RunRoots() error: %v", err)
	}
	if len(matched) != 0 || fake.calls != 0 {
		t.Errorf("RunRoots() = %v with %d calls, want none", matched, fake.calls)
	}
}

func TestRunRootsStopsOnRepeatedCursor(t *testing.T) {
	page := epmc.Page{
		HitCount:   5000,
		NextCursor: "same",
		Documents:  []types.DocumentRecord{doc("20", "nothing relevant")},
	}
	fake := &fakeSearch{pages: map[string]epmc.Page{
		"rq|*":    page,
		"rq|same": page,
	}}
	h := NewHarvester(fake, 2, nil)

	if _, err := h.RunRoots(context.Background(), []string{"rq"}, 0, nil, nil, "g"); err != nil {
		t.Fatalf("RunRoots() error: %v", err)
	}
	if fake.calls != 2 {
		t.Errorf("RunRoots() made %d calls, want 2 before detecting the repeated cursor", fake.calls)
	}
}

func TestRunRootsExhaustsHitCount(t *testing.T) {
	// 800 hits fit in one page; the advertised cursor must not be followed.
	fake := &fakeSearch{pages: map[string]epmc.Page{
		"rq|*": {HitCount: 800, NextCursor: "c2"},
	}}
	h := NewHarvester(fake, 2, nil)

	if _, err := h.RunRoots(context.Background(), []string{"rq"}, 0, nil, nil, "g"); err != nil {
		t.Fatalf("RunRoots() error: %v", err)
	}
	if fake.calls != 1 {
		t.Errorf("RunRoots() made %d calls, want 1", fake.calls)
	}
}

func ExampleEliminatePreprints() {
	docs := []types.DocumentRecord{
		{ID: "33654531"},
		{ID: "PPR288439", PreprintOf: "33654531"},
	}
	for _, d := range EliminatePreprints(docs) {
		fmt.Println(d.ID)
	}
	// Output: 33654531
}
