// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"log/slog"
	"net/url"
	"strings"
)

// MaxEncodedLength is the working ceiling for an encoded query. The service
// rejects URLs around 8000 encoded characters; the margin covers the base
// URL and fixed request parameters.
const MaxEncodedLength = 7500

// poolReserve keeps headroom below the ceiling while deciding which segments
// must be split, so the remaining segments always leave room for a chunk.
const poolReserve = 500

// chunkMargin is subtracted from each chunk budget to cover the trailing
// field expression of the last synonym in the chunk.
const chunkMargin = 100

// perSynonymOverhead approximates the encoded field names, quotes and ORs
// added around one synonym in a chunk estimate.
const perSynonymOverhead = 62

// joinOverhead approximates the encoded brackets and ampersands that join
// the segments of a single query.
const joinOverhead = 20

// perSegmentJoin is the per-remaining-segment allowance used when computing
// the chunk budget for split segments.
const perSegmentJoin = 10

// Packer splits over-length queries into multiple shorter ones whose union
// covers the same synonym combinations.
type Packer struct {
	logger *slog.Logger
}

// NewPacker returns a Packer.
func NewPacker(logger *slog.Logger) *Packer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Packer{logger: logger}
}

// Pack builds the final query strings for the given segments plus the
// unsplittable settings expression. When everything fits under the ceiling a
// single query is returned. Otherwise the longest segments are re-chunked by
// encoded length and the Cartesian product of their chunks is combined with
// the untouched segments, so that every synonym combination of the original
// query appears in exactly one shorter query.
func (p *Packer) Pack(segments []Segment, other string) []string {
	budget := MaxEncodedLength - EncodedLength(other)

	total := 0
	for _, seg := range segments {
		total += EncodedLength(seg.Expr)
	}

	if total+joinOverhead <= budget {
		return []string{joinParts(segments, nil, other)}
	}

	p.logger.Info("query too long, building multiple shorter queries")

	kept, long := splitLongest(segments, budget)

	// Budget for each split segment's chunks: what the kept segments leave,
	// shared across the split segments, minus the tail margin.
	estTotal := 0
	for _, seg := range kept {
		estTotal += EncodedLength(seg.Expr)
	}
	estTotal += (len(kept) + 1) * perSegmentJoin
	chunkBudget := (budget-estTotal)/len(long) - chunkMargin

	chunkLists := make([][]string, 0, len(long))
	for _, seg := range long {
		chunkLists = append(chunkLists, p.chunk(seg, chunkBudget))
	}

	queries := []string{}
	for _, combo := range product(chunkLists) {
		queries = append(queries, joinParts(kept, combo, other))
	}
	p.logger.Info("built shorter queries", "queries", len(queries))
	return queries
}

// splitLongest removes the largest splittable segments until the remainder
// fits with poolReserve to spare, returning the kept and removed segments.
func splitLongest(segments []Segment, budget int) (kept, long []Segment) {
	kept = append([]Segment{}, segments...)

	sum := func() int {
		t := 0
		for _, seg := range kept {
			t += EncodedLength(seg.Expr)
		}
		return t
	}

	for sum() > budget-poolReserve && len(kept) > 0 {
		largest := 0
		for i := range kept {
			if EncodedLength(kept[i].Expr) > EncodedLength(kept[largest].Expr) {
				largest = i
			}
		}
		long = append(long, kept[largest])
		kept = append(kept[:largest], kept[largest+1:]...)
	}
	return kept, long
}

// chunk greedily packs the segment's synonyms into expressions whose
// estimated encoded length stays within the chunk budget. A single synonym
// whose own estimate exceeds the budget cannot be queried at all and is
// dropped with a warning.
func (p *Packer) chunk(seg Segment, chunkBudget int) []string {
	chunks := []string{}
	syns := append([]string{}, seg.Synonyms...)

	for len(syns) > 0 {
		estimate := chunkEstimate("", syns[0])
		if estimate > chunkBudget {
			p.logger.Warn("synonym too long, excluded from queries",
				"segment", seg.Name, "synonym", syns[0])
			syns = syns[1:]
			continue
		}

		i := 0
		expr := ""
		for estimate <= chunkBudget {
			i++
			expr = FieldExpression(syns[:i], seg.IncludeKW)
			if i >= len(syns) {
				break
			}
			estimate = chunkEstimate(expr, syns[i])
		}
		chunks = append(chunks, expr)
		syns = syns[i:]
	}
	return chunks
}

// chunkEstimate is the projected encoded length of a chunk after the next
// synonym joins it: the current expression plus three field-qualified copies
// of the synonym and their fixed framing.
func chunkEstimate(expr, next string) int {
	return len(url.QueryEscape(expr)) + 3*len(url.QueryEscape(next)) + perSynonymOverhead
}

// joinParts assembles one query from the kept segments, one chunk combination
// and the settings string, joining non-empty parts with " & ".
func joinParts(kept []Segment, combo []string, other string) string {
	parts := []string{}
	for _, c := range combo {
		parts = append(parts, "("+strings.Trim(c, "(,) ")+")")
	}
	for _, seg := range kept {
		if seg.Expr != "" && seg.Expr != "()" {
			parts = append(parts, seg.Expr)
		}
	}
	if other != "" {
		parts = append(parts, other)
	}
	return strings.Join(parts, " & ")
}

// product returns the Cartesian product of the chunk lists, one chunk from
// each list per combination.
func product(lists [][]string) [][]string {
	combos := [][]string{{}}
	for _, list := range lists {
		next := make([][]string, 0, len(combos)*len(list))
		for _, combo := range combos {
			for _, item := range list {
				grown := append(append([]string{}, combo...), item)
				next = append(next, grown)
			}
		}
		combos = next
	}
	return combos
}
