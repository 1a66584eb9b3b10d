// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query assembles Europe PMC boolean query strings from synonym sets
// and packs them under the service's encoded-URL length limit.
package query

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/pdiddy/litscout/pkg/types"
)

// segmentOverhead approximates the brackets, spaces and ampersand that join
// one encoded segment into the full query.
const segmentOverhead = 12

// OtherLimit is the hard ceiling for the engine-settings segment. Settings
// apply to every query and cannot be split, so an over-length settings string
// is dropped entirely.
const OtherLimit = 4500

// Segment is one independently packable part of a query: a named synonym set
// rendered as a field-qualified OR expression.
type Segment struct {
	// Name identifies the segment ("genes", "diseases", "tissues", "kwd1"...).
	Name string

	// Expr is the rendered boolean expression for the full synonym list.
	Expr string

	// Synonyms is the list the expression covers, kept for re-chunking when
	// the segment is too long.
	Synonyms []string

	// IncludeKW controls whether synonyms are also searched in the keyword
	// field (off for family-root queries).
	IncludeKW bool
}

// NewSegment renders a synonym list into a Segment.
func NewSegment(name string, syns []string, includeKW bool) Segment {
	return Segment{
		Name:      name,
		Expr:      FieldExpression(syns, includeKW),
		Synonyms:  syns,
		IncludeKW: includeKW,
	}
}

// FieldExpression renders synonyms as a parenthesized OR expression over the
// title, abstract and (optionally) keyword fields:
// (TITLE:"a" OR KW:"a" OR ABSTRACT:"a" OR TITLE:"b" ...).
func FieldExpression(syns []string, includeKW bool) string {
	if len(syns) == 0 {
		return ""
	}
	parts := make([]string, 0, len(syns))
	for _, syn := range syns {
		// Keyword synonyms can arrive pre-rendered.
		if strings.HasPrefix(syn, "(TITLE:") {
			parts = append(parts, strings.Trim(syn, "()"))
			continue
		}
		if includeKW {
			parts = append(parts, fmt.Sprintf(`TITLE:"%s" OR KW:"%s" OR ABSTRACT:"%s"`, syn, syn, syn))
		} else {
			parts = append(parts, fmt.Sprintf(`TITLE:"%s" OR ABSTRACT:"%s"`, syn, syn))
		}
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// EncodedLength estimates the URL-encoded length of a query part, including
// the join overhead. Empty parts cost nothing.
func EncodedLength(s string) int {
	if s == "" {
		return 0
	}
	return len(url.QueryEscape(s)) + segmentOverhead
}

// OtherExpression joins engine-specific settings into a "FIELD:value & ..."
// string. Settings cannot be split across queries, so a string over
// OtherLimit is dropped with an error log and the queries run without it.
func OtherExpression(fields []types.FieldSetting, logger *slog.Logger) string {
	if len(fields) == 0 {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.Name+":"+f.Value)
	}
	expr := strings.Join(parts, " & ")
	if len(expr) > OtherLimit {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("settings string too long, queries will run without settings",
			"length", len(expr), "limit", OtherLimit)
		return ""
	}
	return expr
}
