// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the litscout pipeline:
// search terms and their synonym sets, harvested document records, and the
// configuration structs loaded from the config file.
package types

// DocumentRecord is one publication harvested from Europe PMC.
type DocumentRecord struct {
	// ID is the Europe PMC document identifier (e.g. "31653944" or "PPR126218").
	ID string `json:"id" yaml:"id"`

	// Source is the Europe PMC source database (e.g. "MED", "PPR", "PMC").
	Source string `json:"source" yaml:"source"`

	// Title is the document title.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year as reported by the service.
	Year string `json:"year" yaml:"year"`

	// Authors is the formatted author string.
	Authors string `json:"authors" yaml:"authors"`

	// PubTypes is the comma-joined publication type list.
	PubTypes string `json:"pub_types" yaml:"pub_types"`

	// Abstract is the abstract text, empty when the service has none.
	Abstract string `json:"abstract,omitempty" yaml:"abstract,omitempty"`

	// Keywords are the author/indexer keywords attached to the document.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// URL is the abstract page on europepmc.org.
	URL string `json:"url" yaml:"url"`

	// PreprintOf is the identifier of the published version when this record
	// is a preprint with a "Preprint of" comment correction, else empty.
	PreprintOf string `json:"preprint_of,omitempty" yaml:"preprint_of,omitempty"`
}

// SearchResultSet is the complete outcome for one input entity: the queries
// sent, the synonyms they covered, and the deduplicated documents found.
type SearchResultSet struct {
	// Key is the unique entity key for the run (see GeneRow.Key).
	Key string `json:"key" yaml:"key"`

	// Gene is the original gene/protein identifier.
	Gene string `json:"gene" yaml:"gene"`

	// SearchTerms is the human-readable description of the full search
	// (gene plus disease/tissue/keywords), for display and audit.
	SearchTerms string `json:"search_terms" yaml:"search_terms"`

	// Queries are the query strings actually sent, numbered in the order
	// they ran, as echoed back by the service.
	Queries []string `json:"queries" yaml:"queries"`

	// Synonyms are the gene synonyms the queries covered.
	Synonyms []string `json:"synonyms" yaml:"synonyms"`

	// Documents are the deduplicated harvested records.
	Documents []DocumentRecord `json:"documents" yaml:"documents"`

	// HitCount is the total number of distinct documents found, summed over
	// queries before the reporting ceiling is applied.
	HitCount int `json:"hit_count" yaml:"hit_count"`

	// HitCountDisplay is HitCount formatted for reports; counts at or above
	// the reporting ceiling display as "over N".
	HitCountDisplay string `json:"hit_count_display" yaml:"hit_count_display"`
}
