// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TermKind classifies a user-supplied search term.
type TermKind string

const (
	KindGene    TermKind = "gene"
	KindDisease TermKind = "disease"
	KindTissue  TermKind = "tissue"
	KindKeyword TermKind = "keyword"
)

// Term is a single user-supplied search concept. It is immutable once the
// surrounding whitespace has been stripped.
type Term struct {
	Text string   `json:"text" yaml:"text"`
	Kind TermKind `json:"kind" yaml:"kind"`
}

// SynonymSet holds the cleaned alternate textual forms of one Term. The
// original term is always a member. Order is not significant; sets are
// passed by value into query packing.
type SynonymSet struct {
	// Term is the original term that produced the set.
	Term string `json:"term" yaml:"term"`

	// Synonyms lists the cleaned, non-redundant forms, including Term itself.
	Synonyms []string `json:"synonyms" yaml:"synonyms"`
}

// Contains reports whether s holds the given synonym.
func (s SynonymSet) Contains(syn string) bool {
	for _, v := range s.Synonyms {
		if v == syn {
			return true
		}
	}
	return false
}

// FamilyRoot is the common stem of a systematically numbered group of gene
// names (e.g. "ADAMTS" for ADAMTS4/ADAMTS5), paired with the suffix
// remainders observed across the gene's own synonyms.
type FamilyRoot struct {
	// Root is the stem with the trailing numeric/letter suffix stripped.
	Root string `json:"root" yaml:"root"`

	// Remainders are the non-root parts of the synonyms that contain Root
	// (e.g. {"4", "5"}).
	Remainders []string `json:"remainders" yaml:"remainders"`
}

// GeneRow is one input entity: the gene/protein identifier to search for,
// how to interpret it, the organism it belongs to, and optional per-row
// keywords.
type GeneRow struct {
	// Key uniquely identifies the row within a run. Duplicate identifiers
	// receive suffixed keys (ADAMTS5, ADAMTS5_2, ...).
	Key string `json:"key" yaml:"key"`

	// Identifier is the gene symbol or accession. It may contain a "*"
	// wildcard marker.
	Identifier string `json:"id" yaml:"id"`

	// IDType is the identifier-mapping query field, e.g. "gene_exact" or
	// "accession".
	IDType string `json:"id_type" yaml:"id_type"`

	// TaxonID is the organism code, e.g. "9606" for human.
	TaxonID string `json:"taxon" yaml:"taxon"`

	// Keywords are optional per-row keywords; ignored when global keywords
	// were supplied for the whole run.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// IsWildcard reports whether the row's identifier contains a wildcard marker.
func (r GeneRow) IsWildcard() bool {
	for _, c := range r.Identifier {
		if c == '*' {
			return true
		}
	}
	return false
}

// FieldSetting is one engine-specific filter setting (field name and value)
// carried verbatim into every query. The accepted field names come from an
// external fields catalog; the core only joins names and values.
type FieldSetting struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}
