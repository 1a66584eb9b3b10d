// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by components that make network
// requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "litscout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// OntologyConfig holds settings for the EBI OLS ontology client.
type OntologyConfig struct {
	HTTPConfig `yaml:",inline"`

	// RequestDelay is the fixed pause before each OLS request (default 100ms).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`

	// SearchRows is the page size for ontology keyword searches (default 2000).
	SearchRows int `json:"search_rows" yaml:"search_rows"`
}

// MappingConfig holds settings for the UniProt identifier-mapping client.
type MappingConfig struct {
	HTTPConfig `yaml:",inline"`
}

// EPMCConfig holds settings for the Europe PMC search client.
type EPMCConfig struct {
	HTTPConfig `yaml:",inline"`

	// RequestDelay is the fixed pause before each search request (default 100ms).
	RequestDelay time.Duration `json:"request_delay" yaml:"request_delay"`
}

// SearchConfig holds the run-wide search settings: the co-occurrence terms
// applied to every input row and the concurrency bound.
type SearchConfig struct {
	// Disease is the disease term expanded once per run, empty to skip.
	Disease string `json:"disease,omitempty" yaml:"disease,omitempty"`

	// Tissue is the tissue/anatomy term expanded once per run, empty to skip.
	Tissue string `json:"tissue,omitempty" yaml:"tissue,omitempty"`

	// Keywords are run-wide keywords; when set, per-row keywords are ignored.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	// ExpandKeywords controls whether keywords get ontology synonym expansion.
	ExpandKeywords bool `json:"expand_keywords" yaml:"expand_keywords"`

	// TissueDescendants controls whether tissue expansion also gathers
	// hierarchical descendants of the matched anatomy terms.
	TissueDescendants bool `json:"tissue_descendants" yaml:"tissue_descendants"`

	// OtherFields are engine-specific field:value settings appended verbatim
	// to every query (e.g. OPEN_ACCESS:y).
	OtherFields []FieldSetting `json:"other_fields,omitempty" yaml:"other_fields,omitempty"`

	// Workers bounds concurrent entity tasks and concurrent query execution
	// (default 4).
	Workers int `json:"workers" yaml:"workers"`
}

// StoreConfig holds settings for the results archive.
type StoreConfig struct {
	// Path is the SQLite database file (e.g. "litscout.db").
	Path string `json:"path" yaml:"path"`
}

// Config groups all component configurations.
type Config struct {
	Ontology OntologyConfig `json:"ontology" yaml:"ontology"`
	Mapping  MappingConfig  `json:"mapping" yaml:"mapping"`
	EPMC     EPMCConfig     `json:"epmc" yaml:"epmc"`
	Search   SearchConfig   `json:"search" yaml:"search"`
	Store    StoreConfig    `json:"store" yaml:"store"`
}
