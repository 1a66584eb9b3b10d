// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ontology queries the EBI Ontology Lookup Service (OLS) for the
// ontology nodes matching a search term and the synonyms recorded on them.
package ontology

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/xtgo/set"

	"github.com/pdiddy/litscout/internal/httputil"
)

// Endpoint bases are vars so tests can substitute an httptest server.
var (
	olsSearchBase      = "https://www.ebi.ac.uk/ols/api/search"
	olsTermsBase       = "https://www.ebi.ac.uk/ols/api/terms"
	olsDescendantsBase = "https://www.ebi.ac.uk/ols/api/ontologies/uberon/hierarchicalDescendants"
)

// HumanGeneBranchIRI is the Ontology of Genes and Genomes node for Homo
// sapiens genes; gene searches for taxon 9606 are restricted to its children.
const HumanGeneBranchIRI = "http://purl.obolibrary.org/obo/OGG_2000009606"

// Ontology namespaces searched per term kind.
const (
	OntologyGenes   = "ogg"
	OntologyDisease = "mondo"
	OntologyAnatomy = "uberon"
)

// annotationKeys are the OLS annotation headers that can hold synonyms.
var annotationKeys = []string{
	"has_related_synonym", "alternative term", "comment", "description",
	"symbol from nomenclature authority", "hasExactSynonym",
}

// defaultSearchRows is the page size for keyword searches; ontology searches
// rarely exceed it, so no search-result pagination is needed.
const defaultSearchRows = 2000

// busyNodeThreshold is the element count above which a term page gets a
// running-time warning.
const busyNodeThreshold = 50

// Client is an EBI OLS API client. The zero value is not usable; construct
// with NewClient.
type Client struct {
	httpClient *http.Client
	delay      time.Duration
	userAgent  string
	searchRows int
	logger     *slog.Logger
}

// NewClient returns an OLS client that pauses for delay before every request.
func NewClient(httpClient *http.Client, delay time.Duration, userAgent string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		delay:      delay,
		userAgent:  userAgent,
		searchRows: defaultSearchRows,
		logger:     logger,
	}
}

// SetSearchRows overrides the search page size. Values under 1 are ignored.
func (c *Client) SetSearchRows(rows int) {
	if rows > 0 {
		c.searchRows = rows
	}
}

// SearchFilter narrows an ontology keyword search.
type SearchFilter struct {
	// Ontology restricts the search to one namespace (e.g. "mondo");
	// empty searches all ontologies.
	Ontology string

	// Exact requires whole-term matches. Non-exact searches quote the term
	// so multi-word phrases are still matched as one unit.
	Exact bool

	// AllChildrenOf restricts results to descendants of the given node IRI.
	AllChildrenOf string
}

// SearchIRIs searches OLS for the term and returns the IRIs of the matching
// ontology nodes. Upper-level BFO nodes are excluded: they classify the match
// rather than name it, and their synonyms ("entity", "continuant") would
// poison the synonym list.
func (c *Client) SearchIRIs(ctx context.Context, term string, filter SearchFilter) ([]string, error) {
	if err := httputil.Throttle(ctx, c.delay); err != nil {
		return nil, err
	}

	q := term
	if !filter.Exact {
		q = `"` + term + `"`
	}
	params := url.Values{
		"q":    {q},
		"rows": {strconv.Itoa(c.searchRows)},
	}
	if filter.Exact {
		params.Set("exact", "on")
	}
	if filter.Ontology != "" {
		params.Set("ontology", filter.Ontology)
	}
	if filter.AllChildrenOf != "" {
		params.Set("allChildrenOf", filter.AllChildrenOf)
	}

	var parsed searchResponse
	if err := c.getJSON(ctx, olsSearchBase+"?"+params.Encode(), &parsed); err != nil {
		return nil, fmt.Errorf("OLS search for %q: %w", term, err)
	}

	iris := []string{}
	for _, doc := range parsed.Response.Docs {
		if strings.Contains(doc.IRI, "/obo/BFO_0") {
			continue
		}
		iris = append(iris, doc.IRI)
	}
	sort.Strings(iris)
	iris = iris[:set.Uniq(sort.StringSlice(iris))]

	c.logger.Debug("ontology nodes found", "term", term, "iris", len(iris))
	return iris, nil
}

// TermRecord holds what one ontology node contributes: its synonyms and its
// OBO identifier (used for descendant lookups).
type TermRecord struct {
	OBOIDs   []string
	Synonyms []string
}

// FetchTerm retrieves the term pages for an IRI, following next links, and
// extracts every synonym recorded on the nodes. Unexpected page shapes are
// logged and contribute no synonyms rather than failing the lookup.
func (c *Client) FetchTerm(ctx context.Context, term, iri string) (TermRecord, error) {
	params := url.Values{
		"iri":  {iri},
		"size": {"1000"},
	}
	return c.walkTermPages(ctx, term, olsTermsBase+"?"+params.Encode())
}

// FetchDescendants retrieves the hierarchical descendants of an anatomy node
// by OBO id and extracts their synonyms.
func (c *Client) FetchDescendants(ctx context.Context, term, oboID string) (TermRecord, error) {
	params := url.Values{
		"id":   {oboID},
		"size": {"1000"},
	}
	return c.walkTermPages(ctx, term, olsDescendantsBase+"?"+params.Encode())
}

// walkTermPages fetches a term-list page and every next page linked from it,
// accumulating synonyms and OBO ids.
func (c *Client) walkTermPages(ctx context.Context, term, pageURL string) (TermRecord, error) {
	var rec TermRecord

	for pageURL != "" {
		if err := httputil.Throttle(ctx, c.delay); err != nil {
			return rec, err
		}

		var page termsPage
		if err := c.getJSON(ctx, pageURL, &page); err != nil {
			return rec, fmt.Errorf("OLS term page for %q: %w", term, err)
		}

		if page.Page.Number == 0 && page.Page.TotalElements > busyNodeThreshold {
			c.logger.Warn("large synonym search result",
				"term", term, "elements", page.Page.TotalElements)
		}

		if len(page.Embedded.Terms) == 0 {
			if page.Page.TotalElements != 0 {
				c.logger.Warn("unexpected OLS page shape, no synonyms extracted",
					"term", term, "url", pageURL)
			}
			return rec, nil
		}

		for _, t := range page.Embedded.Terms {
			if t.OBOID != "" {
				rec.OBOIDs = append(rec.OBOIDs, t.OBOID)
			}
			rec.Synonyms = append(rec.Synonyms, extractSynonyms(t)...)
		}

		pageURL = page.Links.Next.Href
	}

	return rec, nil
}

// extractSynonyms gathers the synonyms recorded on one ontology node: the
// synonyms list, the label, and any of the annotation headers known to carry
// synonyms. NCBI-style "Other designations:" values are pipe-separated lists.
func extractSynonyms(t olsTerm) []string {
	syns := append([]string{}, t.Synonyms...)
	if t.Label != "" {
		syns = append(syns, t.Label)
	}
	for _, key := range annotationKeys {
		for _, val := range t.Annotation[key] {
			if rest, ok := strings.CutPrefix(val, "Other designations:"); ok {
				for _, des := range strings.Split(rest, "|") {
					syns = append(syns, strings.TrimSpace(des))
				}
				continue
			}
			syns = append(syns, val)
		}
	}
	return syns
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return fmt.Errorf("OLS request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("OLS returned HTTP %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing OLS response: %w", err)
	}
	return nil
}

type searchResponse struct {
	Response struct {
		Docs []struct {
			IRI string `json:"iri"`
		} `json:"docs"`
	} `json:"response"`
}

type termsPage struct {
	Embedded struct {
		Terms []olsTerm `json:"terms"`
	} `json:"_embedded"`
	Links struct {
		Next struct {
			Href string `json:"href"`
		} `json:"next"`
	} `json:"_links"`
	Page struct {
		TotalElements int `json:"totalElements"`
		Number        int `json:"number"`
	} `json:"page"`
}

type olsTerm struct {
	Label      string              `json:"label"`
	Synonyms   []string            `json:"synonyms"`
	OBOID      string              `json:"obo_id"`
	Annotation map[string][]string `json:"annotation"`
}
