// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mapping resolves gene identifiers to their recorded gene names via
// the UniProtKB search API.
package mapping

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/xtgo/set"

	"github.com/pdiddy/litscout/internal/httputil"
)

// uniprotSearchBase is the UniProtKB search endpoint. Declared as a var so
// tests can substitute an httptest server.
var uniprotSearchBase = "https://rest.uniprot.org/uniprotkb/search"

var wsRe = regexp.MustCompile(`[\n ]+`)

// Client looks up gene names in UniProtKB.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

// NewClient returns a UniProt mapping client.
func NewClient(httpClient *http.Client, userAgent string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{httpClient: httpClient, userAgent: userAgent, logger: logger}
}

// GeneNames queries UniProtKB for the reviewed entries matching the
// identifier under the given query field (e.g. "gene_exact", "accession")
// and organism, and returns every gene name recorded on them. The boolean
// result reports whether the identifier resolved; when it did not, or the
// service was unreachable, the identifier itself is returned verbatim so
// the search can still proceed on the user's spelling.
func (c *Client) GeneNames(ctx context.Context, idType, geneID, taxonID string) ([]string, bool, error) {
	query := fmt.Sprintf("%s:%s+organism_id:%s+reviewed:true", idType, geneID, taxonID)
	params := url.Values{
		"fields": {"gene_names"},
		"format": {"tsv"},
	}
	// UniProt's query grammar uses + as the term separator, which
	// url.Values would escape; append the query raw.
	reqURL := uniprotSearchBase + "?query=" + query + "&" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("creating request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		c.logger.Warn("UniProt unreachable, continuing with the identifier verbatim",
			"gene", geneID, "id_type", idType, "taxon", taxonID, "error", err)
		return []string{geneID}, false, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("UniProt lookup failed, continuing with the identifier verbatim",
			"gene", geneID, "id_type", idType, "taxon", taxonID, "status", resp.StatusCode)
		return []string{geneID}, false, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("reading UniProt response: %w", err)
	}

	names := parseGeneNames(string(body))
	if len(names) == 0 {
		return []string{geneID}, false, nil
	}

	c.logger.Debug("UniProt gene names found", "gene", geneID, "names", len(names))
	names = append(names, geneID)
	sort.Strings(names)
	return names[:set.Uniq(sort.StringSlice(names))], true, nil
}

// parseGeneNames extracts gene names from the one-column TSV response. Each
// entry row lists names separated by spaces; the header row is discarded.
func parseGeneNames(body string) []string {
	body = strings.ReplaceAll(body, "Gene Names", "")
	body = strings.ReplaceAll(body, "Gene names", "")
	body = strings.TrimSpace(body)
	if body == "" {
		return nil
	}

	names := []string{}
	for _, field := range wsRe.Split(body, -1) {
		if field = strings.TrimSpace(field); field != "" {
			names = append(names, field)
		}
	}
	return names
}
