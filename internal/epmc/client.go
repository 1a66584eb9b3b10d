// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package epmc is a client for the Europe PMC RESTful search API.
package epmc

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/litscout/internal/httputil"
	"github.com/pdiddy/litscout/pkg/types"
)

// epmcSearchBase is the Europe PMC search endpoint. Declared as a var so
// tests can substitute an httptest server.
var epmcSearchBase = "https://www.ebi.ac.uk/europepmc/webservices/rest/search"

// PageSize is the maximum result-page size the service accepts.
const PageSize = 1000

// FirstCursor starts cursor pagination from the first page.
const FirstCursor = "*"

// Client queries the Europe PMC search API.
type Client struct {
	httpClient *http.Client
	delay      time.Duration
	userAgent  string
	logger     *slog.Logger
}

// NewClient returns a Europe PMC client that pauses for delay before every
// request.
func NewClient(httpClient *http.Client, delay time.Duration, userAgent string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{httpClient: httpClient, delay: delay, userAgent: userAgent, logger: logger}
}

// Page is one page of search results.
type Page struct {
	// HitCount is the service's total for the query, across all pages.
	HitCount int

	// QueryString is the query as echoed back by the service.
	QueryString string

	// NextCursor pages forward; empty when this is the last page.
	NextCursor string

	// Documents are the records on this page.
	Documents []types.DocumentRecord
}

// Search runs one query and returns the page at the given cursor. Pass
// FirstCursor for the first page. Results are requested in core detail so
// abstracts and comment corrections are included.
func (c *Client) Search(ctx context.Context, query, cursor string) (Page, error) {
	if err := httputil.Throttle(ctx, c.delay); err != nil {
		return Page{}, err
	}

	params := url.Values{
		"query":      {query},
		"resultType": {"core"},
		"pageSize":   {fmt.Sprintf("%d", PageSize)},
		"format":     {"xml"},
	}
	if cursor != "" {
		params.Set("cursorMark", cursor)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, epmcSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.httpClient, req, 0)
	if err != nil {
		return Page{}, fmt.Errorf("Europe PMC request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("Europe PMC returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Page{}, fmt.Errorf("reading Europe PMC response: %w", err)
	}

	page, err := parsePage(body)
	if err != nil {
		return Page{}, fmt.Errorf("parsing Europe PMC response: %w", err)
	}

	c.logger.Debug("Europe PMC page", "hits", page.HitCount, "documents", len(page.Documents))
	return page, nil
}

// parsePage decodes a search response and converts its results into document
// records. Preprint records carry the identifier of their published version
// when the service has linked one via a "Preprint of" comment correction.
func parsePage(body []byte) (Page, error) {
	var sr searchResponse
	if err := xml.Unmarshal(body, &sr); err != nil {
		return Page{}, err
	}

	page := Page{
		HitCount:    sr.HitCount,
		QueryString: sr.Request.QueryString,
		NextCursor:  sr.NextCursorMark,
	}

	for _, res := range sr.ResultList.Results {
		doc := types.DocumentRecord{
			ID:       res.ID,
			Source:   res.Source,
			Title:    res.Title,
			Year:     res.PubYear,
			Authors:  res.AuthorString,
			PubTypes: strings.Join(res.PubTypeList.PubTypes, ", "),
			Abstract: res.AbstractText,
			Keywords: res.KeywordList.Keywords,
			URL:      fmt.Sprintf("https://europepmc.org/abstract/%s/%s", res.Source, res.ID),
		}
		if strings.HasPrefix(res.ID, "PPR") {
			for _, cc := range res.CommentCorrectionList.CommentCorrections {
				if cc.Type == "Preprint of" {
					doc.PreprintOf = cc.ID
				}
			}
		}
		page.Documents = append(page.Documents, doc)
	}

	return page, nil
}

type searchResponse struct {
	XMLName        xml.Name `xml:"responseWrapper"`
	HitCount       int      `xml:"hitCount"`
	NextCursorMark string   `xml:"nextCursorMark"`
	Request        struct {
		QueryString string `xml:"queryString"`
	} `xml:"request"`
	ResultList struct {
		Results []result `xml:"result"`
	} `xml:"resultList"`
}

type result struct {
	ID           string `xml:"id"`
	Source       string `xml:"source"`
	Title        string `xml:"title"`
	PubYear      string `xml:"pubYear"`
	AuthorString string `xml:"authorString"`
	AbstractText string `xml:"abstractText"`
	PubTypeList  struct {
		PubTypes []string `xml:"pubType"`
	} `xml:"pubTypeList"`
	KeywordList struct {
		Keywords []string `xml:"keyword"`
	} `xml:"keywordList"`
	CommentCorrectionList struct {
		CommentCorrections []struct {
			ID   string `xml:"id"`
			Type string `xml:"type"`
		} `xml:"commentCorrection"`
	} `xml:"commentCorrectionList"`
}
