// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package harvest executes packed Europe PMC queries, merges and
// deduplicates their results, and recovers indirect family-list mentions
// through follow-up root queries.
package harvest

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/pdiddy/litscout/internal/epmc"
	"github.com/pdiddy/litscout/pkg/types"
)

// ReportingCeiling caps how many documents are reported per entity; beyond
// it only the first page per query is kept and counts display as "over N".
const ReportingCeiling = 1000

// rootHitWarnThreshold is the hit count above which a root query gets a
// running-time warning: roots are short strings and can match broadly.
const rootHitWarnThreshold = 5000

// SearchAPI is the slice of the Europe PMC client the harvester needs.
type SearchAPI interface {
	Search(ctx context.Context, query, cursor string) (epmc.Page, error)
}

// Harvester runs queries with bounded concurrency and assembles the
// per-entity result set.
type Harvester struct {
	client  SearchAPI
	workers int
	logger  *slog.Logger
}

// NewHarvester returns a Harvester running up to workers queries at once.
func NewHarvester(client SearchAPI, workers int, logger *slog.Logger) *Harvester {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Harvester{client: client, workers: workers, logger: logger}
}

// queryResult carries one executed query back to the aggregator.
type queryResult struct {
	index int
	page  epmc.Page
	err   error
}

// Run executes the queries concurrently and returns the numbered audit
// strings (as echoed back by the service), the deduplicated documents, and
// the total hit count summed over queries. Every query covers a distinct
// synonym combination, so only the first page per query is needed: an entity
// with more than a page of hits is over the reporting ceiling anyway. A
// failed query fails the whole entity; a partial result set would be
// indistinguishable from a complete one.
func (h *Harvester) Run(ctx context.Context, queries []string) ([]string, []types.DocumentRecord, int, error) {
	pool, err := ants.NewPool(h.workers)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	results := make(chan queryResult, len(queries))
	for i, q := range queries {
		i, q := i, q
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			page, err := h.client.Search(ctx, q, epmc.FirstCursor)
			results <- queryResult{index: i, page: page, err: err}
		})
		if submitErr != nil {
			wg.Done()
			return nil, nil, 0, fmt.Errorf("submitting query: %w", submitErr)
		}
	}
	wg.Wait()
	close(results)

	pages := make([]epmc.Page, len(queries))
	for res := range results {
		if res.err != nil {
			return nil, nil, 0, fmt.Errorf("running query: %w", res.err)
		}
		pages[res.index] = res.page
	}

	audit := make([]string, 0, len(pages))
	docs := []types.DocumentRecord{}
	seen := map[string]bool{}
	hits := 0
	for i, page := range pages {
		audit = append(audit, fmt.Sprintf("%d: %s", i+1, page.QueryString))
		hits += page.HitCount
		h.logger.Info("query results", "query", i+1, "hits", page.HitCount)
		for _, doc := range page.Documents {
			if !seen[doc.ID] {
				seen[doc.ID] = true
				docs = append(docs, doc)
			}
		}
	}
	return audit, docs, hits, nil
}

// EliminatePreprints drops preprint records whose published version is
// already present in the same set: the journal article supersedes its
// preprint. Preprints whose published version was not found are kept.
func EliminatePreprints(docs []types.DocumentRecord) []types.DocumentRecord {
	present := map[string]bool{}
	for _, doc := range docs {
		present[doc.ID] = true
	}

	kept := make([]types.DocumentRecord, 0, len(docs))
	for _, doc := range docs {
		if doc.PreprintOf != "" && present[doc.PreprintOf] {
			continue
		}
		kept = append(kept, doc)
	}
	return kept
}

// RunRoots executes the family-root queries and keeps only the documents
// whose title or abstract mentions a family member indirectly through a
// numbered list. Root queries run only while the primary result count is
// under the reporting ceiling, and page forward with the cursor until every
// hit has been inspected or the ceiling is reached. Documents already found
// by the primary queries are skipped.
func (h *Harvester) RunRoots(ctx context.Context, rootQueries []string, resCount int, knownIDs map[string]bool, roots []types.FamilyRoot, gene string) ([]types.DocumentRecord, error) {
	matched := []types.DocumentRecord{}
	seen := map[string]bool{}

	for _, q := range rootQueries {
		cursor := epmc.FirstCursor
		run := 0

		for resCount+len(matched) <= ReportingCeiling {
			run++
			page, err := h.client.Search(ctx, q, cursor)
			if err != nil {
				return nil, fmt.Errorf("running root query: %w", err)
			}

			if run == 1 && page.HitCount > rootHitWarnThreshold {
				h.logger.Warn("many results for a synonym root, parsing may take several minutes",
					"gene", gene, "hits", page.HitCount)
			}

			for _, doc := range page.Documents {
				if knownIDs[doc.ID] || seen[doc.ID] {
					continue
				}
				if MatchesIndirectList(doc.Title, doc.Abstract, roots) {
					h.logger.Info("document mentions the gene indirectly in a list",
						"gene", gene, "id", doc.ID)
					seen[doc.ID] = true
					matched = append(matched, doc)
				}
			}

			if page.NextCursor == "" || page.NextCursor == cursor {
				break
			}
			if page.HitCount-(run*epmc.PageSize) <= 0 {
				break
			}
			cursor = page.NextCursor
		}
	}
	return matched, nil
}
