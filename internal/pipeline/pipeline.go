// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline orchestrates a litscout run: run-wide term resolution,
// per-entity fan-out, query packing, harvesting and result assembly.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/pdiddy/litscout/internal/harvest"
	"github.com/pdiddy/litscout/internal/query"
	"github.com/pdiddy/litscout/internal/synonym"
	"github.com/pdiddy/litscout/pkg/types"
)

// Outcome is the result of one entity's search task. A failed task carries
// its error here instead of aborting sibling tasks.
type Outcome struct {
	Row    types.GeneRow
	Result *types.SearchResultSet
	Err    error
}

// Pipeline runs the full co-occurrence search for a set of input rows.
type Pipeline struct {
	resolver  *synonym.Resolver
	harvester *harvest.Harvester
	packer    *query.Packer
	cfg       types.SearchConfig
	logger    *slog.Logger
}

// New returns a Pipeline.
func New(resolver *synonym.Resolver, harvester *harvest.Harvester, cfg types.SearchConfig, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		resolver:  resolver,
		harvester: harvester,
		packer:    query.NewPacker(logger),
		cfg:       cfg,
		logger:    logger,
	}
}

// globals are the run-wide query parts shared by every entity: the disease
// and tissue synonym sets, keyword sets when supplied globally, and the
// unsplittable settings expression.
type globals struct {
	disease  types.SynonymSet
	tissue   types.SynonymSet
	keywords []types.SynonymSet
	other    string
}

// Run resolves the run-wide terms once, then fans out one search task per
// row under a bounded pool. All tasks run to completion; the returned error
// summarizes how many failed, and per-task errors sit in their Outcomes.
func (p *Pipeline) Run(ctx context.Context, rows []types.GeneRow) ([]Outcome, error) {
	g, err := p.resolveGlobals(ctx)
	if err != nil {
		return nil, err
	}

	workers := p.cfg.Workers
	if workers <= 0 {
		workers = 4
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	outcomes := make([]Outcome, len(rows))
	for i, row := range rows {
		i, row := i, row
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			outcomes[i] = p.runEntity(ctx, row, g)
		})
		if submitErr != nil {
			wg.Done()
			outcomes[i] = Outcome{Row: row, Err: fmt.Errorf("submitting search task: %w", submitErr)}
		}
	}
	wg.Wait()

	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			p.logger.Error("search failed", "key", o.Row.Key, "error", o.Err)
		}
	}
	if failed > 0 {
		return outcomes, fmt.Errorf("%d of %d searches failed", failed, len(rows))
	}
	return outcomes, nil
}

// resolveGlobals expands the run-wide disease, tissue and keyword terms.
func (p *Pipeline) resolveGlobals(ctx context.Context) (globals, error) {
	g := globals{other: query.OtherExpression(p.cfg.OtherFields, p.logger)}

	if p.cfg.Disease != "" {
		set, err := p.resolver.Disease(ctx, p.cfg.Disease)
		if err != nil {
			return g, err
		}
		g.disease = set
	}
	if p.cfg.Tissue != "" {
		set, err := p.resolver.Tissue(ctx, p.cfg.Tissue, p.cfg.TissueDescendants)
		if err != nil {
			return g, err
		}
		g.tissue = set
	}
	if len(p.cfg.Keywords) > 0 {
		sets, err := p.resolver.Keywords(ctx, p.cfg.Keywords, p.cfg.ExpandKeywords)
		if err != nil {
			return g, err
		}
		g.keywords = sets
	}
	return g, nil
}

// runEntity performs the complete search for one row: gene resolution,
// query packing, harvesting, preprint elimination and the family-root
// follow-up.
func (p *Pipeline) runEntity(ctx context.Context, row types.GeneRow, g globals) Outcome {
	fail := func(err error) Outcome { return Outcome{Row: row, Err: err} }

	kwSets := g.keywords
	if len(kwSets) == 0 && len(row.Keywords) > 0 {
		sets, err := p.resolver.Keywords(ctx, row.Keywords, p.cfg.ExpandKeywords)
		if err != nil {
			return fail(err)
		}
		kwSets = sets
	}

	geneSet, roots, err := p.resolver.Gene(ctx, row)
	if err != nil {
		return fail(err)
	}

	segments := p.buildSegments(geneSet.Synonyms, g, kwSets, true)
	queries := p.packer.Pack(segments, g.other)

	audit, docs, hits, err := p.harvester.Run(ctx, queries)
	if err != nil {
		return fail(err)
	}
	docs = harvest.EliminatePreprints(docs)

	// Root queries only pay off while the primary results are under the
	// ceiling: beyond it the report is already truncated.
	if len(roots) > 0 && len(docs) < harvest.ReportingCeiling {
		rootTerms := make([]string, 0, len(roots))
		for _, fr := range roots {
			rootTerms = append(rootTerms, fr.Root+"*")
		}
		rootSegments := p.buildSegments(rootTerms, g, kwSets, false)
		rootQueries := p.packer.Pack(rootSegments, g.other)

		known := map[string]bool{}
		for _, doc := range docs {
			known[doc.ID] = true
		}
		matched, err := p.harvester.RunRoots(ctx, rootQueries, len(docs), known, roots, row.Identifier)
		if err != nil {
			return fail(err)
		}
		docs = append(docs, matched...)
	}

	display := strconv.Itoa(len(docs))
	if hits >= harvest.ReportingCeiling {
		display = fmt.Sprintf("over %d", harvest.ReportingCeiling)
	}

	return Outcome{
		Row: row,
		Result: &types.SearchResultSet{
			Key:             row.Key,
			Gene:            row.Identifier,
			SearchTerms:     p.searchDescription(kwSets),
			Queries:         audit,
			Synonyms:        geneSet.Synonyms,
			Documents:       docs,
			HitCount:        len(docs),
			HitCountDisplay: display,
		},
	}
}

// buildSegments renders the gene expression and the shared disease, tissue
// and keyword expressions into packable segments. Family-root searches skip
// the keyword field: a bare root matches too many curated keyword lists.
func (p *Pipeline) buildSegments(geneSyns []string, g globals, kwSets []types.SynonymSet, includeKW bool) []query.Segment {
	segments := []query.Segment{query.NewSegment("genes", geneSyns, includeKW)}
	if len(g.disease.Synonyms) > 0 {
		segments = append(segments, query.NewSegment("diseases", g.disease.Synonyms, true))
	}
	if len(g.tissue.Synonyms) > 0 {
		segments = append(segments, query.NewSegment("tissues", g.tissue.Synonyms, true))
	}
	for i, set := range kwSets {
		segments = append(segments, query.NewSegment(fmt.Sprintf("kwd%d", i+1), set.Synonyms, true))
	}
	return segments
}

// searchDescription joins the non-gene search terms into the human-readable
// string shown in reports.
func (p *Pipeline) searchDescription(kwSets []types.SynonymSet) string {
	parts := []string{}
	if p.cfg.Disease != "" {
		parts = append(parts, p.cfg.Disease)
	}
	if p.cfg.Tissue != "" {
		parts = append(parts, p.cfg.Tissue)
	}
	for _, f := range p.cfg.OtherFields {
		parts = append(parts, f.Name+" "+f.Value)
	}
	for _, set := range kwSets {
		parts = append(parts, set.Term)
	}

	joined := strings.Join(parts, ", ")
	joined = strings.ReplaceAll(joined, `"`, "")
	joined = strings.ReplaceAll(joined, "'", "")
	joined = strings.Join(strings.Fields(joined), " ")
	return strings.Trim(joined, ", ")
}
