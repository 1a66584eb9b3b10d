// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synonym

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/pdiddy/litscout/internal/ontology"
	"github.com/pdiddy/litscout/pkg/types"
)

// geneSynonymWarnThreshold is the synonym count above which a gene gets a
// noise warning: real genes rarely carry more usable names.
const geneSynonymWarnThreshold = 30

// keywordSynonymCeiling is the synonym count above which keyword expansion is
// considered noise and the bare keyword is used instead.
const keywordSynonymCeiling = 100

// OntologyAPI is the slice of the OLS client the resolver needs.
type OntologyAPI interface {
	SearchIRIs(ctx context.Context, term string, filter ontology.SearchFilter) ([]string, error)
	FetchTerm(ctx context.Context, term, iri string) (ontology.TermRecord, error)
	FetchDescendants(ctx context.Context, term, oboID string) (ontology.TermRecord, error)
}

// MappingAPI is the slice of the UniProt client the resolver needs.
type MappingAPI interface {
	GeneNames(ctx context.Context, idType, geneID, taxonID string) ([]string, bool, error)
}

// Resolver expands user-supplied terms into cleaned synonym sets using the
// ontology lookup service and the identifier-mapping service.
type Resolver struct {
	ols     OntologyAPI
	uniprot MappingAPI
	workers int
	logger  *slog.Logger
}

// NewResolver returns a Resolver that fetches ontology nodes with up to
// workers concurrent requests.
func NewResolver(ols OntologyAPI, uniprot MappingAPI, workers int, logger *slog.Logger) *Resolver {
	if workers <= 0 {
		workers = 4
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{ols: ols, uniprot: uniprot, workers: workers, logger: logger}
}

// Disease expands a disease term through the MONDO disease ontology.
func (r *Resolver) Disease(ctx context.Context, term string) (types.SynonymSet, error) {
	iris, err := r.ols.SearchIRIs(ctx, term, ontology.SearchFilter{Ontology: ontology.OntologyDisease})
	if err != nil {
		return types.SynonymSet{}, fmt.Errorf("resolving disease %q: %w", term, err)
	}

	rec, err := r.collect(ctx, term, iris)
	if err != nil {
		return types.SynonymSet{}, fmt.Errorf("resolving disease %q: %w", term, err)
	}

	cleaner := NewCleaner(term, r.logger)
	return types.SynonymSet{
		Term:     term,
		Synonyms: cleaner.Clean(append([]string{term}, rec.Synonyms...), types.KindDisease),
	}, nil
}

// Tissue expands a tissue/organ term through the UBERON anatomy ontology:
// exact node matches, optionally their hierarchical descendants, plus the
// static adjectival qualifiers.
func (r *Resolver) Tissue(ctx context.Context, term string, descendants bool) (types.SynonymSet, error) {
	iris, err := r.ols.SearchIRIs(ctx, term, ontology.SearchFilter{
		Ontology: ontology.OntologyAnatomy,
		Exact:    true,
	})
	if err != nil {
		return types.SynonymSet{}, fmt.Errorf("resolving tissue %q: %w", term, err)
	}

	rec, err := r.collect(ctx, term, iris)
	if err != nil {
		return types.SynonymSet{}, fmt.Errorf("resolving tissue %q: %w", term, err)
	}

	syns := append([]string{term}, rec.Synonyms...)
	if descendants {
		for _, oboID := range uniq(rec.OBOIDs) {
			desc, err := r.ols.FetchDescendants(ctx, term, oboID)
			if err != nil {
				return types.SynonymSet{}, fmt.Errorf("resolving tissue %q descendants: %w", term, err)
			}
			syns = append(syns, desc.Synonyms...)
		}
	}

	cleaner := NewCleaner(term, r.logger)
	syns = cleaner.AnatomyQualifiers(syns)
	return types.SynonymSet{
		Term:     term,
		Synonyms: cleaner.Clean(syns, types.KindTissue),
	}, nil
}

// Keywords expands each keyword into its own synonym set. Without expansion
// each keyword stands alone. An expansion yielding more than
// keywordSynonymCeiling forms is treated as ontology noise and replaced by
// the bare keyword.
func (r *Resolver) Keywords(ctx context.Context, kwds []string, expand bool) ([]types.SynonymSet, error) {
	sets := make([]types.SynonymSet, 0, len(kwds))
	for _, kwd := range uniq(kwds) {
		if !expand {
			sets = append(sets, types.SynonymSet{Term: kwd, Synonyms: []string{kwd}})
			continue
		}

		iris, err := r.ols.SearchIRIs(ctx, kwd, ontology.SearchFilter{Exact: true})
		if err != nil {
			return nil, fmt.Errorf("resolving keyword %q: %w", kwd, err)
		}
		rec, err := r.collect(ctx, kwd, iris)
		if err != nil {
			return nil, fmt.Errorf("resolving keyword %q: %w", kwd, err)
		}

		cleaner := NewCleaner(kwd, r.logger)
		syns := cleaner.Clean(append([]string{kwd}, rec.Synonyms...), types.KindKeyword)
		if len(syns) > keywordSynonymCeiling {
			r.logger.Warn("noise suspected in keyword expansion, using the bare keyword",
				"keyword", kwd, "synonyms", len(syns))
			syns = []string{kwd}
		}
		sets = append(sets, types.SynonymSet{Term: kwd, Synonyms: syns})
	}
	return sets, nil
}

// Gene expands a gene row: identifier mapping first, then gene-ontology
// lookups for every mapped name, wildcard root recovery, and the gene-grade
// final cleaning. It also derives the family roots used to catch indirect
// numbered-list mentions.
func (r *Resolver) Gene(ctx context.Context, row types.GeneRow) (types.SynonymSet, []types.FamilyRoot, error) {
	gene := row.Identifier
	if row.IsWildcard() {
		r.logger.Warn("wildcard gene, search may take longer than usual", "gene", gene)
	}
	humanOnly := row.TaxonID == "9606"

	names, found, err := r.uniprot.GeneNames(ctx, row.IDType, gene, row.TaxonID)
	if err != nil {
		return types.SynonymSet{}, nil, fmt.Errorf("resolving gene %q: %w", gene, err)
	}

	rootNames := []string{}
	iris := []string{}
	for _, name := range names {
		filter := ontology.SearchFilter{
			Ontology: ontology.OntologyGenes,
			Exact:    !strings.Contains(name, "*"),
		}
		if humanOnly {
			filter.AllChildrenOf = ontology.HumanGeneBranchIRI
		}
		hits, err := r.ols.SearchIRIs(ctx, name, filter)
		if err != nil {
			return types.SynonymSet{}, nil, fmt.Errorf("resolving gene %q: %w", gene, err)
		}
		if len(hits) == 0 && !found {
			r.logger.Warn("no synonyms found in UniProt or the gene ontology, check the entry for mistakes",
				"gene", name, "id_type", row.IDType)
		}
		iris = append(iris, hits...)

		if IsSystematicFamilyName(name) {
			if root := RootOf(name); root != "" {
				rootNames = append(rootNames, root)
			}
		}
	}

	rec, err := r.collect(ctx, gene, uniq(iris))
	if err != nil {
		return types.SynonymSet{}, nil, fmt.Errorf("resolving gene %q: %w", gene, err)
	}
	syns := append(names, rec.Synonyms...)

	if len(syns) > geneSynonymWarnThreshold {
		r.logger.Warn("many synonyms found, check the associated search results for noise",
			"gene", gene, "synonyms", len(syns))
	}

	// A wildcard matches a whole family; the recurring roots among its
	// synonyms are themselves worth querying.
	if row.IsWildcard() {
		syns = append(syns, RecurrentRoots(syns)...)
	}

	cleaner := NewCleaner(gene, r.logger)
	finalSyns := cleaner.FinalGeneClean(gene, syns)

	var roots []types.FamilyRoot
	if len(rootNames) > 0 {
		cleanRoots := cleaner.Clean(rootNames, types.KindGene)
		kept := make([]string, 0, len(cleanRoots))
		for _, root := range cleanRoots {
			if root != gene {
				kept = append(kept, root)
			}
		}
		roots = RootsAndParts(kept, finalSyns)
		if len(roots) > 0 {
			r.logger.Info("gene appears to be in a systematically named family",
				"gene", gene, "roots", len(roots))
		}
	}

	return types.SynonymSet{Term: gene, Synonyms: finalSyns}, roots, nil
}

// fetchResult carries one ontology node lookup back to the aggregator.
type fetchResult struct {
	rec ontology.TermRecord
	err error
}

// collect fetches the term pages for every IRI concurrently under a bounded
// pool and merges the records. The first lookup error fails the whole
// collection; partial synonym lists would silently weaken the search.
func (r *Resolver) collect(ctx context.Context, term string, iris []string) (ontology.TermRecord, error) {
	var merged ontology.TermRecord
	if len(iris) == 0 {
		return merged, nil
	}

	pool, err := ants.NewPool(r.workers)
	if err != nil {
		return merged, fmt.Errorf("creating worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	results := make(chan fetchResult, len(iris))
	for _, iri := range iris {
		iri := iri
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			rec, err := r.ols.FetchTerm(ctx, term, iri)
			results <- fetchResult{rec: rec, err: err}
		})
		if submitErr != nil {
			wg.Done()
			return merged, fmt.Errorf("submitting ontology lookup: %w", submitErr)
		}
	}
	wg.Wait()
	close(results)

	for res := range results {
		if res.err != nil {
			return merged, res.err
		}
		merged.Synonyms = append(merged.Synonyms, res.rec.Synonyms...)
		merged.OBOIDs = append(merged.OBOIDs, res.rec.OBOIDs...)
	}
	merged.Synonyms = uniq(merged.Synonyms)
	return merged, nil
}
