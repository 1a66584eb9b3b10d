// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synonym

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/pdiddy/litscout/internal/ontology"
	"github.com/pdiddy/litscout/pkg/types"
)

// fakeOLS returns canned IRIs and term records and captures the filters it
// was called with.
type fakeOLS struct {
	mu          sync.Mutex
	iris        map[string][]string
	terms       map[string]ontology.TermRecord
	descendants map[string]ontology.TermRecord
	filters     map[string]ontology.SearchFilter
	err         error
}

func (f *fakeOLS) SearchIRIs(_ context.Context, term string, filter ontology.SearchFilter) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.filters == nil {
		f.filters = map[string]ontology.SearchFilter{}
	}
	f.filters[term] = filter
	return f.iris[term], f.err
}

func (f *fakeOLS) FetchTerm(_ context.Context, _, iri string) (ontology.TermRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.terms[iri], f.err
}

func (f *fakeOLS) FetchDescendants(_ context.Context, _, oboID string) (ontology.TermRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.descendants[oboID], f.err
}

type fakeUniProt struct {
	names []string
	found bool
}

func (f *fakeUniProt) GeneNames(_ context.Context, _, _, _ string) ([]string, bool, error) {
	return f.names, f.found, nil
}

func TestResolverDisease(t *testing.T) {
	ols := &fakeOLS{
		iris: map[string][]string{
			"osteoarthritis": {"http://purl.obolibrary.org/obo/MONDO_0005178"},
		},
		terms: map[string]ontology.TermRecord{
			"http://purl.obolibrary.org/obo/MONDO_0005178": {
				Synonyms: []string{"degenerative arthritis", "osteoarthrosis"},
			},
		},
	}
	r := NewResolver(ols, &fakeUniProt{}, 2, nil)

	set, err := r.Disease(context.Background(), "osteoarthritis")
	if err != nil {
		t.Fatalf("Disease() error: %v", err)
	}
	if set.Term != "osteoarthritis" {
		t.Errorf("Disease() term = %q, want osteoarthritis", set.Term)
	}
	for _, want := range []string{"osteoarthritis", "degenerative arthritis", "osteoarthrosis"} {
		if !set.Contains(want) {
			t.Errorf("Disease() synonyms = %v, missing %q", set.Synonyms, want)
		}
	}

	// Disease searches go against the disease ontology, non-exact.
	f := ols.filters["osteoarthritis"]
	if f.Ontology != ontology.OntologyDisease || f.Exact {
		t.Errorf("Disease() filter = %+v, want mondo non-exact", f)
	}
}

func TestResolverTissueDescendants(t *testing.T) {
	ols := &fakeOLS{
		iris: map[string][]string{
			"cartilage": {"http://purl.obolibrary.org/obo/UBERON_0002418"},
		},
		terms: map[string]ontology.TermRecord{
			"http://purl.obolibrary.org/obo/UBERON_0002418": {
				OBOIDs:   []string{"UBERON:0002418"},
				Synonyms: []string{"cartilage tissue"},
			},
		},
		descendants: map[string]ontology.TermRecord{
			"UBERON:0002418": {Synonyms: []string{"chondroepiphysis"}},
		},
	}
	r := NewResolver(ols, &fakeUniProt{}, 2, nil)

	set, err := r.Tissue(context.Background(), "cartilage", true)
	if err != nil {
		t.Fatalf("Tissue() error: %v", err)
	}
	for _, want := range []string{"cartilage", "chondroepiphysis", "chondral", "chondrocyte"} {
		if !set.Contains(want) {
			t.Errorf("Tissue() synonyms = %v, missing %q", set.Synonyms, want)
		}
	}
	// "cartilage tissue" contains "cartilage" whole-word and is redundant.
	if set.Contains("cartilage tissue") {
		t.Errorf("Tissue() synonyms = %v, redundant term kept", set.Synonyms)
	}

	f := ols.filters["cartilage"]
	if f.Ontology != ontology.OntologyAnatomy || !f.Exact {
		t.Errorf("Tissue() filter = %+v, want uberon exact", f)
	}
}

func TestResolverTissueWithoutDescendants(t *testing.T) {
	ols := &fakeOLS{
		iris: map[string][]string{
			"cartilage": {"http://purl.obolibrary.org/obo/UBERON_0002418"},
		},
		terms: map[string]ontology.TermRecord{
			"http://purl.obolibrary.org/obo/UBERON_0002418": {
				OBOIDs:   []string{"UBERON:0002418"},
				Synonyms: []string{},
			},
		},
		descendants: map[string]ontology.TermRecord{
			"UBERON:0002418": {Synonyms: []string{"chondroepiphysis"}},
		},
	}
	r := NewResolver(ols, &fakeUniProt{}, 2, nil)

	set, err := r.Tissue(context.Background(), "cartilage", false)
	if err != nil {
		t.Fatalf("Tissue() error: %v", err)
	}
	if set.Contains("chondroepiphysis") {
		t.Errorf("Tissue() synonyms = %v, descendants fetched without the flag", set.Synonyms)
	}
}

func TestResolverKeywordsBare(t *testing.T) {
	r := NewResolver(&fakeOLS{}, &fakeUniProt{}, 2, nil)

	sets, err := r.Keywords(context.Background(), []string{"senescence", "apoptosis", "senescence"}, false)
	if err != nil {
		t.Fatalf("Keywords() error: %v", err)
	}
	want := []types.SynonymSet{
		{Term: "apoptosis", Synonyms: []string{"apoptosis"}},
		{Term: "senescence", Synonyms: []string{"senescence"}},
	}
	if !reflect.DeepEqual(sets, want) {
		t.Errorf("Keywords() = %v, want %v", sets, want)
	}
}

func TestResolverKeywordsExpansionCeiling(t *testing.T) {
	// An expansion blowing past the ceiling falls back to the bare keyword.
	noisy := make([]string, 0, 3*keywordSynonymCeiling)
	for i := 0; i < cap(noisy); i++ {
		noisy = append(noisy, randomSynonym(i))
	}
	ols := &fakeOLS{
		iris:  map[string][]string{"senescence": {"http://example.org/node"}},
		terms: map[string]ontology.TermRecord{"http://example.org/node": {Synonyms: noisy}},
	}
	r := NewResolver(ols, &fakeUniProt{}, 2, nil)

	sets, err := r.Keywords(context.Background(), []string{"senescence"}, true)
	if err != nil {
		t.Fatalf("Keywords() error: %v", err)
	}
	if len(sets) != 1 || !reflect.DeepEqual(sets[0].Synonyms, []string{"senescence"}) {
		t.Errorf("Keywords() = %v, want the bare keyword", sets)
	}
}

func TestResolverGene(t *testing.T) {
	ols := &fakeOLS{
		iris: map[string][]string{
			"ADAMTS5": {"http://purl.obolibrary.org/obo/OGG_3000011096"},
		},
		terms: map[string]ontology.TermRecord{
			"http://purl.obolibrary.org/obo/OGG_3000011096": {
				Synonyms: []string{"aggrecanase-2", "ADAMTS-5"},
			},
		},
	}
	uniprot := &fakeUniProt{names: []string{"ADAMTS4", "ADAMTS5"}, found: true}
	r := NewResolver(ols, uniprot, 2, nil)

	row := types.GeneRow{Identifier: "ADAMTS5", IDType: "gene_exact", TaxonID: "9606"}
	set, roots, err := r.Gene(context.Background(), row)
	if err != nil {
		t.Fatalf("Gene() error: %v", err)
	}

	wantSyns := []string{"ADAMTS 4", "ADAMTS 5", "ADAMTS4", "ADAMTS5", "aggrecanase 2", "aggrecanase2"}
	if !reflect.DeepEqual(set.Synonyms, wantSyns) {
		t.Errorf("Gene() synonyms = %v, want %v", set.Synonyms, wantSyns)
	}

	wantRoots := []types.FamilyRoot{{Root: "ADAMTS", Remainders: []string{"4", "5"}}}
	if !reflect.DeepEqual(roots, wantRoots) {
		t.Errorf("Gene() roots = %v, want %v", roots, wantRoots)
	}

	// Human gene searches are restricted to the human branch.
	for _, name := range uniprot.names {
		f := ols.filters[name]
		if f.AllChildrenOf != ontology.HumanGeneBranchIRI {
			t.Errorf("Gene() filter for %q = %+v, want human branch restriction", name, f)
		}
		if f.Ontology != ontology.OntologyGenes || !f.Exact {
			t.Errorf("Gene() filter for %q = %+v, want ogg exact", name, f)
		}
	}
}

func TestResolverGeneWildcardNonExact(t *testing.T) {
	uniprot := &fakeUniProt{names: []string{"ADAMTS*"}, found: false}
	ols := &fakeOLS{}
	r := NewResolver(ols, uniprot, 2, nil)

	row := types.GeneRow{Identifier: "ADAMTS*", IDType: "gene_exact", TaxonID: "10090"}
	if _, _, err := r.Gene(context.Background(), row); err != nil {
		t.Fatalf("Gene() error: %v", err)
	}

	f := ols.filters["ADAMTS*"]
	if f.Exact {
		t.Errorf("Gene() wildcard filter = %+v, want non-exact", f)
	}
	if f.AllChildrenOf != "" {
		t.Errorf("Gene() non-human filter = %+v, want no branch restriction", f)
	}
}

func TestResolverCollectError(t *testing.T) {
	ols := &fakeOLS{
		iris: map[string][]string{"osteoarthritis": {"http://example.org/node"}},
		err:  errors.New("service unavailable"),
	}
	r := NewResolver(ols, &fakeUniProt{}, 2, nil)

	if _, err := r.Disease(context.Background(), "osteoarthritis"); err == nil {
		t.Fatal("Disease() error = nil, want lookup failure")
	}
}

// randomSynonym builds distinct multi-word phrases that survive cleaning.
func randomSynonym(i int) string {
	letters := "bcdfghjklmnpqrstvwz"
	a := letters[i%len(letters)]
	b := letters[(i/len(letters))%len(letters)]
	return "finding " + string(a) + string(b) + "cellular marker"
}
