// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synonym

import (
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/xtgo/set"

	"github.com/pdiddy/litscout/pkg/types"
)

// minSynonymLength is the shortest cleaned form worth querying for; anything
// shorter matches too much text to be useful.
const minSynonymLength = 3

var (
	dotNoDigitRe     = regexp.MustCompile(`\d`)
	multiSpaceRe     = regexp.MustCompile(`\s{2,}`)
	tissueCodeRe     = regexp.MustCompile(`^[A-Z]\d+$`)
	meaningfulParenRe = regexp.MustCompile(`\([^)]*[IXV\d][^)]*\)`)
	parenContentRe   = regexp.MustCompile(`[\(\[]+.*?[\)\]]+`)
	shortLetterNumRe = regexp.MustCompile(`^[A-Za-z]\d{1,3}$`)
	shortCodeRe      = regexp.MustCompile(`^(CI|RR|AIM|FBS|IOP)\d+$`)
	letterDigitRe    = regexp.MustCompile(`([A-Za-zα-ωΑ-Ω])(\d)`)
	spacedDigitRe    = regexp.MustCompile(`([A-Za-zα-ωΑ-Ω]) (\d)`)
	typePhraseRe     = regexp.MustCompile(`(?i)\btype[\s-]*([0-9IXV]+[a-z]?|` + greekNameAlternation + `)\b`)
	geneCodeNoiseRe  = regexp.MustCompile(`^(?i)([A-Za-z]|CI|CD|CT|CRP|PP|LAG|PER|period|TC|UP) \d+\s?\d*$`)
	versionCodeRe    = regexp.MustCompile(`^[vVlL]\d+\s?\d*$`)
)

// greekNameAlternation is built once for the type-phrase pattern.
var greekNameAlternation = func() string {
	names := make([]string, 0, len(greekEquivalents))
	for name := range greekEquivalents {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}()

// Cleaner removes noise from collected synonym lists and expands the
// survivors with spacing, greek-character and phrase-order variants. All
// cleaning is relative to the original term, which is always re-inserted and
// never itself modified.
type Cleaner struct {
	original string
	logger   *slog.Logger
}

// NewCleaner returns a Cleaner for the given original term.
func NewCleaner(original string, logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{original: original, logger: logger}
}

// Clean runs the full cleaning and expansion chain over raw collected terms:
// noise and punctuation stripping, redundancy elimination, "type N" phrase
// reordering, chain-suffix stripping, greek and spacing expansion, and a
// final redundancy pass. The result is sorted and duplicate-free, and always
// contains the original term. Clean is stable on its own output: running it
// twice yields the same list.
func (c *Cleaner) Clean(raw []string, kind types.TermKind) []string {
	filtered := c.stripNoise(raw, kind)
	syns := removeRedundant(filtered)
	syns = expandTypes(syns)
	syns = stripChainSuffix(syns)
	syns = expandGreek(syns)
	syns = addSpacingVariants(syns)
	syns = collapseSpaces(syns)
	syns = removeRedundant(syns)
	return uniq(syns)
}

// AnatomyQualifiers appends the adjectival qualifiers known for any anatomy
// synonym present in the list (e.g. "cardiac" for "heart").
func (c *Cleaner) AnatomyQualifiers(syns []string) []string {
	base := c.stripNoise(syns, types.KindTissue)
	base = uniq(base)
	out := append([]string{}, base...)
	for _, syn := range base {
		if quals, ok := anatomyQualifiers[strings.ToLower(syn)]; ok {
			out = append(out, quals...)
		}
	}
	return uniq(out)
}

// FinalGeneClean runs the standard chain and then removes common gene noise:
// two-character forms, letter-plus-number codes, terms on the common noise
// table, and phrases that start or end with a stop word. The gene itself
// always survives.
func (c *Cleaner) FinalGeneClean(gene string, all []string) []string {
	first := c.Clean(all, types.KindGene)

	filtered := make([]string, 0, len(first))
	for _, syn := range first {
		if syn == gene {
			filtered = append(filtered, syn)
			continue
		}
		if len(syn) <= 2 {
			continue
		}
		if geneCodeNoiseRe.MatchString(syn) || versionCodeRe.MatchString(syn) {
			continue
		}
		if containsFold(commonGeneNoise, syn) {
			continue
		}
		words := splitWords(strings.ToLower(syn))
		if len(words) > 0 {
			if contains(stopWords, words[0]) || contains(stopWords, words[len(words)-1]) {
				continue
			}
		}
		filtered = append(filtered, syn)
	}

	filtered = append(filtered, gene)
	return uniq(filtered)
}

// stripNoise is the initial cleaning pass: it drops curation chatter and
// terms already covered by the original, normalizes punctuation to spaces,
// removes uninformative parentheticals and enforces the minimum length. The
// original term is inserted at the front of the result.
func (c *Cleaner) stripNoise(raw []string, kind types.TermKind) []string {
	out := []string{}
	origWord := wordPattern(c.original)

	for _, term := range uniq(raw) {
		// Terms containing the original are redundant; the original itself
		// is re-added below.
		if origWord.MatchString(term) {
			continue
		}
		if !strings.HasPrefix(term, "GO:") && hasNoiseIndicator(term) {
			continue
		}
		// A dot without any digit marks an abbreviation or sentence
		// fragment, not a synonym.
		if strings.Contains(term, ".") && !dotNoDigitRe.MatchString(term) {
			continue
		}

		for _, marker := range markerWords {
			term = strings.ReplaceAll(term, marker, " ")
		}
		for _, ch := range []string{"_", ",", "?", `"`, "“", "”"} {
			term = strings.ReplaceAll(term, ch, " ")
		}
		for _, hyp := range hyphenVariants {
			term = strings.ReplaceAll(term, hyp, " ")
		}
		// Parentheticals carry meaning only when they hold digits or roman
		// numerals ("factor (VII)"); otherwise drop the bracketed text.
		if !meaningfulParenRe.MatchString(term) {
			term = parenContentRe.ReplaceAllString(term, "")
		}
		term = strings.ReplaceAll(term, "(", " ")
		term = strings.ReplaceAll(term, ")", " ")
		term = strings.ReplaceAll(term, "\n", " ")
		term = strings.TrimSpace(multiSpaceRe.ReplaceAllString(term, " "))

		if len(term) < minSynonymLength {
			continue
		}
		// Single letter plus digits is hopelessly noisy as a tissue name
		// (A10); for genes such forms are real (p53).
		if kind == types.KindTissue && tissueCodeRe.MatchString(term) {
			continue
		}
		out = append(out, term)
	}

	return append([]string{c.original}, out...)
}

// removeRedundant drops any synonym that contains a shorter synonym as a
// boundaried substring: a query for the shorter form also returns every
// document matching the longer one.
func removeRedundant(syns []string) []string {
	byLength := append([]string{}, syns...)
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(strings.Fields(byLength[i])) < len(strings.Fields(byLength[j]))
	})

	redundant := map[string]bool{}
	for _, term := range byLength {
		if redundant[term] {
			continue
		}
		pat := wordPattern(term)
		for _, syn := range syns {
			if syn == term {
				continue
			}
			if pat.MatchString(syn) {
				redundant[syn] = true
			}
		}
	}

	out := make([]string, 0, len(syns))
	for _, syn := range syns {
		if !redundant[syn] {
			out = append(out, syn)
		}
	}
	return out
}

// expandTypes adds phrase-order variants for synonyms containing "type N"
// ("collagen type 1" also as "type 1 collagen" and "collagen 1" forms).
func expandTypes(syns []string) []string {
	extra := []string{}
	for _, syn := range syns {
		if !strings.Contains(strings.ToLower(syn), "type") {
			continue
		}
		m := typePhraseRe.FindString(syn)
		if m == "" || strings.EqualFold(strings.TrimSpace(m), "type") {
			continue
		}
		phrase := strings.TrimSpace(m)
		rest := strings.TrimSpace(strings.Replace(syn, m, "", 1))
		if rest == "" {
			continue
		}
		extra = append(extra, rest+" "+phrase, phrase+" "+rest)
	}
	return uniq(append(syns, collapseSpaces(extra)...))
}

// stripChainSuffix removes a trailing "chain"/"chains" word.
func stripChainSuffix(syns []string) []string {
	out := make([]string, 0, len(syns))
	for _, syn := range syns {
		syn = strings.TrimSpace(syn)
		if strings.HasSuffix(syn, "chains") {
			syn = strings.TrimSpace(strings.TrimSuffix(syn, "chains"))
		} else if strings.HasSuffix(syn, "chain") {
			syn = strings.TrimSpace(strings.TrimSuffix(syn, "chain"))
		}
		out = append(out, syn)
	}
	return uniq(out)
}

// expandGreek closes each synonym over the greek equivalence table: a
// spelled-out letter name gains variants with every equivalent character, and
// a character gains variants with every other equivalent plus the spelled-out
// name. Bare "name + number" forms (e.g. "gamma 2") are dropped as noise.
func expandGreek(syns []string) []string {
	extra := []string{}
	drop := map[string]bool{}

	for _, syn := range syns {
		for name, chars := range greekEquivalents {
			nameNumRe := regexp.MustCompile(`(?i)^` + name + `\s?\d+$`)
			if nameNumRe.MatchString(syn) {
				drop[syn] = true
				continue
			}
			if wordPattern(name).MatchString(syn) {
				nameRe := regexp.MustCompile(`(?i)` + name)
				for _, ch := range chars {
					extra = append(extra, nameRe.ReplaceAllString(syn, ch))
				}
			}
			for _, ch := range chars {
				if !strings.Contains(syn, ch) && !strings.Contains(syn, strings.ToLower(ch)) {
					continue
				}
				found := ch
				if !strings.Contains(syn, ch) {
					found = strings.ToLower(ch)
				}
				if regexp.MustCompile(`^` + regexp.QuoteMeta(found) + `\s?\d+$`).MatchString(syn) {
					continue
				}
				for _, other := range chars {
					extra = append(extra, strings.ReplaceAll(syn, found, other))
				}
				extra = append(extra, strings.ReplaceAll(syn, found, name))
			}
		}
	}

	out := make([]string, 0, len(syns)+len(extra))
	for _, syn := range syns {
		if !drop[syn] {
			out = append(out, syn)
		}
	}
	return uniq(append(out, extra...))
}

// addSpacingVariants adds both the spaced and unspaced forms of every
// letter-number boundary: the search engine treats "ADAMTS-5" and "ADAMTS 5"
// as equivalent but "ADAMTS5" as distinct, so both spellings must be queried.
// Fixed-format identifiers and phrases of more than two words are exempt.
func addSpacingVariants(syns []string) []string {
	extra := []string{}
	for _, syn := range syns {
		for _, hyp := range hyphenVariants {
			syn = strings.ReplaceAll(syn, hyp, " ")
		}
		if orfCodeRe.MatchString(syn) || unqProCodeRe.MatchString(syn) || kiaaCodeRe.MatchString(syn) {
			continue
		}
		if shortLetterNumRe.MatchString(syn) || shortCodeRe.MatchString(syn) {
			continue
		}
		if len(strings.Split(syn, " ")) > 2 {
			continue
		}
		if spaced := letterDigitRe.ReplaceAllString(syn, "$1 $2"); spaced != syn {
			extra = append(extra, spaced)
		}
		if unspaced := spacedDigitRe.ReplaceAllString(syn, "$1$2"); unspaced != syn {
			extra = append(extra, unspaced)
		}
	}
	return uniq(append(syns, extra...))
}

func collapseSpaces(syns []string) []string {
	out := make([]string, 0, len(syns))
	for _, syn := range syns {
		out = append(out, strings.TrimSpace(multiSpaceRe.ReplaceAllString(syn, " ")))
	}
	return out
}

// wordPattern compiles a case-insensitive whole-word pattern for the given
// phrase. A digit directly after a letter is not a word boundary, so "ABC"
// does not match inside "ABC1" and both survive redundancy elimination.
func wordPattern(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b(` + regexp.QuoteMeta(phrase) + `)\b`)
}

func hasNoiseIndicator(term string) bool {
	up := strings.ToUpper(term)
	for _, noisy := range noiseIndicators {
		if strings.Contains(up, strings.ToUpper(noisy)) {
			return true
		}
	}
	return false
}

// uniq sorts and deduplicates in place, dropping empty strings.
func uniq(syns []string) []string {
	out := make([]string, 0, len(syns))
	for _, s := range syns {
		if s != "" {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	n := set.Uniq(sort.StringSlice(out))
	return out[:n]
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func containsFold(list []string, s string) bool {
	up := strings.ToUpper(s)
	for _, v := range list {
		if v == up {
			return true
		}
	}
	return false
}

// splitWords splits on spaces and hyphen variants.
func splitWords(s string) []string {
	for _, hyp := range hyphenVariants {
		s = strings.ReplaceAll(s, hyp, " ")
	}
	return strings.Fields(s)
}
