// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synonym

import (
	"regexp"
	"strings"

	"github.com/pdiddy/litscout/pkg/types"
)

var (
	systematicNameRe = regexp.MustCompile(`(?i).*\d+[A-Za-z]?\d*$`)
	rootSuffixRe     = regexp.MustCompile(`.+?[-\s,]*(\d| [IXV]+)+[A-Za-z]?(\d| [IXV]+)*$`)
	rootCaptureRe    = regexp.MustCompile(`^(.+?)(TYPE|[Tt]ype)?[-\s,]*(\d| [IXV]+)+([-\s,]|[A-Za-z]|MOTIF|[Mm]otif|PROTEIN|[Pp]rotein|DOMAIN|[Dd]omain|PSEUDOGENE|[Pp]seudogene|CONTAINING|[Cc]ontaining)*(\d| [IXV]+)*$`)
)

// IsSystematicFamilyName reports whether a gene name looks like one member of
// a similarly named family, i.e. it ends with digits (optionally followed by
// a letter and more digits). Chromosome ORF, UNQ/PRO and KIAA codes end with
// digits but are not families.
func IsSystematicFamilyName(gene string) bool {
	if orfCodePrefixRe.MatchString(gene) || unqProPrefixRe.MatchString(gene) || kiaaPrefixRe.MatchString(gene) {
		return false
	}
	return systematicNameRe.MatchString(gene)
}

// Prefix forms of the fixed-format patterns: the family-name test rejects any
// name starting with one of these codes, even with trailing text.
var (
	orfCodePrefixRe = regexp.MustCompile(`^[Cc]\d+orf\d+`)
	unqProPrefixRe  = regexp.MustCompile(`^UNQ\d+/PRO\d+`)
	kiaaPrefixRe    = regexp.MustCompile(`^KIAA\d+`)
)

// RootOf strips a gene synonym down to its family root: the text before the
// trailing numbering, with type/motif/protein/domain/pseudogene/containing
// words, digits, roman numerals and separators removed. Returns "" when the
// synonym has no family-style suffix.
func RootOf(syn string) string {
	normalized := syn
	for _, hyp := range hyphenVariants[1:] {
		normalized = strings.ReplaceAll(normalized, hyp, "-")
	}
	if !rootSuffixRe.MatchString(normalized) {
		return ""
	}
	if orfCodePrefixRe.MatchString(normalized) || unqProPrefixRe.MatchString(normalized) ||
		kiaaPrefixRe.MatchString(normalized) || strings.HasPrefix(normalized, "type") {
		return ""
	}
	m := rootCaptureRe.FindStringSubmatch(normalized)
	if m == nil {
		return ""
	}
	return strings.Trim(m[1], ",- ")
}

// RecurrentRoots returns the family roots that appear more than once among
// the given synonyms. A root shared by several synonyms indicates a real
// family (ADAMTS4, ADAMTS5 → ADAMTS); a one-off suffix does not.
func RecurrentRoots(syns []string) []string {
	counts := map[string]int{}
	for _, syn := range uniq(syns) {
		if root := RootOf(syn); root != "" {
			counts[root]++
		}
	}
	roots := []string{}
	for root, n := range counts {
		if n > 1 {
			roots = append(roots, root)
		}
	}
	return uniq(roots)
}

// RootsAndParts pairs each family root with the non-root remainders of the
// synonyms that contain it (ABC1, ABC3 with root ABC → remainders {1, 3}).
// Roots with no non-empty remainder among the synonyms are omitted.
func RootsAndParts(roots, syns []string) []types.FamilyRoot {
	out := []types.FamilyRoot{}
	for _, root := range uniq(roots) {
		parts := []string{}
		for _, syn := range syns {
			if strings.Contains(syn, root) {
				if part := strings.TrimSpace(strings.ReplaceAll(syn, root, "")); part != "" {
					parts = append(parts, part)
				}
			}
		}
		if len(parts) > 0 {
			out = append(out, types.FamilyRoot{Root: root, Remainders: uniq(parts)})
		}
	}
	return out
}
