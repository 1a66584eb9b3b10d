// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package harvest

import (
	"regexp"
	"strings"

	"github.com/pdiddy/litscout/pkg/types"
)

// sep matches the separators allowed inside a numbered list: spaces and
// hyphen/dash variants.
const sep = `[-–—‑\s]`

// item matches one list member: digits with an optional letter and more
// digits ("1", "1a", "1a1").
const item = `\d+[a-z]?\d*`

// MatchesIndirectList reports whether the title or abstract mentions one of
// the family members indirectly through a numbered list, as in "ADAMTS-4, -5
// and -9" implying ADAMTS5. The text is case-folded and searched for each
// root followed by a run of list items ending in a conjunction and the
// member's own remainder.
func MatchesIndirectList(title, abstract string, roots []types.FamilyRoot) bool {
	text := strings.ToLower(title + ". " + abstract)

	for _, fr := range roots {
		root := strings.ToLower(fr.Root)
		if !strings.Contains(text, root) {
			continue
		}
		for _, part := range fr.Remainders {
			remainder := strings.ToLower(part)
			if !strings.Contains(text, remainder) {
				continue
			}
			pattern := regexp.QuoteMeta(root) + `'?` + sep + `*` + item + sep + `*` +
				`(,` + sep + `*` + item + `)*` +
				`(and|or|,)\s` + sep + `*` + regexp.QuoteMeta(remainder)
			if regexp.MustCompile(pattern).MatchString(text) {
				return true
			}
		}
	}
	return false
}
