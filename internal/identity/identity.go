package identity

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize produces the join key used for partner reconciliation: trimmed,
// lower-cased, with combining marks stripped ("José " and "jose" collide).
// The ledger carries no durable partner id, so this key is the identity.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ClosestMatch resolves name against candidates. An exact normalized match
// wins immediately; otherwise the candidate with the smallest levenshtein
// distance under a 0.4 relative threshold is returned. The second return is
// false when nothing is close enough.
func ClosestMatch(name string, candidates []string) (string, bool) {
	target := Normalize(name)
	if target == "" {
		return "", false
	}
	best := ""
	bestDist := -1
	for _, c := range candidates {
		n := Normalize(c)
		if n == "" {
			continue
		}
		if n == target {
			return c, true
		}
		dist := levenshtein.ComputeDistance(target, n)
		maxLen := len(target)
		if len(n) > maxLen {
			maxLen = len(n)
		}
		if float64(dist)/float64(maxLen) >= 0.4 {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best, bestDist = c, dist
		}
	}
	return best, bestDist != -1
}
