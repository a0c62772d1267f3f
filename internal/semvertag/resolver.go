// Package semvertag resolves repository tag names as semantic versions.
// It backs the "~.." range shorthand: given the tags of a repository and a
// release title, it finds the nearest preceding semver tag to use as the
// left endpoint of a revision range.
//
// Tags that do not parse as semver (after stripping an optional "v"/"V"
// prefix) are excluded from resolution but never cause an error - unrelated
// tags are common in real repositories.
package semvertag

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// candidate pairs a raw tag name with its parsed version.
type candidate struct {
	raw     string
	version *semver.Version
}

// Parse parses a tag name as a strict MAJOR.MINOR.PATCH semantic version,
// tolerating an optional leading "v" or "V". Pre-release and build metadata
// suffixes are accepted. Returns nil if the tag is not a semver tag.
func Parse(tag string) *semver.Version {
	trimmed := tag
	if len(trimmed) > 0 && (trimmed[0] == 'v' || trimmed[0] == 'V') {
		trimmed = trimmed[1:]
	}
	v, err := semver.StrictNewVersion(trimmed)
	if err != nil {
		return nil
	}
	return v
}

// ResolveNearest finds the nearest preceding semver tag among tags.
//
// With an empty target it returns the maximum valid tag by semver
// precedence. With a non-empty target it returns the greatest tag strictly
// less than the target; the target itself need not exist among tags.
//
// The second return value is false when no tag qualifies: no valid semver
// tags exist, the target parses but is not preceded by any tag, or the
// target itself does not parse. Callers fall back to "all history" in that
// case.
//
// The returned string preserves the original casing and prefix of the tag
// as supplied. The result is deterministic for a fixed input set: ties
// between tags naming the same version (e.g. "1.0.0" and "v1.0.0") are
// broken by the raw tag string.
func ResolveNearest(tags []string, target string) (string, bool) {
	candidates := parseCandidates(tags)
	if len(candidates) == 0 {
		return "", false
	}

	var ceiling *semver.Version
	if target != "" {
		ceiling = Parse(target)
		if ceiling == nil {
			return "", false
		}
	}

	best := -1
	for i, c := range candidates {
		if ceiling != nil && !c.version.LessThan(ceiling) {
			continue
		}
		if best == -1 || candidates[best].version.LessThan(c.version) {
			best = i
		}
	}

	if best == -1 {
		return "", false
	}
	return candidates[best].raw, true
}

// parseCandidates filters tags down to valid semver candidates, sorted by
// raw tag name so that equal-version ties resolve deterministically
// regardless of input order.
func parseCandidates(tags []string) []candidate {
	candidates := make([]candidate, 0, len(tags))
	for _, tag := range tags {
		if v := Parse(tag); v != nil {
			candidates = append(candidates, candidate{raw: tag, version: v})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].raw < candidates[j].raw
	})

	return candidates
}
