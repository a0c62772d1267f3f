// Package revrange expands the "~.." revision-range shorthand into a
// concrete two-endpoint range. The shorthand marker means "resolve the
// nearest preceding semver tag as the left endpoint"; everything else is
// passed through opaquely for the git layer to interpret.
package revrange

import (
	"fmt"
	"strings"

	"github.com/ariel-frischer/clgen/internal/semvertag"
)

// Marker is the literal prefix requesting previous-tag resolution.
const Marker = "~"

// separator between the two endpoints of a range expression.
const separator = ".."

// SyntaxError reports a malformed shorthand range expression. The marker
// was present but the expression is missing the ".." separator or the right
// endpoint. It is fatal to the run; malformed ranges are never repaired.
type SyntaxError struct {
	Expr   string
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid range %q: %s", e.Expr, e.Reason)
}

// Expand resolves a range expression that may carry the shorthand marker.
//
// With the marker present ("~..HEAD"), the nearest semver tag preceding
// title is substituted as the left endpoint, producing "<tag>..HEAD". When
// no tag qualifies, the left endpoint and the separator are dropped
// entirely, yielding a single-ended expression equivalent to "all history
// through the right endpoint".
//
// Without the marker the expression is returned unchanged; it is assumed to
// already be a revision spec the git layer understands.
func Expand(expr, title string, tags []string) (string, error) {
	if !strings.HasPrefix(expr, Marker) {
		return expr, nil
	}

	rest := strings.TrimPrefix(expr, Marker)
	if !strings.HasPrefix(rest, separator) {
		return "", &SyntaxError{Expr: expr, Reason: "expected \"..\" after \"" + Marker + "\""}
	}

	right := strings.TrimPrefix(rest, separator)
	if right == "" {
		return "", &SyntaxError{Expr: expr, Reason: "missing right endpoint"}
	}

	tag, ok := semvertag.ResolveNearest(tags, title)
	if !ok {
		return right, nil
	}
	return tag + separator + right, nil
}
