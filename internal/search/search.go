// Package search compiles a free-text catalog query into a predicate.
//
// The query text is used as an uncompiled, case-insensitive pattern and
// matched unanchored against the lesson's text fields and the decimal
// rendering of its numeric fields. Metacharacters in the query keep
// their syntactic meaning on purpose; this mirrors how the search has
// always behaved and callers rely on it.
package search

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/APJB7/Fullstack-Backend/internal/domain"
)

type Predicate struct {
	matchAll bool
	re       *regexp.Regexp
}

// Compile builds a predicate from q. An empty or whitespace-only query
// yields a match-everything predicate. A query that is not a valid
// pattern is a caller error.
func Compile(q string) (Predicate, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return Predicate{matchAll: true}, nil
	}

	re, err := regexp.Compile("(?i)" + q)
	if err != nil {
		return Predicate{}, fmt.Errorf("%w: %q", domain.ErrBadPattern, q)
	}

	return Predicate{re: re}, nil
}

// MatchAll reports whether the predicate accepts every lesson without
// inspecting it.
func (p Predicate) MatchAll() bool {
	return p.matchAll
}

// Matches probes subject, topic, location, and the decimal string forms
// of price and space; any hit accepts the lesson.
func (p Predicate) Matches(l domain.Lesson) bool {
	if p.matchAll {
		return true
	}

	return p.re.MatchString(l.Subject) ||
		p.re.MatchString(l.Topic) ||
		p.re.MatchString(l.Location) ||
		p.re.MatchString(formatPrice(l.Price)) ||
		p.re.MatchString(strconv.Itoa(l.Space))
}

// formatPrice renders the shortest exact decimal form: 2500 -> "2500",
// 19.5 -> "19.5". No locale separators.
func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
