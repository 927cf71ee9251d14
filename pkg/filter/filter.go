// Package filter narrows an entry collection by date range and tags.
package filter

import (
	"errors"
	"time"

	"tableflip.dev/ironlist/pkg/entry"
)

// ErrNoCriteria is returned by Query.Validate when nothing would be filtered.
var ErrNoCriteria = errors.New("query requires at least one of --from, --to, --date or --tag")

// Predicate reports whether an entry should be kept.
type Predicate func(e *entry.Entry) bool

// Apply keeps the entries accepted by every predicate, preserving order.
// With no predicates it returns all entries.
func Apply(entries []*entry.Entry, preds ...Predicate) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if All(preds...)(e) {
			out = append(out, e)
		}
	}
	return out
}

// All combines predicates with logical AND.
func All(preds ...Predicate) Predicate {
	return func(e *entry.Entry) bool {
		for _, p := range preds {
			if p != nil && !p(e) {
				return false
			}
		}
		return true
	}
}

// DateRange keeps entries dated within [from, to]. A nil bound is open.
func DateRange(from, to *time.Time) Predicate {
	return func(e *entry.Entry) bool {
		if from != nil && e.Date.Before(entry.Day(*from)) {
			return false
		}
		if to != nil && e.Date.After(entry.Day(*to)) {
			return false
		}
		return true
	}
}

// Tags matches entries against query tags, ignoring case. When matchAny is
// set an entry needs one of the tags, otherwise it needs all of them. An
// empty query matches everything.
func Tags(query []string, matchAny bool) Predicate {
	return func(e *entry.Entry) bool {
		if len(query) == 0 {
			return true
		}
		for _, q := range query {
			has := e.HasTag(q)
			if matchAny && has {
				return true
			}
			if !matchAny && !has {
				return false
			}
		}
		return !matchAny
	}
}

// Incomplete keeps entries without the complete tag.
func Incomplete(e *entry.Entry) bool {
	return !e.IsComplete()
}

// Query holds the criteria of a query command.
type Query struct {
	From *time.Time
	To   *time.Time
	Tags []string
	Any  bool
}

// Validate rejects a query without any date or tag criteria.
func (q Query) Validate() error {
	if q.From == nil && q.To == nil && len(q.Tags) == 0 {
		return ErrNoCriteria
	}
	return nil
}

// Predicates returns the date filter followed by the tag filter.
func (q Query) Predicates() []Predicate {
	return []Predicate{DateRange(q.From, q.To), Tags(q.Tags, q.Any)}
}

// Run applies the query to entries.
func (q Query) Run(entries []*entry.Entry) []*entry.Entry {
	return Apply(entries, q.Predicates()...)
}
