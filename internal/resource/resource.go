// Package resource defines the domain model for the Dragon Ball API browser:
// resource kinds, item references, list pages, and detail records.
package resource

import (
	"fmt"
	"strings"
)

// Kind identifies one of the five top-level resource categories.
type Kind uint8

const (
	Character Kind = iota
	Transformation
	Planet
	Saga
	Episode
)

// kindNames maps each kind to its canonical lowercase name.
var kindNames = map[Kind]string{
	Character:      "character",
	Transformation: "transformation",
	Planet:         "planet",
	Saga:           "saga",
	Episode:        "episode",
}

// kindAliases maps command aliases (":character", ":c", ...) to kinds.
// Static lookup table, one entry per documented alias.
var kindAliases = map[string]Kind{
	"character":      Character,
	"c":              Character,
	"transformation": Transformation,
	"t":              Transformation,
	"planet":         Planet,
	"p":              Planet,
	"saga":           Saga,
	"s":              Saga,
	"episode":        Episode,
	"e":              Episode,
}

// String returns the canonical lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Endpoint returns the upstream API path segment for the kind.
func (k Kind) Endpoint() string {
	return k.String() + "s"
}

// Valid reports whether k is one of the five defined kinds.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// Kinds returns all kinds in display order.
func Kinds() []Kind {
	return []Kind{Character, Transformation, Planet, Saga, Episode}
}

// ParseKind resolves a command alias to a kind. A leading ":" is accepted so
// callers can pass the raw command-bar input.
func ParseKind(alias string) (Kind, bool) {
	alias = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(alias)), ":")
	k, ok := kindAliases[alias]
	return k, ok
}

// Ref identifies a single item of a kind. Immutable once created; comparable,
// so it serves directly as a map key.
type Ref struct {
	Kind Kind
	ID   int
}

// String returns "kind/id", the form used in error details and view keys.
func (r Ref) String() string {
	return fmt.Sprintf("%s/%d", r.Kind, r.ID)
}

// Summary is one row of a list page: the ref plus the display fields the
// list view renders without fetching the full record.
type Summary struct {
	Ref    Ref
	Name   string
	Detail string
}

// Field is a single labeled value of a detail record. Records keep fields as
// an ordered slice so the detail view renders them in a stable order.
type Field struct {
	Label string
	Value string
}

// Record is the fetched detail payload for a Ref.
type Record struct {
	Ref    Ref
	Name   string
	Fields []Field

	// Relations lists refs reachable from this record, e.g. a character's
	// transformations. Drill commands are validated against this set.
	Relations []Ref

	// Translated is set when translatable fields were replaced with
	// translated text.
	Translated bool
}

// Field returns the value for the given label, or "" if absent.
func (r *Record) Field(label string) string {
	for _, f := range r.Fields {
		if f.Label == label {
			return f.Value
		}
	}
	return ""
}

// SetField replaces the value for the given label in place. No-op if the
// label is absent.
func (r *Record) SetField(label, value string) {
	for i := range r.Fields {
		if r.Fields[i].Label == label {
			r.Fields[i].Value = value
			return
		}
	}
}

// HasRelation reports whether ref is listed in the record's relations.
func (r *Record) HasRelation(ref Ref) bool {
	for _, rel := range r.Relations {
		if rel == ref {
			return true
		}
	}
	return false
}

// ListPage is one page of summaries for a kind, with pagination metadata.
type ListPage struct {
	Kind       Kind
	Page       int
	Items      []Summary
	TotalItems int
	TotalPages int
}

// HasNext reports whether a later page exists.
func (p *ListPage) HasNext() bool {
	return p.Page+1 < p.TotalPages
}

// Contains reports whether ref is one of the page's items.
func (p *ListPage) Contains(ref Ref) bool {
	for _, item := range p.Items {
		if item.Ref == ref {
			return true
		}
	}
	return false
}
