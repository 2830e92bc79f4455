// Package translate provides best-effort translation of resource text
// fields. The upstream Dragon Ball dataset carries Spanish descriptions;
// the translator rewrites them into the configured language, caching
// results in sqlite so a description is only ever translated once.
package translate

import (
	"context"
	"strings"

	"github.com/waylonwalker/senzu/internal/resource"
)

// minTranslatableLength skips very short values; they are usually names or
// numbers that translation would mangle.
const minTranslatableLength = 5

// Translator converts text into the target language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Predicate decides whether a record field is eligible for translation.
// Which fields carry source-language text is not documented upstream, so
// the policy stays pluggable.
type Predicate func(label, value string) bool

// DefaultPredicate marks description fields of non-trivial length, matching
// the upstream dataset where only descriptions are Spanish.
func DefaultPredicate(label, value string) bool {
	if len(value) < minTranslatableLength {
		return false
	}
	return strings.Contains(strings.ToLower(label), "description")
}

// ApplyRecord translates every eligible field of rec in place and sets the
// Translated flag when at least one field was rewritten. A backend failure
// leaves the original text untouched and is swallowed; translation is
// best-effort and must never block rendering.
func ApplyRecord(ctx context.Context, tr Translator, eligible Predicate, rec *resource.Record) {
	if tr == nil || rec == nil {
		return
	}
	if eligible == nil {
		eligible = DefaultPredicate
	}

	for i := range rec.Fields {
		f := rec.Fields[i]
		if !eligible(f.Label, f.Value) {
			continue
		}
		translated, err := tr.Translate(ctx, f.Value)
		if err != nil || translated == "" {
			continue
		}
		rec.Fields[i].Value = translated
		rec.Translated = true
	}
}
