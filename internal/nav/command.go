package nav

import "github.com/waylonwalker/senzu/internal/resource"

// Command is a navigation command produced by the presentation layer.
// Invalid commands are silently ignored by Dispatch.
type Command interface {
	command()
}

// SelectKind jumps to the root list of a category, resetting drill history.
type SelectKind struct {
	Kind resource.Kind
}

// DrillInto pushes the detail view for ref. The ref must be an item of the
// current list page or a relation of the current detail record.
type DrillInto struct {
	Ref resource.Ref
}

// GoBack pops the current view. At the root it signals termination instead.
type GoBack struct{}

// NextPage advances the current list view by one page, when a next page
// exists.
type NextPage struct{}

// PrevPage moves the current list view back one page.
type PrevPage struct{}

// ToggleHoverPanel flips the hover panel display preference.
type ToggleHoverPanel struct{}

// ToggleWideLayout flips the wide layout display preference.
type ToggleWideLayout struct{}

// SwitchTransformations pushes the transformation list scoped to the
// character currently shown in a detail view. Ref must match that view's
// ref and be of kind Character.
type SwitchTransformations struct {
	Ref resource.Ref
}

func (SelectKind) command()            {}
func (DrillInto) command()             {}
func (GoBack) command()                {}
func (NextPage) command()              {}
func (PrevPage) command()              {}
func (ToggleHoverPanel) command()      {}
func (ToggleWideLayout) command()      {}
func (SwitchTransformations) command() {}
