package nav

import (
	"fmt"

	"github.com/waylonwalker/senzu/internal/resource"
)

// View is one screen: either a list page or a detail record.
type View interface {
	// Key identifies the view's fetchable data. Views with equal keys share
	// one cache entry and one in-flight fetch.
	Key() string
	view()
}

// ListView shows one page of a kind. A non-nil Owner scopes the list to
// that character's transformations instead of the top-level endpoint.
type ListView struct {
	Kind  resource.Kind
	Page  int
	Owner *resource.Ref
}

func (v ListView) Key() string {
	if v.Owner != nil {
		return fmt.Sprintf("list/%s/of/%s/%d", v.Kind, v.Owner, v.Page)
	}
	return fmt.Sprintf("list/%s/%d", v.Kind, v.Page)
}

func (v ListView) view() {}

// DetailView shows the full record for one ref.
type DetailView struct {
	Ref resource.Ref
}

func (v DetailView) Key() string {
	return "detail/" + v.Ref.String()
}

func (v DetailView) view() {}

// FetchState is the lifecycle of one view key's data.
type FetchState int

const (
	StateIdle FetchState = iota
	StateFetching
	StateReady
	StateError
)

// String returns the lowercase state name.
func (s FetchState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// ViewState is a view plus its resolved data, the only read surface the
// presentation layer uses.
type ViewState struct {
	View  View
	State FetchState

	// Page is set for a Ready ListView, Record for a Ready DetailView.
	Page   *resource.ListPage
	Record *resource.Record

	// Err is set when State is StateError.
	Err error
}
