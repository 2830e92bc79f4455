// Package nav implements the navigation core: a stack of views driven by
// commands, backed by a fetch-once resource cache. Commands mutate only the
// stack and preference flags; all network access happens on the resolve
// path, keyed by view, with at most one fetch in flight per key.
package nav

import (
	"context"
	"sync"

	"github.com/waylonwalker/senzu/internal/resource"
	"github.com/waylonwalker/senzu/internal/translate"
)

// Client is the resource fetch contract the core consumes.
type Client interface {
	FetchList(ctx context.Context, kind resource.Kind, page int) (*resource.ListPage, error)
	FetchDetail(ctx context.Context, ref resource.Ref) (*resource.Record, error)
	FetchTransformations(ctx context.Context, characterID int) (*resource.ListPage, error)
}

// Prefs are session-wide display preferences, orthogonal to navigation
// history.
type Prefs struct {
	HoverPanel bool
	WideLayout bool
}

// Options configures a Core.
type Options struct {
	// RootKind is the category of the initial list view. Defaults to
	// Character, the upstream default command.
	RootKind resource.Kind

	// Translator, when set, rewrites eligible detail fields before records
	// enter the cache. Eligible defaults to translate.DefaultPredicate.
	Translator translate.Translator
	Eligible   translate.Predicate

	Prefs Prefs
}

// entry is the cache slot for one view key. done is closed when the fetch
// that owns the slot completes, letting concurrent resolvers of the same
// key wait instead of issuing a duplicate request.
type entry struct {
	state FetchState
	page  *resource.ListPage
	rec   *resource.Record
	err   error
	done  chan struct{}
}

// Core owns the navigation stack, the resource cache, and the display
// preferences. All methods are safe for concurrent use; commands are
// processed one at a time under the core's lock.
type Core struct {
	mu    sync.Mutex
	stack []View
	prefs Prefs
	cache map[string]*entry

	client     Client
	translator translate.Translator
	eligible   translate.Predicate
}

// New creates a core with a root list view on the stack. The stack is never
// empty after this point.
func New(client Client, opts Options) *Core {
	root := opts.RootKind
	if !root.Valid() {
		root = resource.Character
	}
	eligible := opts.Eligible
	if eligible == nil {
		eligible = translate.DefaultPredicate
	}
	return &Core{
		stack:      []View{ListView{Kind: root, Page: 0}},
		prefs:      opts.Prefs,
		cache:      make(map[string]*entry),
		client:     client,
		translator: opts.Translator,
		eligible:   eligible,
	}
}

// Dispatch applies one command. It returns true when the command signals
// application termination (GoBack at the root). Commands that are invalid
// for the current view are no-ops.
func (c *Core) Dispatch(cmd Command) (quit bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch cmd := cmd.(type) {
	case SelectKind:
		if !cmd.Kind.Valid() {
			return false
		}
		// Jumping to a category resets drill history
		c.stack = []View{ListView{Kind: cmd.Kind, Page: 0}}

	case DrillInto:
		if !c.drillTargetValid(cmd.Ref) {
			return false
		}
		c.stack = append(c.stack, DetailView{Ref: cmd.Ref})

	case GoBack:
		if len(c.stack) == 1 {
			return true
		}
		c.stack = c.stack[:len(c.stack)-1]

	case NextPage:
		top, ok := c.top().(ListView)
		if !ok {
			return false
		}
		page := c.readyPage(top)
		if page == nil || !page.HasNext() {
			return false
		}
		c.stack[len(c.stack)-1] = ListView{Kind: top.Kind, Page: top.Page + 1, Owner: top.Owner}

	case PrevPage:
		top, ok := c.top().(ListView)
		if !ok || top.Page == 0 {
			return false
		}
		c.stack[len(c.stack)-1] = ListView{Kind: top.Kind, Page: top.Page - 1, Owner: top.Owner}

	case ToggleHoverPanel:
		c.prefs.HoverPanel = !c.prefs.HoverPanel

	case ToggleWideLayout:
		c.prefs.WideLayout = !c.prefs.WideLayout

	case SwitchTransformations:
		top, ok := c.top().(DetailView)
		if !ok || top.Ref != cmd.Ref || cmd.Ref.Kind != resource.Character {
			return false
		}
		owner := cmd.Ref
		c.stack = append(c.stack, ListView{Kind: resource.Transformation, Page: 0, Owner: &owner})
	}

	return false
}

// drillTargetValid reports whether ref is reachable from the current view:
// an item of a ready list page, or a relation of a ready detail record.
// Views still fetching have no selectable items, so drills are rejected.
func (c *Core) drillTargetValid(ref resource.Ref) bool {
	switch top := c.top().(type) {
	case ListView:
		page := c.readyPage(top)
		return page != nil && page.Contains(ref)
	case DetailView:
		e, ok := c.cache[top.Key()]
		if !ok || e.state != StateReady || e.rec == nil {
			return false
		}
		return e.rec.HasRelation(ref)
	}
	return false
}

// readyPage returns the cached page for a list view, or nil when absent or
// not yet Ready. Caller holds c.mu.
func (c *Core) readyPage(v ListView) *resource.ListPage {
	e, ok := c.cache[v.Key()]
	if !ok || e.state != StateReady {
		return nil
	}
	return e.page
}

// top returns the current view. Caller holds c.mu.
func (c *Core) top() View {
	return c.stack[len(c.stack)-1]
}

// Top returns the current view without resolving its data.
func (c *Core) Top() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.top()
}

// CanGoBack reports whether GoBack would pop rather than signal termination.
func (c *Core) CanGoBack() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.stack) > 1
}

// Depth returns the navigation stack depth.
func (c *Core) Depth() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.stack)
}

// Prefs returns the current display preferences.
func (c *Core) Prefs() Prefs {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prefs
}

// CurrentView resolves the top of the stack: cached data is returned
// immediately, otherwise the fetch runs in the calling goroutine. A fetch
// failure yields a StateError view state; re-calling retries it.
func (c *Core) CurrentView(ctx context.Context) ViewState {
	return c.Resolve(ctx, c.Top())
}

// Snapshot returns the top view with whatever state the cache holds, never
// fetching. Render loops use it to draw fetching and error placeholders.
func (c *Core) Snapshot() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()

	top := c.top()
	e, ok := c.cache[top.Key()]
	if !ok {
		return ViewState{View: top, State: StateIdle}
	}
	return ViewState{View: top, State: e.state, Page: e.page, Record: e.rec, Err: e.err}
}

// Resolve fetches-or-returns the data for an arbitrary view. Concurrent
// resolves of the same key serialize on a single underlying fetch. A resolve
// for an abandoned view still populates the cache for later re-entry; it is
// the caller's job to discard results whose view is no longer current.
func (c *Core) Resolve(ctx context.Context, v View) ViewState {
	key := v.Key()

	for {
		c.mu.Lock()
		e, ok := c.cache[key]

		if ok && e.state == StateReady {
			state := ViewState{View: v, State: StateReady, Page: e.page, Record: e.rec}
			c.mu.Unlock()
			return state
		}

		if ok && e.state == StateFetching {
			done := e.done
			c.mu.Unlock()
			select {
			case <-done:
				continue
			case <-ctx.Done():
				return ViewState{View: v, State: StateFetching}
			}
		}

		// Idle, errored, or absent: this goroutine owns the fetch.
		// Errored entries retry on access.
		e = &entry{state: StateFetching, done: make(chan struct{})}
		c.cache[key] = e
		c.mu.Unlock()

		page, rec, err := c.fetch(ctx, v)

		c.mu.Lock()
		if err != nil {
			e.state = StateError
			e.err = err
		} else {
			e.state = StateReady
			e.page = page
			e.rec = rec
		}
		close(e.done)
		state := ViewState{View: v, State: e.state, Page: e.page, Record: e.rec, Err: e.err}
		c.mu.Unlock()
		return state
	}
}

// fetch performs the network call for a view and, for detail records,
// applies translation before the result is published.
func (c *Core) fetch(ctx context.Context, v View) (*resource.ListPage, *resource.Record, error) {
	switch v := v.(type) {
	case ListView:
		var page *resource.ListPage
		var err error
		if v.Owner != nil {
			page, err = c.client.FetchTransformations(ctx, v.Owner.ID)
		} else {
			page, err = c.client.FetchList(ctx, v.Kind, v.Page)
		}
		if err != nil {
			return nil, nil, err
		}
		return page, nil, nil

	case DetailView:
		rec, err := c.client.FetchDetail(ctx, v.Ref)
		if err != nil {
			return nil, nil, err
		}
		translate.ApplyRecord(ctx, c.translator, c.eligible, rec)
		return nil, rec, nil
	}
	return nil, nil, nil
}
