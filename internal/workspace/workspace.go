// Package workspace owns the four-panel grid: which layout is showing,
// which panel has focus and whether one panel is maximized. Presentation
// layers subscribe to transitions instead of polling.
package workspace

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jask/jaskterm/internal/panel"
)

var (
	ErrMaximized    = errors.New("workspace is maximized")
	ErrNotMaximized = errors.New("workspace is not maximized")
	ErrPanelHidden  = errors.New("panel is not visible in the current layout")
	ErrFocusLocked  = errors.New("focus is locked to the maximized panel")
)

type EventKind string

const (
	EventLayout   EventKind = "layout"
	EventFocus    EventKind = "focus"
	EventMaximize EventKind = "maximize"
	EventRestore  EventKind = "restore"
	EventPanel    EventKind = "panel"
)

// Event describes a completed transition. Panel is set for focus, maximize,
// restore and panel events; Layout for layout and restore events.
type Event struct {
	Kind   EventKind
	Panel  panel.ID
	Layout Layout
}

type subscriber struct {
	id int
	fn func(Event)
}

// Workspace is the Normal/Maximized state machine. Like the panel store it
// is driven from a single event loop and does no locking.
type Workspace struct {
	layout    Layout
	saved     Layout
	focused   panel.ID
	maximized panel.ID // 0 in Normal

	panels *panel.Store

	subs   []subscriber
	nextID int
}

// New starts in Normal with the given layout and panel-1 focused. It takes
// ownership of the store's OnChange hook; a nil store gets a fresh one.
func New(store *panel.Store, layout Layout) (*Workspace, error) {
	if !layout.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLayout, layout)
	}
	if store == nil {
		store = panel.NewStore(0)
	}
	w := &Workspace{layout: layout, focused: panel.Panel1, panels: store}
	store.OnChange = func(id panel.ID) {
		w.emit(Event{Kind: EventPanel, Panel: id})
	}
	return w, nil
}

func (w *Workspace) Panels() *panel.Store { return w.panels }
func (w *Workspace) Layout() Layout       { return w.layout }
func (w *Workspace) Focused() panel.ID    { return w.focused }

// Maximized returns the maximized panel, if any.
func (w *Workspace) Maximized() (panel.ID, bool) {
	return w.maximized, w.maximized != 0
}

// Visible returns the panels on screen in position order.
func (w *Workspace) Visible() []panel.ID {
	if w.maximized != 0 {
		return []panel.ID{w.maximized}
	}
	return w.layout.Panels()
}

// Maximize fills the screen with id. Only a visible panel can be maximized,
// so restoring always lands focus on a visible panel.
func (w *Workspace) Maximize(id panel.ID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", panel.ErrUnknownPanel, int(id))
	}
	if w.maximized != 0 {
		return ErrMaximized
	}
	if !w.layout.Shows(id) {
		return fmt.Errorf("%w: %s", ErrPanelHidden, id)
	}
	w.saved = w.layout
	w.maximized = id
	w.focused = id
	_ = w.panels.SetMaximized(id, true)
	w.emit(Event{Kind: EventMaximize, Panel: id})
	return nil
}

// Restore returns to the layout saved by Maximize. Focus stays on the
// panel that was maximized.
func (w *Workspace) Restore() error {
	if w.maximized == 0 {
		return ErrNotMaximized
	}
	id := w.maximized
	w.layout = w.saved
	w.saved = ""
	w.maximized = 0
	_ = w.panels.SetMaximized(id, false)
	w.emit(Event{Kind: EventRestore, Panel: id, Layout: w.layout})
	return nil
}

// ToggleMaximize maximizes the focused panel or restores.
func (w *Workspace) ToggleMaximize() error {
	if w.maximized != 0 {
		return w.Restore()
	}
	return w.Maximize(w.focused)
}

// SetLayout switches the visible arrangement. A focused panel that goes out
// of view hands focus to the lowest-numbered visible panel.
func (w *Workspace) SetLayout(l Layout) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownLayout, l)
	}
	if w.maximized != 0 {
		return ErrMaximized
	}
	if l == w.layout {
		return nil
	}
	w.layout = l
	moved := !l.Shows(w.focused)
	if moved {
		w.focused = slices.Min(l.Panels())
	}
	w.emit(Event{Kind: EventLayout, Layout: l})
	if moved {
		w.emit(Event{Kind: EventFocus, Panel: w.focused})
	}
	return nil
}

// FocusPanel moves focus to id. While maximized, only the maximized panel
// may hold focus.
func (w *Workspace) FocusPanel(id panel.ID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", panel.ErrUnknownPanel, int(id))
	}
	if id == w.focused {
		return nil
	}
	if w.maximized != 0 {
		return fmt.Errorf("%w: %s", ErrFocusLocked, w.maximized)
	}
	if !w.layout.Shows(id) {
		return fmt.Errorf("%w: %s", ErrPanelHidden, id)
	}
	w.focused = id
	w.emit(Event{Kind: EventFocus, Panel: id})
	return nil
}

// Subscribe registers fn for every subsequent event. Subscribers run in
// registration order. The returned func unregisters fn.
func (w *Workspace) Subscribe(fn func(Event)) (cancel func()) {
	w.nextID++
	id := w.nextID
	w.subs = append(w.subs, subscriber{id: id, fn: fn})
	return func() {
		w.subs = slices.DeleteFunc(w.subs, func(s subscriber) bool { return s.id == id })
	}
}

func (w *Workspace) emit(ev Event) {
	for _, s := range slices.Clone(w.subs) {
		s.fn(ev)
	}
}

// Snapshot is a detached copy of the whole workspace.
type Snapshot struct {
	Layout      Layout
	SavedLayout Layout
	Focused     panel.ID
	Maximized   panel.ID
	Visible     []panel.ID
	Panels      []panel.State
}

func (s Snapshot) IsMaximized() bool { return s.Maximized != 0 }

// Focus returns the state of the focused panel.
func (s Snapshot) Focus() panel.State {
	return s.Panels[Position(s.Focused)]
}

func (w *Workspace) Snapshot() Snapshot {
	return Snapshot{
		Layout:      w.layout,
		SavedLayout: w.saved,
		Focused:     w.focused,
		Maximized:   w.maximized,
		Visible:     w.Visible(),
		Panels:      w.panels.States(),
	}
}
