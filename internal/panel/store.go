package panel

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownPanel   = errors.New("unknown panel")
	ErrUnknownType    = errors.New("unknown panel type")
	ErrPartialSubject = errors.New("ticker and instrument id must be set together")
)

// Store owns the four panel records. It is not safe for concurrent use: all
// mutation happens on the UI event loop.
type Store struct {
	panels      [Count]State
	historySize int

	// OnChange, when set, runs after every successful mutation.
	OnChange func(ID)
}

// NewStore returns a store with every panel empty. historySize <= 0 selects
// DefaultHistorySize.
func NewStore(historySize int) *Store {
	if historySize <= 0 {
		historySize = DefaultHistorySize
	}
	s := &Store{historySize: historySize}
	for _, id := range IDs() {
		s.panels[id.index()] = State{ID: id, Type: TypeEmpty, History: newHistory()}
	}
	return s
}

// State returns a copy of the panel's state.
func (s *Store) State(id ID) (State, error) {
	p, err := s.panel(id)
	if err != nil {
		return State{}, err
	}
	return p.clone(), nil
}

// States returns copies of all panels in id order.
func (s *Store) States() []State {
	out := make([]State, 0, Count)
	for i := range s.panels {
		out = append(out, s.panels[i].clone())
	}
	return out
}

// SetType switches the view and replaces params wholesale. Fields that do
// not belong to t are dropped.
func (s *Store) SetType(id ID, t Type, params Params) error {
	p, err := s.panel(id)
	if err != nil {
		return err
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	p.Type = t
	p.Params = params.Restrict(t)
	s.changed(id)
	return nil
}

// SetSubject points the panel at a resolved subject. Type and params are
// left alone.
func (s *Store) SetSubject(id ID, subj Subject) error {
	p, err := s.panel(id)
	if err != nil {
		return err
	}
	if !subj.complete() {
		return ErrPartialSubject
	}
	p.Ticker = subj.Ticker
	p.InstrumentID = subj.InstrumentID
	s.changed(id)
	return nil
}

// ClearSubject removes ticker and instrument id together.
func (s *Store) ClearSubject(id ID) error {
	p, err := s.panel(id)
	if err != nil {
		return err
	}
	p.Ticker, p.InstrumentID = "", ""
	s.changed(id)
	return nil
}

// SetParams shallow-merges partial into the params of the current type.
func (s *Store) SetParams(id ID, partial Params) error {
	p, err := s.panel(id)
	if err != nil {
		return err
	}
	p.Params = p.Params.Merge(partial.Restrict(p.Type))
	s.changed(id)
	return nil
}

// Navigate applies a type switch and, when subj is non-nil, a subject change
// as one step. Validation happens before anything is written.
func (s *Store) Navigate(id ID, t Type, params Params, subj *Subject) error {
	p, err := s.panel(id)
	if err != nil {
		return err
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	if subj != nil && !subj.complete() {
		return ErrPartialSubject
	}
	p.Type = t
	p.Params = params.Restrict(t)
	if subj != nil {
		p.Ticker = subj.Ticker
		p.InstrumentID = subj.InstrumentID
	}
	s.changed(id)
	return nil
}

// SetMaximized is owned by the workspace orchestrator.
func (s *Store) SetMaximized(id ID, on bool) error {
	p, err := s.panel(id)
	if err != nil {
		return err
	}
	if p.Maximized == on {
		return nil
	}
	p.Maximized = on
	s.changed(id)
	return nil
}

// PushHistory appends raw to the panel history and stops browsing.
func (s *Store) PushHistory(id ID, raw string) error {
	p, err := s.panel(id)
	if err != nil {
		return err
	}
	p.History.push(raw, s.historySize)
	s.changed(id)
	return nil
}

// HistoryPrevious steps toward older entries. It returns false, without
// moving, when there is nothing older.
func (s *Store) HistoryPrevious(id ID) (string, bool, error) {
	p, err := s.panel(id)
	if err != nil {
		return "", false, err
	}
	entry, ok := p.History.previous()
	return entry, ok, nil
}

// HistoryNext steps toward newer entries. Stepping past the newest entry
// returns to the live line ("" and true); at the live line it returns false.
func (s *Store) HistoryNext(id ID) (string, bool, error) {
	p, err := s.panel(id)
	if err != nil {
		return "", false, err
	}
	entry, ok := p.History.next()
	return entry, ok, nil
}

// ResetHistoryCursor ends browsing so the next HistoryPrevious starts from
// the newest entry again.
func (s *Store) ResetHistoryCursor(id ID) error {
	p, err := s.panel(id)
	if err != nil {
		return err
	}
	p.History.Cursor = -1
	return nil
}

func (s *Store) panel(id ID) (*State, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPanel, int(id))
	}
	return &s.panels[id.index()], nil
}

func (s *Store) changed(id ID) {
	if s.OnChange != nil {
		s.OnChange(id)
	}
}
