package panel

import "slices"

// DefaultHistorySize is the per-panel history cap when none is configured.
const DefaultHistorySize = 50

// History is a bounded list of raw command strings, oldest first, with a
// browse cursor. Cursor -1 means the user is not browsing.
type History struct {
	Entries []string
	Cursor  int
}

func newHistory() History {
	return History{Cursor: -1}
}

func (h *History) push(raw string, limit int) {
	h.Entries = append(h.Entries, raw)
	if over := len(h.Entries) - limit; over > 0 {
		h.Entries = slices.Delete(h.Entries, 0, over)
	}
	h.Cursor = -1
}

func (h *History) previous() (string, bool) {
	if len(h.Entries) == 0 {
		return "", false
	}
	switch {
	case h.Cursor == -1:
		h.Cursor = len(h.Entries) - 1
	case h.Cursor == 0:
		return "", false
	default:
		h.Cursor--
	}
	return h.Entries[h.Cursor], true
}

func (h *History) next() (string, bool) {
	if h.Cursor == -1 {
		return "", false
	}
	if h.Cursor == len(h.Entries)-1 {
		// back to the live input line
		h.Cursor = -1
		return "", true
	}
	h.Cursor++
	return h.Entries[h.Cursor], true
}

func (h History) clone() History {
	return History{Entries: slices.Clone(h.Entries), Cursor: h.Cursor}
}
