package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

const (
	actionQuit           Action = "quit"
	actionFocus1         Action = "focus_1"
	actionFocus2         Action = "focus_2"
	actionFocus3         Action = "focus_3"
	actionFocus4         Action = "focus_4"
	actionLayoutSingle   Action = "layout_1x1"
	actionLayoutColumns  Action = "layout_2x1"
	actionLayoutRows     Action = "layout_1x2"
	actionLayoutGrid     Action = "layout_2x2"
	actionToggleMaximize Action = "toggle_maximize"
	actionSubmit         Action = "submit"
	actionHistoryPrev    Action = "history_prev"
	actionHistoryNext    Action = "history_next"
	actionAccept         Action = "accept"
	actionCancel         Action = "cancel"
	actionNavigate       Action = "navigate"
)

const (
	scopeWorkspace  = "workspace"
	scopeCompletion = "completion"
)

type Binding struct {
	Action Action
	Keys   []string
	Help   string
	Scope  string
}

// KeyRegistry maps key names to actions per scope. Lookups fall back to the
// workspace scope.
type KeyRegistry struct {
	bindingsByScope map[string][]*Binding
	indexByScope    map[string]map[string]*Binding
}

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindingsByScope: make(map[string][]*Binding),
		indexByScope:    make(map[string]map[string]*Binding),
	}
	reg := func(scope string, action Action, keys []string, help string) {
		r.Register(Binding{Action: action, Keys: keys, Help: help, Scope: scope})
	}

	reg(scopeWorkspace, actionSubmit, []string{"enter"}, "run")
	reg(scopeWorkspace, actionHistoryPrev, []string{"up"}, "history")
	reg(scopeWorkspace, actionHistoryNext, []string{"down"}, "")
	reg(scopeWorkspace, actionFocus1, []string{"alt+1"}, "panel 1-4")
	reg(scopeWorkspace, actionFocus2, []string{"alt+2"}, "")
	reg(scopeWorkspace, actionFocus3, []string{"alt+3"}, "")
	reg(scopeWorkspace, actionFocus4, []string{"alt+4"}, "")
	reg(scopeWorkspace, actionLayoutSingle, []string{"f5"}, "1x1")
	reg(scopeWorkspace, actionLayoutColumns, []string{"f6"}, "2x1")
	reg(scopeWorkspace, actionLayoutRows, []string{"f7"}, "1x2")
	reg(scopeWorkspace, actionLayoutGrid, []string{"f8"}, "2x2")
	reg(scopeWorkspace, actionToggleMaximize, []string{"ctrl+x"}, "maximize")
	reg(scopeWorkspace, actionQuit, []string{"ctrl+c"}, "quit")

	reg(scopeCompletion, actionAccept, []string{"tab"}, "complete")
	reg(scopeCompletion, actionCancel, []string{"esc"}, "dismiss")
	reg(scopeCompletion, actionNavigate, []string{"up", "down"}, "choose")
	return r
}

// Register adds b unless one of its keys is already taken in the scope.
func (r *KeyRegistry) Register(b Binding) {
	scope := strings.TrimSpace(b.Scope)
	if scope == "" || len(b.Keys) == 0 {
		return
	}
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		if n := normalizeKeyName(k); n != "" {
			keys = append(keys, n)
		}
	}
	if len(keys) == 0 {
		return
	}
	if _, ok := r.indexByScope[scope]; !ok {
		r.indexByScope[scope] = make(map[string]*Binding)
	}
	for _, k := range keys {
		if _, taken := r.indexByScope[scope][k]; taken {
			return
		}
	}
	copyBinding := b
	copyBinding.Keys = keys
	copyBinding.Scope = scope
	r.bindingsByScope[scope] = append(r.bindingsByScope[scope], &copyBinding)
	for _, k := range keys {
		r.indexByScope[scope][k] = &copyBinding
	}
}

func (r *KeyRegistry) Lookup(keyName, scope string) *Binding {
	keyName = normalizeKeyName(keyName)
	if keyName == "" {
		return nil
	}
	if b := r.indexByScope[scope][keyName]; b != nil {
		return b
	}
	if scope != scopeWorkspace {
		return r.indexByScope[scopeWorkspace][keyName]
	}
	return nil
}

// HelpBindings returns footer entries for scope, skipping silent bindings.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	items := r.bindingsByScope[scope]
	out := make([]key.Binding, 0, len(items))
	for _, b := range items {
		if b.Help == "" {
			continue
		}
		out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Help)))
	}
	return out
}

func normalizeKeyName(k string) string {
	s := strings.ToLower(strings.TrimSpace(k))
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "control+", "ctrl+")
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
