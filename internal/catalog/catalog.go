// Package catalog is the table of terminal functions: mnemonics, aliases,
// argument schemas and the panel view each one opens. The parser, the help
// panel, the autocomplete popup and the CLI all read this one table.
package catalog

import (
	"slices"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/jaskterm/internal/panel"
)

// ParamKind selects how an argument token is validated.
type ParamKind string

const (
	KindEnum   ParamKind = "enum"
	KindList   ParamKind = "list"
	KindNumber ParamKind = "number"
	KindString ParamKind = "string"
	KindSymbol ParamKind = "symbol"
)

// Param describes one argument of a function.
type Param struct {
	Name     string
	Kind     ParamKind
	Required bool
	Default  string
	Choices  []string // enum
	Noun     string   // list element name used in arity messages
	MinItems int      // list
	MaxItems int      // list, 0 = unbounded
	Min, Max int      // number

	// SubjectSlot marks the parameter that receives an in-line subject when
	// the function is typed subject-first but does not itself need a subject.
	SubjectSlot bool
}

// Accepts reports whether tok is a plausible value for the parameter. It
// does not check list arity; that is reported separately.
func (p Param) Accepts(tok string) bool {
	switch p.Kind {
	case KindEnum:
		return p.Choice(tok) != ""
	case KindList:
		for _, part := range strings.Split(tok, ",") {
			part = strings.TrimSpace(part)
			if part != "" && !ValidSymbol(strings.ToUpper(part)) {
				return false
			}
		}
		return strings.Trim(tok, ", ") != ""
	case KindNumber:
		for _, r := range tok {
			if r < '0' || r > '9' {
				return false
			}
		}
		return tok != ""
	case KindSymbol:
		return ValidSymbol(strings.ToUpper(tok))
	case KindString:
		return tok != ""
	}
	return false
}

// Choice returns the canonical spelling of tok among the enum choices, or "".
func (p Param) Choice(tok string) string {
	for _, c := range p.Choices {
		if strings.EqualFold(c, tok) {
			return c
		}
	}
	return ""
}

// Entry is one terminal function.
type Entry struct {
	Mnemonic        string
	Aliases         []string
	Name            string
	Title           string
	Description     string
	RequiresSubject bool
	Params          []Param
	Panel           panel.Type
	Example         string
}

// Param returns the named parameter.
func (e Entry) Param(name string) (Param, bool) {
	for _, p := range e.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// Usage renders a one-line synopsis such as "<SUBJECT> GP [PERIOD]".
func (e Entry) Usage() string {
	var b strings.Builder
	if e.RequiresSubject {
		b.WriteString("<SUBJECT> ")
	}
	b.WriteString(e.Mnemonic)
	for _, p := range e.Params {
		name := strings.ToUpper(p.Name)
		if p.Kind == KindEnum && len(p.Choices) <= 4 {
			name = strings.Join(p.Choices, "|")
		}
		if p.Required {
			b.WriteString(" <" + name + ">")
		} else {
			b.WriteString(" [" + name + "]")
		}
	}
	return b.String()
}

// Catalog indexes entries by mnemonic and alias.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// New builds a catalog. Later duplicates of a mnemonic or alias are ignored.
func New(entries []Entry) *Catalog {
	c := &Catalog{entries: slices.Clone(entries), index: map[string]int{}}
	for i, e := range c.entries {
		for _, key := range append([]string{e.Mnemonic}, e.Aliases...) {
			k := strings.ToUpper(key)
			if _, dup := c.index[k]; dup {
				continue
			}
			c.index[k] = i
		}
	}
	return c
}

var defaultCatalog = New(defaultEntries())

// Default returns the built-in function table.
func Default() *Catalog {
	return defaultCatalog
}

// Entries returns the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	return slices.Clone(c.entries)
}

// Lookup matches a mnemonic or alias, ignoring case.
func (c *Catalog) Lookup(token string) (Entry, bool) {
	i, ok := c.index[strings.ToUpper(strings.TrimSpace(token))]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// ByName finds the entry for a function name such as "chart".
func (c *Catalog) ByName(name string) (Entry, bool) {
	for _, e := range c.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Suggest returns mnemonics within edit distance 2 of token, closest first.
func (c *Catalog) Suggest(token string) []string {
	tok := strings.ToUpper(strings.TrimSpace(token))
	if tok == "" {
		return nil
	}
	type scored struct {
		key  string
		dist int
	}
	var hits []scored
	for key, i := range c.index {
		d := levenshtein.ComputeDistance(tok, key)
		if d > 2 || d >= len(key) {
			continue
		}
		hits = append(hits, scored{key: c.entries[i].Mnemonic, dist: d})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].dist != hits[j].dist {
			return hits[i].dist < hits[j].dist
		}
		return hits[i].key < hits[j].key
	})
	var out []string
	for _, h := range hits {
		if !slices.Contains(out, h.key) {
			out = append(out, h.key)
		}
	}
	return out
}

// Complete returns entries whose mnemonic or an alias starts with prefix,
// in catalog order.
func (c *Catalog) Complete(prefix string) []Entry {
	p := strings.ToUpper(strings.TrimSpace(prefix))
	if p == "" {
		return nil
	}
	var out []Entry
	for _, e := range c.entries {
		for _, key := range append([]string{e.Mnemonic}, e.Aliases...) {
			if strings.HasPrefix(strings.ToUpper(key), p) {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// ValidSymbol checks the subject grammar: 1-10 letters or digits with at most
// one hyphen between them (BTC-USD). s must already be uppercased.
func ValidSymbol(s string) bool {
	alnum, hyphens := 0, 0
	for i, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			alnum++
		case r == '-':
			hyphens++
			if i == 0 || i == len(s)-1 || hyphens > 1 {
				return false
			}
		default:
			return false
		}
	}
	return alnum >= 1 && alnum <= 10
}
