package catalog

import (
	"strings"
	"testing"

	"github.com/jask/jaskterm/internal/panel"
)

func TestMnemonicsAndAliasesAreUnique(t *testing.T) {
	seen := map[string]string{}
	for _, e := range Default().Entries() {
		for _, key := range append([]string{e.Mnemonic}, e.Aliases...) {
			k := strings.ToUpper(key)
			if owner, dup := seen[k]; dup {
				t.Fatalf("%q claimed by both %s and %s", k, owner, e.Mnemonic)
			}
			seen[k] = e.Mnemonic
		}
	}
}

func TestEntriesAreWellFormed(t *testing.T) {
	names := map[string]bool{}
	for _, e := range Default().Entries() {
		if e.Name == "" || names[e.Name] {
			t.Fatalf("%s: missing or duplicate name %q", e.Mnemonic, e.Name)
		}
		names[e.Name] = true
		if !e.Panel.Valid() || e.Panel == panel.TypeEmpty {
			t.Fatalf("%s: bad panel type %q", e.Mnemonic, e.Panel)
		}
		if e.Example == "" {
			t.Fatalf("%s: missing example", e.Mnemonic)
		}
		for _, p := range e.Params {
			if p.Kind == KindEnum && p.Default != "" && p.Choice(p.Default) == "" {
				t.Fatalf("%s.%s: default %q not among choices", e.Mnemonic, p.Name, p.Default)
			}
		}
	}
}

func TestLookupIgnoresCase(t *testing.T) {
	c := Default()
	for _, tok := range []string{"gp", "GP", "Chart", " g "} {
		e, ok := c.Lookup(tok)
		if !ok || e.Name != NameChart {
			t.Fatalf("Lookup(%q) = %+v, %v", tok, e.Name, ok)
		}
	}
	if _, ok := c.Lookup("AAPL"); ok {
		t.Fatalf("AAPL must not be a mnemonic")
	}
}

func TestSuggest(t *testing.T) {
	got := Default().Suggest("GPP")
	if len(got) == 0 || got[0] != "GP" {
		t.Fatalf("expected GP first, got %v", got)
	}
	if got := Default().Suggest("ZZZZZZZZ"); len(got) != 0 {
		t.Fatalf("expected no suggestions, got %v", got)
	}
}

func TestComplete(t *testing.T) {
	got := Default().Complete("com")
	if len(got) != 1 || got[0].Name != NameCompare {
		t.Fatalf("expected compare only, got %+v", got)
	}
	if got := Default().Complete(""); got != nil {
		t.Fatalf("expected nil for empty prefix")
	}
}

func TestValidSymbol(t *testing.T) {
	good := []string{"A", "AAPL", "BTC-USD", "1234567890", "BRK-B"}
	bad := []string{"", "-AAPL", "AAPL-", "A-B-C", "AAPL!", "ABCDEFGHIJK", "aapl"}
	for _, s := range good {
		if !ValidSymbol(s) {
			t.Fatalf("expected %q valid", s)
		}
	}
	for _, s := range bad {
		if ValidSymbol(s) {
			t.Fatalf("expected %q invalid", s)
		}
	}
}

func TestParamAccepts(t *testing.T) {
	period := periodParam()
	if !period.Accepts("6m") || period.Accepts("7M") {
		t.Fatalf("period enum mismatch")
	}
	list := Param{Kind: KindList}
	if !list.Accepts("aapl,msft") || list.Accepts("AAPL,$$") || list.Accepts(",") {
		t.Fatalf("list acceptance mismatch")
	}
	num := Param{Kind: KindNumber}
	if !num.Accepts("14") || num.Accepts("1.5") {
		t.Fatalf("number acceptance mismatch")
	}
}

func TestUsage(t *testing.T) {
	e, _ := Default().Lookup("GP")
	if got := e.Usage(); got != "<SUBJECT> GP [PERIOD]" {
		t.Fatalf("unexpected usage %q", got)
	}
	e, _ = Default().Lookup("WL")
	if got := e.Usage(); got != "WL [ADD|REMOVE|VIEW] [TICKER]" {
		t.Fatalf("unexpected usage %q", got)
	}
}
