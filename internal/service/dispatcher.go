package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jask/jaskterm/internal/command"
	"github.com/jask/jaskterm/internal/database/repository"
	"github.com/jask/jaskterm/internal/logging"
	"github.com/jask/jaskterm/internal/panel"
	"github.com/jask/jaskterm/internal/workspace"
)

// Dispatcher turns submitted command lines into workspace and store
// mutations. Parse and Apply touch state and belong on the UI loop;
// Resolve only talks to the resolver and may run anywhere.
type Dispatcher struct {
	Workspace *workspace.Workspace
	Resolver  SubjectResolver
	Watchlist *repository.WatchlistRepo
	Parser    *command.Parser
	Log       *logging.Entry
}

// Plan is a parsed command bound to its target panel. Subjects is filled by
// Resolve; Apply never sees an unresolved plan.
type Plan struct {
	Target   panel.ID
	Raw      string
	Command  command.Command
	Context  panel.Subject
	Subjects map[string]panel.Subject
}

// Result describes what Apply changed.
type Result struct {
	Plan    Plan
	Panel   panel.State
	Message string
}

// Record pushes non-empty input onto the target panel's history, whether or
// not it later parses.
func (d *Dispatcher) Record(target panel.ID, raw string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return d.Workspace.Panels().PushHistory(target, raw)
}

// Parse interprets raw against target's current subject. Parse failures come
// back as *command.ParseError.
func (d *Dispatcher) Parse(target panel.ID, raw string) (Plan, error) {
	st, err := d.Workspace.Panels().State(target)
	if err != nil {
		return Plan{}, err
	}
	var cmd command.Command
	if d.Parser != nil {
		cmd = d.Parser.Parse(raw, st.Ticker)
	} else {
		cmd = command.Parse(raw, st.Ticker)
	}
	if e, ok := cmd.(command.Error); ok {
		d.log().WithFields(logging.Fields{"panel": target.String(), "input": raw}).Debug(e.Err.Message)
		return Plan{}, e.Err
	}
	return Plan{Target: target, Raw: raw, Command: cmd, Context: st.Subject()}, nil
}

// Resolve looks up every symbol the command names. The panel's own subject
// is reused without a lookup.
func (d *Dispatcher) Resolve(ctx context.Context, plan Plan) (Plan, error) {
	start := time.Now()
	defer d.log().Timed("resolve", start)

	plan.Subjects = map[string]panel.Subject{}
	for _, sym := range command.Symbols(plan.Command) {
		if sym == plan.Context.Ticker && !plan.Context.IsZero() {
			plan.Subjects[sym] = plan.Context
			continue
		}
		subj, err := d.Resolver.Resolve(ctx, sym)
		if err != nil {
			d.log().WithError(err).WithFields(logging.Fields{"panel": plan.Target.String(), "symbol": sym}).Warn("resolution failed")
			return Plan{}, err
		}
		plan.Subjects[sym] = subj
	}
	return plan, nil
}

// Prepare parses and resolves without mutating anything.
func (d *Dispatcher) Prepare(ctx context.Context, target panel.ID, raw string) (Plan, error) {
	plan, err := d.Parse(target, raw)
	if err != nil {
		return Plan{}, err
	}
	return d.Resolve(ctx, plan)
}

// Apply performs the mutation a resolved plan describes. Panel changes go
// through Store.Navigate so type, params and subject land together.
func (d *Dispatcher) Apply(ctx context.Context, plan Plan) (Result, error) {
	if plan.Subjects == nil {
		return Result{}, errors.New("apply: plan has not been resolved")
	}
	res := Result{Plan: plan}

	switch c := plan.Command.(type) {
	case command.WatchlistAdd:
		subj := plan.Subjects[c.Ticker]
		if err := d.Watchlist.Add(ctx, subj.InstrumentID); err != nil {
			return Result{}, fmt.Errorf("%s: %w", subj.Ticker, err)
		}
		res.Message = subj.Ticker + " added to watchlist"
	case command.WatchlistRemove:
		subj := plan.Subjects[c.Ticker]
		if err := d.Watchlist.Remove(ctx, subj.InstrumentID); err != nil {
			return Result{}, fmt.Errorf("%s: %w", subj.Ticker, err)
		}
		res.Message = subj.Ticker + " removed from watchlist"
	case command.Launchpad:
		if c.Layout != "" {
			l, err := workspace.ParseLayout(c.Layout)
			if err != nil {
				return Result{}, err
			}
			if err := d.Workspace.SetLayout(l); err != nil {
				return Result{}, err
			}
			res.Message = "layout " + string(l)
			res.Panel, _ = d.Workspace.Panels().State(plan.Target)
			d.logApplied(plan)
			return res, nil
		}
	}

	t, params := view(plan.Command)
	var subj *panel.Subject
	if ticker, ok := command.Subject(plan.Command); ok {
		s := plan.Subjects[ticker]
		subj = &s
	}
	if err := d.Workspace.Panels().Navigate(plan.Target, t, params, subj); err != nil {
		return Result{}, err
	}
	res.Panel, _ = d.Workspace.Panels().State(plan.Target)
	if res.Message == "" {
		res.Message = command.Format(plan.Command)
	}
	d.logApplied(plan)
	return res, nil
}

// Submit records, prepares and applies raw on the focused panel.
func (d *Dispatcher) Submit(ctx context.Context, raw string) (Result, error) {
	target := d.Workspace.Focused()
	if err := d.Record(target, raw); err != nil {
		return Result{}, err
	}
	plan, err := d.Prepare(ctx, target, raw)
	if err != nil {
		return Result{}, err
	}
	return d.Apply(ctx, plan)
}

func (d *Dispatcher) logApplied(plan Plan) {
	d.log().WithFields(logging.Fields{
		"panel":   plan.Target.String(),
		"command": string(plan.Command.Kind()),
		"input":   plan.Raw,
	}).Debug("applied")
}

func (d *Dispatcher) log() *logging.Entry {
	if d.Log == nil {
		d.Log = logging.Discard().WithComponent("dispatch")
	}
	return d.Log
}
