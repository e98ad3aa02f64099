package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jask/jaskterm/internal/database/repository"
	"github.com/jask/jaskterm/internal/panel"
)

var ErrNotFound = errors.New("unknown symbol")

// SubjectResolver maps a typed symbol to a resolved subject.
type SubjectResolver interface {
	Resolve(ctx context.Context, symbol string) (panel.Subject, error)
}

// InstrumentResolver resolves symbols against the local security master.
type InstrumentResolver struct {
	Instruments *repository.InstrumentRepo
}

func (r *InstrumentResolver) Resolve(ctx context.Context, symbol string) (panel.Subject, error) {
	in, err := r.Instruments.BySymbol(ctx, symbol)
	if errors.Is(err, repository.ErrInstrumentNotFound) {
		return panel.Subject{}, fmt.Errorf("%w: %s", ErrNotFound, symbol)
	}
	if err != nil {
		return panel.Subject{}, fmt.Errorf("resolve %s: %w", symbol, err)
	}
	return panel.Subject{Ticker: in.Symbol, InstrumentID: in.ID}, nil
}
