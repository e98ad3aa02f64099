package service

import (
	"context"
	"sync/atomic"

	"github.com/jask/jaskterm/internal/catalog"
	"github.com/jask/jaskterm/internal/database/repository"
)

// SearchRequest is one autocomplete lookup. A larger Seq supersedes every
// smaller one.
type SearchRequest struct {
	Seq   uint64
	Query string
}

type SuggestionKind string

const (
	SuggestFunction   SuggestionKind = "function"
	SuggestInstrument SuggestionKind = "instrument"
)

// Suggestion is one autocomplete row. Text is what gets inserted.
type Suggestion struct {
	Kind   SuggestionKind
	Text   string
	Detail string
}

type SearchResult struct {
	Seq         uint64
	Query       string
	Suggestions []Suggestion
	Err         error
}

// Searcher serves the command-line popup. Begin and Accept are called from
// the UI loop, Run from a background command.
type Searcher struct {
	Catalog     *catalog.Catalog
	Instruments *repository.InstrumentRepo
	Limit       int

	seq atomic.Uint64
}

// Begin issues the next sequence number for query.
func (s *Searcher) Begin(query string) SearchRequest {
	return SearchRequest{Seq: s.seq.Add(1), Query: query}
}

// Latest is the sequence number of the newest request.
func (s *Searcher) Latest() uint64 {
	return s.seq.Load()
}

// Cancel supersedes every outstanding request.
func (s *Searcher) Cancel() {
	s.seq.Add(1)
}

// Accept reports whether res answers the newest request.
func (s *Searcher) Accept(res SearchResult) bool {
	return res.Seq == s.seq.Load()
}

// Run returns function completions first, then matching instruments.
func (s *Searcher) Run(ctx context.Context, req SearchRequest) SearchResult {
	res := SearchResult{Seq: req.Seq, Query: req.Query}
	limit := s.Limit
	if limit <= 0 {
		limit = 8
	}
	cat := s.Catalog
	if cat == nil {
		cat = catalog.Default()
	}

	for _, e := range cat.Complete(req.Query) {
		if len(res.Suggestions) == limit {
			return res
		}
		res.Suggestions = append(res.Suggestions, Suggestion{Kind: SuggestFunction, Text: e.Mnemonic, Detail: e.Title})
	}
	if s.Instruments == nil || len(res.Suggestions) == limit {
		return res
	}
	found, err := s.Instruments.Search(ctx, req.Query, limit-len(res.Suggestions))
	if err != nil {
		res.Err = err
		return res
	}
	for _, in := range found {
		res.Suggestions = append(res.Suggestions, Suggestion{Kind: SuggestInstrument, Text: in.Symbol, Detail: in.Name})
	}
	return res
}
