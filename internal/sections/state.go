package sections

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Zachkp/portfolio/internal/sanity"
)

// Phase is where a section's content fetch stands.
type Phase int

const (
	Pending Phase = iota
	Resolved
	Failed
)

func (p Phase) String() string {
	switch p {
	case Resolved:
		return "resolved"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// State is the result of one content fetch. The zero value is Pending; a
// Loader moves it to Resolved or Failed exactly once and it never changes
// afterwards.
type State[T any] struct {
	Phase Phase
	Data  T
	Err   error
}

// Outcome classifies a finished fetch for the diagnostics log.
type Outcome string

const (
	OutcomeOK     Outcome = "ok"
	OutcomeEmpty  Outcome = "empty"
	OutcomeFailed Outcome = "failed"
)

// FetchEvent describes one finished fetch.
type FetchEvent struct {
	Query    string
	Outcome  Outcome
	Duration time.Duration
	Err      error
}

// Observer receives every finished fetch.
type Observer interface {
	RecordFetch(ctx context.Context, ev FetchEvent)
}

type nopObserver struct{}

func (nopObserver) RecordFetch(context.Context, FetchEvent) {}

// Loader runs section fetches. Failures stop here: they are logged and
// reported to the observer, and the caller only sees a Failed state.
type Loader struct {
	fetcher  sanity.Fetcher
	log      *zap.Logger
	observer Observer
}

func NewLoader(f sanity.Fetcher, log *zap.Logger, obs Observer) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	if obs == nil {
		obs = nopObserver{}
	}
	return &Loader{fetcher: f, log: log, observer: obs}
}

func (l *Loader) finish(ctx context.Context, q sanity.Query, start time.Time, empty bool, err error) {
	ev := FetchEvent{Query: q.Name, Duration: time.Since(start), Err: err}
	switch {
	case err != nil:
		ev.Outcome = OutcomeFailed
		l.log.Warn("content fetch failed",
			zap.String("query", q.Name),
			zap.Duration("duration", ev.Duration),
			zap.Error(err))
	case empty:
		ev.Outcome = OutcomeEmpty
		l.log.Debug("content query returned nothing", zap.String("query", q.Name))
	default:
		ev.Outcome = OutcomeOK
	}
	l.observer.RecordFetch(ctx, ev)
}

// LoadOne fetches a singleton document. A missing document resolves with a
// nil Data.
func LoadOne[T any](ctx context.Context, l *Loader, q sanity.Query) State[*T] {
	start := time.Now()
	doc, err := sanity.One[T](ctx, l.fetcher, q)
	l.finish(ctx, q, start, doc == nil, err)
	if err != nil {
		return State[*T]{Phase: Failed, Err: err}
	}
	return State[*T]{Phase: Resolved, Data: doc}
}

// LoadMany fetches a list of documents. An empty result resolves with an
// empty slice.
func LoadMany[T any](ctx context.Context, l *Loader, q sanity.Query) State[[]T] {
	start := time.Now()
	docs, err := sanity.Many[T](ctx, l.fetcher, q)
	l.finish(ctx, q, start, len(docs) == 0, err)
	if err != nil {
		return State[[]T]{Phase: Failed, Err: err}
	}
	return State[[]T]{Phase: Resolved, Data: docs}
}
