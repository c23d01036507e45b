package service

import (
	"context"
	"fmt"

	"movie-dialogue-api/backend/internal/repository"
	"movie-dialogue-api/backend/pkg/cache"
	"movie-dialogue-api/backend/pkg/logger"
	"movie-dialogue-api/backend/pkg/observability"
	"movie-dialogue-api/backend/pkg/resilience"
)

// Options carries the shared collaborators of every service. A nil Cache disables
// response caching; a nil Breaker gets a default one.
type Options struct {
	Cache   cache.Store
	Breaker *resilience.CircuitBreaker
	Metrics *observability.Metrics
	Logger  *logger.Logger
}

// Services groups the API's services
type Services struct {
	Characters    *CharacterService
	Movies        *MovieService
	Lines         *LineService
	Conversations *ConversationService
}

// New creates all services over repos
func New(repos *repository.Repositories, opts Options) *Services {
	b := newBase(opts)
	return &Services{
		Characters:    newCharacterService(repos.Character, b),
		Movies:        newMovieService(repos.Movie, b),
		Lines:         newLineService(repos.Line, b),
		Conversations: newConversationService(repos.Conversation, b),
	}
}

// NewBreaker returns the store circuit breaker, ignoring outcome errors
func NewBreaker(log *logger.Logger) *resilience.CircuitBreaker {
	cfg := resilience.DefaultCircuitBreakerConfig("store")
	cfg.Ignore = IsOutcome
	return resilience.NewCircuitBreaker(cfg, log)
}

type base struct {
	cache   cache.Store
	breaker *resilience.CircuitBreaker
	metrics *observability.Metrics
	log     *logger.Logger
}

func newBase(opts Options) *base {
	log := opts.Logger
	if log == nil {
		log = logger.GetGlobal()
	}
	breaker := opts.Breaker
	if breaker == nil {
		breaker = NewBreaker(log)
	}
	return &base{cache: opts.Cache, breaker: breaker, metrics: opts.Metrics, log: log}
}

// read serves key from the cache, or loads it from the store through the breaker
func read[T any](ctx context.Context, b *base, key string, load func(ctx context.Context) (T, error)) (T, error) {
	return cache.Fetch(ctx, b.cache, key, func(ctx context.Context) (T, error) {
		return resilience.Call(b.breaker, func() (T, error) {
			return load(ctx)
		})
	})
}

// invalidate drops every cached response after a write
func (b *base) invalidate(ctx context.Context) {
	if b.cache == nil {
		return
	}
	if err := b.cache.Purge(context.WithoutCancel(ctx)); err != nil {
		b.log.LogError(err, "failed to purge response cache")
	}
}

// ListQuery is the filter, sort and page requested for a listing
type ListQuery struct {
	Filter string
	Sort   string
	Limit  int
	Offset int
}

// DefaultListQuery returns the first page with the default size and sort
func DefaultListQuery() ListQuery {
	return ListQuery{Limit: repository.DefaultLimit}
}

func (q ListQuery) options() (repository.ListOptions, error) {
	if q.Limit < 1 || q.Limit > repository.MaxLimit {
		return repository.ListOptions{}, newError(ErrInvalidLimit,
			map[string]any{"limit": q.Limit, "min": 1, "max": repository.MaxLimit},
			"limit must be between 1 and %d", repository.MaxLimit)
	}
	if q.Offset < 0 {
		return repository.ListOptions{}, newError(ErrInvalidOffset,
			map[string]any{"offset": q.Offset},
			"offset must not be negative")
	}
	return repository.ListOptions{Filter: q.Filter, Limit: q.Limit, Offset: q.Offset}, nil
}

// cacheKey keys a listing on its parsed sort, so an empty sort shares the default's entry
func (q ListQuery) cacheKey(entity, sort string) string {
	return cache.Key(entity, "list", sort, q.Limit, q.Offset, q.Filter)
}

func invalidSort(sort string, allowed ...string) error {
	return newError(ErrInvalidSort,
		map[string]any{"sort": sort, "allowed": allowed},
		"sort must be one of %v", allowed)
}

func listError(err error) error {
	return fmt.Errorf("list failed: %w", upstream(err))
}
