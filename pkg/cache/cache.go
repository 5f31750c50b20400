package cache

//go:generate mockgen -source=cache.go -destination=mocks/cache_mock.go -package=mocks

import "context"

// Lookup is the result of a Get. Generation is the keyspace the lookup ran
// in; a Set made with it after an Invalidate lands in a dead keyspace.
type Lookup struct {
	Value      []byte
	Hit        bool
	Generation int64
}

// StatsCache stores serialized analytics results. Invalidate drops every
// cached entry at once; it is called after any write that can move a stat.
type StatsCache interface {
	Get(ctx context.Context, key string) (Lookup, error)
	Set(ctx context.Context, generation int64, key string, value []byte) error
	Invalidate(ctx context.Context) error
	Close()
}

// Noop is used when no Redis address is configured
type Noop struct{}

func (Noop) Get(context.Context, string) (Lookup, error)      { return Lookup{}, nil }
func (Noop) Set(context.Context, int64, string, []byte) error { return nil }
func (Noop) Invalidate(context.Context) error                 { return nil }
func (Noop) Close()                                           {}
