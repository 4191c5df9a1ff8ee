package race

import (
	"context"
	"fmt"
	"runtime"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const defaultCacheSize = 1024

// Solver counts winning press times for many races at once, remembering
// races it has already seen. It is safe for concurrent use.
type Solver struct {
	log         *zap.Logger
	cache       *lru.Cache
	cacheSize   int
	parallelism int
}

type Option func(*Solver)

func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) { s.log = l }
}

func WithCacheSize(n int) Option {
	return func(s *Solver) { s.cacheSize = n }
}

// WithParallelism bounds the number of races counted concurrently. Values
// below 1 mean one at a time.
func WithParallelism(n int) Option {
	return func(s *Solver) { s.parallelism = n }
}

func NewSolver(opts ...Option) (*Solver, error) {
	s := &Solver{
		log:         zap.NewNop(),
		cacheSize:   defaultCacheSize,
		parallelism: runtime.NumCPU(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.parallelism < 1 {
		s.parallelism = 1
	}
	cache, err := lru.New(s.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	s.cache = cache
	return s, nil
}

// Counts returns the solution count of each race, in input order.
func (s *Solver) Counts(ctx context.Context, races []Race) ([]int64, error) {
	res := make([]int64, len(races))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.parallelism)
	for i := range races {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res[i] = s.count(races[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

// Solve returns the product of the races' solution counts.
func (s *Solver) Solve(ctx context.Context, races []Race) (int64, error) {
	counts, err := s.Counts(ctx, races)
	if err != nil {
		return 0, err
	}
	return Product(counts)
}

func (s *Solver) count(r Race) int64 {
	if v, ok := s.cache.Get(r); ok {
		return v.(int64)
	}
	n := r.Count()
	s.cache.Add(r, n)
	s.log.Debug("counted race",
		zap.Int64("time", r.Time),
		zap.Int64("record", r.Record),
		zap.Int64("solutions", n))
	return n
}
