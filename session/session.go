package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/terrain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/singleflight"
)

var tracer = otel.Tracer("github.com/katalvlaran/gridpath/session")

// Result is the outcome of Session.FindPath.
type Result struct {
	// Path from start to end inclusive; empty when unreachable or start == end.
	Path []gridgraph.Node
	// Revision is the registry revision the path was computed against.
	Revision uint64
	// Cached reports that no search ran for this call.
	Cached bool
	// Elapsed is the time spent answering the call.
	Elapsed time.Duration
}

// Found reports whether a non-empty path was returned.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Session is one user's board. All methods are safe for concurrent use.
type Session struct {
	ID      uuid.UUID
	Created time.Time

	graph   *gridgraph.GridGraph
	cache   *pathCache
	group   singleflight.Group
	metrics *Metrics
	logger  *slog.Logger
	slow    time.Duration
}

func newSession(width, height int, cfg Config, m *Metrics) (*Session, error) {
	id := uuid.New()
	logger := cfg.Logger.With(slog.String("session", id.String()))
	g, err := gridgraph.New(width, height, gridgraph.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &Session{
		ID:      id,
		Created: time.Now(),
		graph:   g,
		cache:   newPathCache(cfg.CacheSize),
		metrics: m,
		logger:  logger,
		slow:    cfg.SlowSearch,
	}, nil
}

// Graph exposes the underlying engine, e.g. for rendering.
func (s *Session) Graph() *gridgraph.GridGraph { return s.graph }

// Block blocks the edge between a and b.
func (s *Session) Block(a, b gridgraph.Node) error { return s.graph.BlockEdge(a, b) }

// Unblock clears the edge between a and b.
func (s *Session) Unblock(a, b gridgraph.Node) error { return s.graph.UnblockEdge(a, b) }

// Toggle flips the edge between a and b and reports whether it is now blocked.
func (s *Session) Toggle(a, b gridgraph.Node) (bool, error) { return s.graph.ToggleEdge(a, b) }

// Clear unblocks every edge.
func (s *Session) Clear() { s.graph.Reset() }

// Randomize replaces the board with noise-generated walls for seed and
// returns the number of blocked edges. The swap is atomic: a concurrent
// search sees either the old board or the new one.
func (s *Session) Randomize(seed int64, opts ...terrain.Option) (int, error) {
	walls, err := terrain.Walls(s.graph.Width(), s.graph.Height(), append([]terrain.Option{terrain.WithSeed(seed)}, opts...)...)
	if err != nil {
		return 0, err
	}
	if err := s.graph.ReplaceBlocked(walls); err != nil {
		return 0, err
	}
	s.logger.Info("board_randomized", slog.Int64("seed", seed), slog.Int("walls", len(walls)))

	return len(walls), nil
}

// FindPath answers a shortest-path query, from cache when the board has not
// changed since the same query last ran. Concurrent identical queries share
// one search; that search ignores cancellation, and each caller stops
// waiting for it when its own ctx is done.
func (s *Session) FindPath(ctx context.Context, start, end gridgraph.Node) (Result, error) {
	if err := ctx.Err(); err != nil {
		s.metrics.Searches.WithLabelValues(resultError).Inc()
		return Result{}, fmt.Errorf("session %s: find path %s→%s: %w", s.ID, start, end, err)
	}
	ctx, span := tracer.Start(ctx, "session.FindPath")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("path.start", start.String()),
		attribute.String("path.end", end.String()),
	)
	began := time.Now()

	key := cacheKey{start: start, end: end, revision: s.graph.Revision()}
	if path, ok := s.cache.get(key); ok {
		s.metrics.CacheHits.Inc()
		span.SetAttributes(attribute.Bool("cache_hit", true), attribute.Int("path.length", len(path)))
		return Result{Path: path, Revision: key.revision, Cached: true, Elapsed: time.Since(began)}, nil
	}
	s.metrics.CacheMisses.Inc()

	flightKey := fmt.Sprintf("%s>%s@%d", start, end, key.revision)
	flight := context.WithoutCancel(ctx)
	ch := s.group.DoChan(flightKey, func() (any, error) {
		var rev uint64
		path, err := s.graph.FindPath(start, end,
			gridgraph.WithContext(flight),
			gridgraph.WithObservedRevision(&rev),
		)
		if err != nil {
			return nil, err
		}
		s.cache.put(cacheKey{start: start, end: end, revision: rev}, path)

		return Result{Path: path, Revision: rev}, nil
	})
	var (
		v   any
		err error
	)
	select {
	case out := <-ch:
		v, err = out.Val, out.Err
	case <-ctx.Done():
		err = ctx.Err()
	}
	elapsed := time.Since(began)
	s.metrics.Duration.Observe(elapsed.Seconds())

	if err != nil {
		s.metrics.Searches.WithLabelValues(resultError).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, fmt.Errorf("session %s: find path %s→%s: %w", s.ID, start, end, err)
	}
	res, ok := v.(Result)
	if !ok {
		err := fmt.Errorf("session %s: unexpected singleflight result %T", s.ID, v)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}
	res.Path = clonePath(res.Path)
	res.Elapsed = elapsed

	label := resultUnreachable
	if res.Found() {
		label = resultFound
	}
	s.metrics.Searches.WithLabelValues(label).Inc()
	span.SetAttributes(attribute.Bool("cache_hit", false), attribute.Int("path.length", len(res.Path)))

	attrs := []any{
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int("length", len(res.Path)),
		slog.Duration("duration", elapsed),
	}
	if elapsed > s.slow {
		s.logger.Warn("slow_path_search", append(attrs, slog.Duration("threshold", s.slow))...)
	} else {
		s.logger.Debug("path_search_complete", attrs...)
	}

	return res, nil
}
