// Package session hosts interactive path-finding sessions: each Session
// owns one gridgraph.GridGraph and is addressed by a UUID in a Store.
//
// On top of the engine a Session adds:
//
//   - a bounded path cache keyed by (start, end, registry revision), so an
//     unchanged board answers repeated queries without searching;
//   - singleflight suppression of concurrent identical searches;
//   - Prometheus metrics (searches by result, latency, cache hits/misses,
//     live sessions) on an injected Registerer;
//   - an OpenTelemetry span per search and slog events for session
//     lifecycle and slow searches.
//
// Errors:
//
//   - ErrSessionNotFound: unknown or malformed session ID.
//   - gridgraph.ErrInvalidArgument: propagated from the engine.
package session
