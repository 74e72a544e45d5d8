// Package resilience holds the fault-tolerance primitives PolicyRadar wraps
// around calls that can fail on their own schedule: RSS fetches, Google
// News fallback queries, and the single SQLite writer connection.
//
//   - circuitbreaker wraps a call behind gobreaker, tripping after repeated
//     failures; internal/googlenews puts its queries behind one so a
//     failing endpoint stops being queried, and
//     circuitbreaker.DBCircuitBreaker does the same for the store's
//     *sql.DB. Direct RSS fetches are not behind a breaker.
//   - retry applies exponential backoff with jitter around a single attempt,
//     for failures worth a second try (a feed timeout) rather than a trip.
package resilience
