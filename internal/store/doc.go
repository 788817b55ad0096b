// Package store provides a SQLite-backed log of simulation runs.
//
// The log is append-only and holds:
//   - runs: one row per simulation run (UUIDv7 id, source label, requested days)
//   - run_days: one row per recorded day with its seq and snapshot hash, even
//     when the inventory is empty
//   - day_items: one row per item per day
//
// It is a history of what each run did. Nothing reads it back to seed a new
// inventory.
//
// # Ordering
//
// All ordering uses the logical seq stamped by sim.Clock, never wall time.
// Every query orders by seq and position so repeated reads return identical
// results.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL
//   - busy_timeout=5000
//   - foreign_keys=ON
package store
