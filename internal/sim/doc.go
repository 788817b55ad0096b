// Package sim drives an inventory through consecutive days.
//
// The rose package only knows how to advance items by one day. The Simulator
// is the collaborator that sources a starting inventory, calls
// rose.UpdateQuality once per day, snapshots the items after each call and
// hands each snapshot to an optional Recorder (the SQLite store in
// production, nothing in tests).
//
// Ordering:
//
// Every snapshot is stamped with a monotonic seq from a logical Clock. Wall
// time is never used, so two runs of the same inventory produce identical
// traces apart from the run id.
//
// Limits:
//
// Run refuses to simulate more than MaxDays days (DefaultMaxDays unless
// configured with WithMaxDays) and checks ctx between days.
package sim
