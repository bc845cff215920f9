// Package state shares the catalog load result between the loader goroutine
// and the UI.
//
// The loader calls Update after every fetch attempt and ScheduleRetry before
// sleeping; the Bubble Tea program polls Snapshot on a tick until Loaded is
// true, then builds its own view.State from the catalog and stops polling.
// Both sides only ever see copies: Update clones the catalog it is given and
// Snapshot clones it again on the way out.
//
// A failed attempt keeps whatever catalog was stored before, records the
// error, and bumps ConsecutiveFailures. IsOffline turns true after two
// failures in a row with nothing loaded, which the header shows as a retrying
// banner.
package state
