// Package sync implements the result-synchronization engine.
//
// It reconciles authoritative match data from the football-data.org feed
// into the contest database in one-shot passes. A pass runs in one of two
// modes, mutually exclusive per invocation:
//
//  1. Result sync: pulls live and recently finished matches, resolves each
//     feed record to a local match by fuzzy team-name matching plus calendar
//     date, and updates status and scores where they differ.
//  2. Knockout teams sync: pulls the knockout bracket and substitutes
//     placeholder ("TBD") participants with the real qualified teams once
//     the feed knows them.
//
// # Discipline
//
// The engine never writes a finished match, never erases a stored score with
// a null feed score, and never overwrites a match that already has two real
// teams. Running the same pass twice against unchanged feed data yields zero
// updates on the second run.
//
// # Failure isolation
//
// Per-record failures (unresolvable team, missing match, store error) are
// recorded as strings in the report and the pass continues; only a feed or
// configuration failure aborts the pass. The JSON report is the audit trail.
//
// # Components
//
//   - Service: pass entrypoint, mode selection, feed snapshot archival.
//   - Runner: sequential per-record reconciliation loop.
//   - Store: GORM-backed entity resolution and conditional writes.
//   - Handler: POST /sync and GET /sync/snapshots.
package sync
