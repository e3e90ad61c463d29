// Package feed implements the football-data.org v4 client.
//
// The feed is the authoritative source of match schedules, live status and
// scores. The client exposes a single Matches call filtered by competition,
// status, date window and knockout stage; everything it returns is treated
// as read-only input to the reconciliation passes.
package feed
