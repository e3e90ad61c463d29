// Package matches exposes the read surface over the contest schedule.
//
// It serves matches joined with their home and away teams, ordered by
// kickoff and optionally filtered by stage. The package is read-only; all
// writes to the matches table go through the sync engine or external
// collaborators.
//
// # HTTP Endpoints
//
//   - GET /matches       : List matches (query param 'stage' filters).
//   - GET /matches/:id   : Get one match.
package matches
