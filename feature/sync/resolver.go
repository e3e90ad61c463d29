package sync

import (
	"context"
	"fmt"
	"strings"
	"time"

	"match-sync/feature/sync/models"

	"gorm.io/gorm"
)

// Resolver maps feed entities to local records. The team lookup is a
// name-substring heuristic, so it lives behind this interface; it can be
// swapped for an explicit mapping table without touching the passes.
type Resolver interface {
	// ResolveTeam finds the local team whose name contains the feed team's
	// full or short name (case-insensitive), excluding placeholder teams.
	// Zero or multiple candidates fail resolution; ties are never guessed.
	ResolveTeam(ctx context.Context, name, shortName string) (*models.Team, error)
	// ResolveResultMatch finds the local match with exactly this team pair
	// on the same UTC calendar day as the feed kickoff.
	ResolveResultMatch(ctx context.Context, homeTeamID, awayTeamID string, kickoff time.Time) (*models.Match, error)
	// StageMatches lists local matches in a stage on the kickoff's UTC day.
	StageMatches(ctx context.Context, stage string, kickoff time.Time) ([]models.Match, error)
	// TeamByID loads a team record.
	TeamByID(ctx context.Context, id string) (*models.Team, error)
}

// Writer performs the engine's conditional match writes.
type Writer interface {
	// UpdateMatchResult writes status/score columns on one match.
	UpdateMatchResult(ctx context.Context, matchID string, fields map[string]any) error
	// UpdateMatchTeams substitutes a placeholder match's team identifiers.
	UpdateMatchTeams(ctx context.Context, matchID, homeTeamID, awayTeamID string) error
}

// Store is the GORM-backed Resolver and Writer over the contest database.
type Store struct {
	db *gorm.DB
}

// NewStore wraps a database handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// ResolveTeam implements Resolver.
func (s *Store) ResolveTeam(ctx context.Context, name, shortName string) (*models.Team, error) {
	query := s.db.WithContext(ctx).
		Where("name NOT LIKE ?", "%"+models.PlaceholderMarker+"%")

	namePattern := "%" + strings.ToLower(name) + "%"
	if shortName != "" {
		query = query.Where("LOWER(name) LIKE ? OR LOWER(name) LIKE ?",
			namePattern, "%"+strings.ToLower(shortName)+"%")
	} else {
		query = query.Where("LOWER(name) LIKE ?", namePattern)
	}

	var teams []models.Team
	if err := query.Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("team lookup failed for %q: %w", name, err)
	}

	switch len(teams) {
	case 1:
		return &teams[0], nil
	case 0:
		return nil, fmt.Errorf("no team matches %q", name)
	default:
		// Substring matching can hit several teams (e.g. "Korea" matching
		// both North and South Korea). Fail closed instead of guessing.
		return nil, fmt.Errorf("ambiguous team name %q: %d candidates", name, len(teams))
	}
}

// ResolveResultMatch implements Resolver. The comparison is date-only (UTC)
// to tolerate kickoff-time discrepancies between feed and seed data.
func (s *Store) ResolveResultMatch(ctx context.Context, homeTeamID, awayTeamID string, kickoff time.Time) (*models.Match, error) {
	dayStart, dayEnd := dayWindow(kickoff)

	var matches []models.Match
	err := s.db.WithContext(ctx).
		Where("home_team_id = ? AND away_team_id = ?", homeTeamID, awayTeamID).
		Where("match_date >= ? AND match_date < ?", dayStart, dayEnd).
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("match lookup failed: %w", err)
	}

	switch len(matches) {
	case 1:
		return &matches[0], nil
	case 0:
		return nil, fmt.Errorf("match not found on %s", dayStart.Format("2006-01-02"))
	default:
		return nil, fmt.Errorf("ambiguous match on %s: %d candidates", dayStart.Format("2006-01-02"), len(matches))
	}
}

// StageMatches implements Resolver.
func (s *Store) StageMatches(ctx context.Context, stage string, kickoff time.Time) ([]models.Match, error) {
	dayStart, dayEnd := dayWindow(kickoff)

	var matches []models.Match
	err := s.db.WithContext(ctx).
		Where("stage = ? AND match_date >= ? AND match_date < ?", stage, dayStart, dayEnd).
		Find(&matches).Error
	if err != nil {
		return nil, fmt.Errorf("stage match lookup failed: %w", err)
	}
	return matches, nil
}

// TeamByID implements Resolver.
func (s *Store) TeamByID(ctx context.Context, id string) (*models.Team, error) {
	var team models.Team
	if err := s.db.WithContext(ctx).First(&team, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("team %s lookup failed: %w", id, err)
	}
	return &team, nil
}

// UpdateMatchResult implements Writer.
func (s *Store) UpdateMatchResult(ctx context.Context, matchID string, fields map[string]any) error {
	err := s.db.WithContext(ctx).
		Model(&models.Match{}).
		Where("id = ?", matchID).
		Updates(fields).Error
	if err != nil {
		return fmt.Errorf("failed to update match %s: %w", matchID, err)
	}
	return nil
}

// UpdateMatchTeams implements Writer.
func (s *Store) UpdateMatchTeams(ctx context.Context, matchID, homeTeamID, awayTeamID string) error {
	err := s.db.WithContext(ctx).
		Model(&models.Match{}).
		Where("id = ?", matchID).
		Updates(map[string]any{
			"home_team_id": homeTeamID,
			"away_team_id": awayTeamID,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to update match %s: %w", matchID, err)
	}
	return nil
}

// dayWindow returns the UTC calendar-day bounds containing t.
func dayWindow(t time.Time) (time.Time, time.Time) {
	utc := t.UTC()
	dayStart := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	return dayStart, dayStart.Add(24 * time.Hour)
}
