package models

import (
	"strings"
	"time"
)

// Match status values used in the contest database.
const (
	StatusScheduled = "scheduled"
	StatusLive      = "live"
	StatusFinished  = "finished"
)

// PlaceholderMarker flags a team record standing in for a knockout
// participant not yet determined (e.g. "Winner Match 3 (TBD)").
const PlaceholderMarker = "TBD"

// Team represents a row in the 'teams' table.
// The sync engine only reads teams; it never mutates them.
type Team struct {
	ID          string  `gorm:"column:id;primaryKey" json:"id"`
	Name        string  `gorm:"column:name" json:"name"`
	CountryCode string  `gorm:"column:country_code" json:"country_code"`
	FlagURL     *string `gorm:"column:flag_url" json:"flag_url"`
	GroupName   string  `gorm:"column:group_name" json:"group_name"`
}

// TableName overrides the table name.
func (Team) TableName() string {
	return "teams"
}

// IsPlaceholder reports whether the team is an unresolved knockout slot.
func (t Team) IsPlaceholder() bool {
	return strings.Contains(t.Name, PlaceholderMarker)
}

// Match represents a row in the 'matches' table.
// The engine conditionally writes status, home_score, away_score (results
// pass) or home_team_id, away_team_id (knockout pass); all other columns
// belong to collaborators (seed data, admin screens).
type Match struct {
	ID         string    `gorm:"column:id;primaryKey" json:"id"`
	HomeTeamID string    `gorm:"column:home_team_id" json:"home_team_id"`
	AwayTeamID string    `gorm:"column:away_team_id" json:"away_team_id"`
	MatchDate  time.Time `gorm:"column:match_date" json:"match_date"`
	Stage      string    `gorm:"column:stage" json:"stage"`
	Venue      string    `gorm:"column:venue" json:"venue"`
	HomeScore  *int      `gorm:"column:home_score" json:"home_score"`
	AwayScore  *int      `gorm:"column:away_score" json:"away_score"`
	Status     string    `gorm:"column:status" json:"status"`

	HomeTeam *Team `gorm:"foreignKey:HomeTeamID" json:"home_team,omitempty"`
	AwayTeam *Team `gorm:"foreignKey:AwayTeamID" json:"away_team,omitempty"`
}

// TableName overrides the table name.
func (Match) TableName() string {
	return "matches"
}

// IsFinished reports whether the match reached its terminal state.
// Finished matches are sync-immune: no pass may touch them again.
func (m Match) IsFinished() bool {
	return m.Status == StatusFinished
}
