package sync

import (
	"testing"
	"time"

	"match-sync/core/database"
	"match-sync/feature/sync/feed"
	"match-sync/feature/sync/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{
		Driver: "sqlite",
		Name:   ":memory:",
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Team{}, &models.Match{}))
	return db
}

func seedTeam(t *testing.T, db *gorm.DB, name string) models.Team {
	t.Helper()

	team := models.Team{
		ID:          uuid.NewString(),
		Name:        name,
		CountryCode: "XX",
		GroupName:   "A",
	}
	require.NoError(t, db.Create(&team).Error)
	return team
}

func seedMatch(t *testing.T, db *gorm.DB, home, away models.Team, date time.Time, stage, status string) models.Match {
	t.Helper()

	match := models.Match{
		ID:         uuid.NewString(),
		HomeTeamID: home.ID,
		AwayTeamID: away.ID,
		MatchDate:  date,
		Stage:      stage,
		Venue:      "Test Stadium",
		Status:     status,
	}
	require.NoError(t, db.Create(&match).Error)
	return match
}

func reloadMatch(t *testing.T, db *gorm.DB, id string) models.Match {
	t.Helper()

	var match models.Match
	require.NoError(t, db.First(&match, "id = ?", id).Error)
	return match
}

func feedMatch(home, away string, kickoff time.Time, status string, homeScore, awayScore *int) feed.Match {
	return feed.Match{
		ID:       1,
		UTCDate:  kickoff,
		Status:   status,
		HomeTeam: feed.TeamRef{ID: 101, Name: home, ShortName: home},
		AwayTeam: feed.TeamRef{ID: 102, Name: away, ShortName: away},
		Score: feed.Score{
			FullTime: feed.ScorePair{Home: homeScore, Away: awayScore},
		},
	}
}
