package sync

import (
	"testing"

	"match-sync/feature/sync/models"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		name       string
		feedStatus string
		want       string
	}{
		{"Finished", "FINISHED", models.StatusFinished},
		{"InPlay", "IN_PLAY", models.StatusLive},
		{"Paused", "PAUSED", models.StatusLive},
		{"Scheduled", "SCHEDULED", models.StatusScheduled},
		{"Timed", "TIMED", models.StatusScheduled},
		{"Postponed", "POSTPONED", models.StatusScheduled},
		{"Suspended", "SUSPENDED", models.StatusScheduled},
		{"Cancelled", "CANCELLED", models.StatusScheduled},
		{"Unknown", "SOMETHING_NEW", models.StatusScheduled},
		{"Empty", "", models.StatusScheduled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStatus(tt.feedStatus))
		})
	}
}

func TestMapStageName(t *testing.T) {
	tests := []struct {
		name      string
		feedStage string
		want      string
	}{
		{"RoundOf32", "LAST_32", "Round of 32"},
		{"RoundOf16", "LAST_16", "Round of 16"},
		{"QuarterFinals", "QUARTER_FINALS", "Quarter-finals"},
		{"SemiFinals", "SEMI_FINALS", "Semi-finals"},
		{"ThirdPlace", "THIRD_PLACE", "Third Place"},
		{"Final", "FINAL", "Final"},
		{"UnknownPassesThrough", "GROUP_STAGE", "GROUP_STAGE"},
		{"EmptyPassesThrough", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStageName(tt.feedStage))
		})
	}
}
