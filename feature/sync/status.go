package sync

import (
	"match-sync/feature/sync/feed"
	"match-sync/feature/sync/models"
)

// MapStatus translates a feed status code into the local three-state model.
// In-progress codes (possibly paused) map to live; the terminal success code
// maps to finished; everything else, including unknown codes, degrades to
// scheduled rather than failing the pass.
func MapStatus(feedStatus string) string {
	switch feedStatus {
	case feed.StatusFinished:
		return models.StatusFinished
	case feed.StatusInPlay, feed.StatusPaused:
		return models.StatusLive
	default:
		return models.StatusScheduled
	}
}

// stageNames maps feed knockout-stage codes to the stage labels used in the
// matches table.
var stageNames = map[string]string{
	"LAST_32":        "Round of 32",
	"LAST_16":        "Round of 16",
	"QUARTER_FINALS": "Quarter-finals",
	"SEMI_FINALS":    "Semi-finals",
	"THIRD_PLACE":    "Third Place",
	"FINAL":          "Final",
}

// MapStageName translates a feed stage code into the local stage label.
// Unmapped codes pass through unchanged; the stage column is a free-form
// label, so an unknown code is not an error.
func MapStageName(feedStage string) string {
	if name, ok := stageNames[feedStage]; ok {
		return name
	}
	return feedStage
}
