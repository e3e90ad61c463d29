package feed

import "time"

// Feed status codes as returned by football-data.org.
const (
	StatusScheduled = "SCHEDULED"
	StatusTimed     = "TIMED"
	StatusInPlay    = "IN_PLAY"
	StatusPaused    = "PAUSED"
	StatusFinished  = "FINISHED"
	StatusPostponed = "POSTPONED"
	StatusSuspended = "SUSPENDED"
	StatusCancelled = "CANCELLED"
)

// KnockoutStages lists the feed's knockout-stage codes, in bracket order.
var KnockoutStages = []string{
	"LAST_32",
	"LAST_16",
	"QUARTER_FINALS",
	"SEMI_FINALS",
	"THIRD_PLACE",
	"FINAL",
}

// TeamRef is a feed team descriptor.
type TeamRef struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	TLA       string `json:"tla"`
}

// ScorePair holds a nullable score pair; nil until the period is played.
type ScorePair struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Score is the feed's score block.
type Score struct {
	Winner   *string   `json:"winner"`
	FullTime ScorePair `json:"fullTime"`
	HalfTime ScorePair `json:"halfTime"`
}

// Match is a single feed match descriptor. It is read-only and ephemeral;
// nothing from it is stored verbatim.
type Match struct {
	ID       int       `json:"id"`
	UTCDate  time.Time `json:"utcDate"`
	Status   string    `json:"status"`
	Stage    string    `json:"stage"`
	HomeTeam TeamRef   `json:"homeTeam"`
	AwayTeam TeamRef   `json:"awayTeam"`
	Score    Score     `json:"score"`
}

type matchesResponse struct {
	Matches []Match `json:"matches"`
}

// Query selects which matches to fetch from the feed.
type Query struct {
	// Competition is the competition code (e.g. "WC", "PL").
	Competition string
	// Statuses filters by feed status codes; empty fetches all.
	Statuses []string
	// DateFrom/DateTo bound the window, "2006-01-02" format; empty omits.
	DateFrom string
	DateTo   string
	// Stages filters by knockout-stage codes; empty omits.
	Stages []string
}
