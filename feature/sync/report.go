package sync

// Pass modes.
const (
	ModeProduction = "PRODUCTION"
	ModeDryRun     = "DRY_RUN"
	ModeTest       = "TEST"
)

// Pass types.
const (
	TypeResultSync   = "RESULT_SYNC"
	TypeKnockoutSync = "KNOCKOUT_TEAMS_SYNC"
)

// Record actions.
const (
	ActionUpdated     = "UPDATED"
	ActionWouldUpdate = "WOULD_UPDATE"
)

// MatchAction describes one decided record: the teams involved, prior state,
// new state, and whether the write happened or was simulated.
type MatchAction struct {
	ID            string `json:"id"`
	Stage         string `json:"stage,omitempty"`
	Date          string `json:"date,omitempty"`
	Teams         string `json:"teams,omitempty"`
	CurrentTeams  string `json:"currentTeams,omitempty"`
	NewTeams      string `json:"newTeams,omitempty"`
	CurrentScore  string `json:"currentScore,omitempty"`
	NewScore      string `json:"newScore,omitempty"`
	Score         string `json:"score,omitempty"`
	CurrentStatus string `json:"currentStatus,omitempty"`
	NewStatus     string `json:"newStatus,omitempty"`
	Status        string `json:"status,omitempty"`
	Action        string `json:"action"`
}

// Report is the response payload of one pass. It is created fresh per pass
// and never persisted; the report itself is the audit trail.
type Report struct {
	Mode        string        `json:"mode"`
	Type        string        `json:"type"`
	Competition string        `json:"competition"`
	Updated     int           `json:"updated"`
	Skipped     int           `json:"skipped"`
	Errors      []string      `json:"errors"`
	Matches     []MatchAction `json:"matches"`
}

// NewReport creates an empty report with non-nil slices so the JSON payload
// always carries arrays, never nulls.
func NewReport(mode, passType, competition string) *Report {
	return &Report{
		Mode:        mode,
		Type:        passType,
		Competition: competition,
		Errors:      []string{},
		Matches:     []MatchAction{},
	}
}

// TestMatch is one formatted feed record returned by test mode.
type TestMatch struct {
	Date         string `json:"date"`
	HomeTeam     string `json:"homeTeam"`
	AwayTeam     string `json:"awayTeam"`
	Status       string `json:"status"`
	Score        string `json:"score"`
	MappedStatus string `json:"mappedStatus"`
}

// TestReport is the response payload of a test-mode invocation. Test mode
// never touches the store.
type TestReport struct {
	Mode        string      `json:"mode"`
	Competition string      `json:"competition"`
	Message     string      `json:"message"`
	MatchCount  int         `json:"matchCount"`
	Matches     []TestMatch `json:"matches"`
}
