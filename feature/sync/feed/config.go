package feed

// DefaultCompetition is the contest's own competition code (FIFA World Cup).
const DefaultCompetition = "WC"

// TestCompetition is a data-rich league used by test mode to exercise the
// pipeline against real fixtures without touching contest data.
const TestCompetition = "PL"

// Config holds configuration for the football-data.org client.
type Config struct {
	// BaseURL is the API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.football-data.org/v4"`
	// ApiKey is the X-Auth-Token credential. Required for every pass.
	ApiKey string `mapstructure:"api_key" default:""`
	// Competition is the default competition code for sync passes.
	Competition string `mapstructure:"competition" default:"WC"`
	// TimeoutSeconds bounds each upstream round trip.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
