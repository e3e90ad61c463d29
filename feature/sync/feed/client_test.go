package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Matches(t *testing.T) {
	var gotPath, gotToken string
	var gotQuery map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.Header.Get("X-Auth-Token")
		gotQuery = map[string]string{
			"status":   r.URL.Query().Get("status"),
			"dateFrom": r.URL.Query().Get("dateFrom"),
			"dateTo":   r.URL.Query().Get("dateTo"),
			"stage":    r.URL.Query().Get("stage"),
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"matches": [
				{
					"id": 42,
					"utcDate": "2026-07-10T18:00:00Z",
					"status": "IN_PLAY",
					"stage": "QUARTER_FINALS",
					"homeTeam": {"id": 1, "name": "France", "shortName": "France", "tla": "FRA"},
					"awayTeam": {"id": 2, "name": "Brazil", "shortName": "Brazil", "tla": "BRA"},
					"score": {"winner": null, "fullTime": {"home": 1, "away": 0}, "halfTime": {"home": 1, "away": 0}}
				}
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, ApiKey: "secret", TimeoutSeconds: 5})

	matches, err := client.Matches(context.Background(), Query{
		Competition: "WC",
		Statuses:    []string{StatusInPlay, StatusPaused, StatusFinished},
		DateFrom:    "2026-07-10",
		DateTo:      "2026-07-11",
		Stages:      []string{"QUARTER_FINALS"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/competitions/WC/matches", gotPath)
	assert.Equal(t, "secret", gotToken)
	assert.Equal(t, "IN_PLAY,PAUSED,FINISHED", gotQuery["status"])
	assert.Equal(t, "2026-07-10", gotQuery["dateFrom"])
	assert.Equal(t, "2026-07-11", gotQuery["dateTo"])
	assert.Equal(t, "QUARTER_FINALS", gotQuery["stage"])

	require.Len(t, matches, 1)
	m := matches[0]
	assert.Equal(t, 42, m.ID)
	assert.Equal(t, StatusInPlay, m.Status)
	assert.Equal(t, "France", m.HomeTeam.Name)
	assert.Equal(t, "Brazil", m.AwayTeam.Name)
	require.NotNil(t, m.Score.FullTime.Home)
	assert.Equal(t, 1, *m.Score.FullTime.Home)
	require.NotNil(t, m.Score.FullTime.Away)
	assert.Equal(t, 0, *m.Score.FullTime.Away)
}

func TestClient_Matches_OmitsEmptyParams(t *testing.T) {
	var gotRawQuery string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRawQuery = r.URL.RawQuery
		w.Write([]byte(`{"matches": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, ApiKey: "secret"})

	matches, err := client.Matches(context.Background(), Query{Competition: "PL"})
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Empty(t, gotRawQuery)
}

func TestClient_Matches_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "restricted resource"}`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, ApiKey: "bad"})

	_, err := client.Matches(context.Background(), Query{Competition: "WC"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "football-data API error: 403")
	assert.Contains(t, err.Error(), "restricted resource")
}

func TestClient_Matches_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"matches": [`))
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, ApiKey: "secret"})

	_, err := client.Matches(context.Background(), Query{Competition: "WC"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode feed response")
}
