package sync

import (
	"context"
	"errors"
	"testing"
	"time"

	"match-sync/core/storage/mocks"
	"match-sync/feature/sync/feed"
	"match-sync/feature/sync/models"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubFeed returns canned matches and records the queries it received.
type stubFeed struct {
	matches []feed.Match
	err     error
	queries []feed.Query
}

func (s *stubFeed) Matches(_ context.Context, q feed.Query) ([]feed.Match, error) {
	s.queries = append(s.queries, q)
	if s.err != nil {
		return nil, s.err
	}
	return s.matches, nil
}

func newTestService(t *testing.T, fc FeedClient, apiKey string) (*Service, *Store) {
	t.Helper()

	store := NewStore(newTestDB(t))
	svc := NewService(fc, store, nil, "", feed.Config{ApiKey: apiKey}, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	}
	return svc, store
}

func TestService_Sync_MissingApiKeyIsFatal(t *testing.T) {
	svc, _ := newTestService(t, &stubFeed{}, "")

	_, err := svc.Sync(context.Background(), Options{})
	require.ErrorIs(t, err, ErrMissingApiKey)
}

func TestService_Sync_UpstreamFailureIsFatal(t *testing.T) {
	svc, _ := newTestService(t, &stubFeed{err: errors.New("football-data API error: 429 - too many requests")}, "key")

	_, err := svc.Sync(context.Background(), Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestService_Sync_ResultWindow(t *testing.T) {
	fc := &stubFeed{}
	svc, _ := newTestService(t, fc, "key")

	report, err := svc.Sync(context.Background(), Options{DaysBack: 3})
	require.NoError(t, err)
	assert.Equal(t, ModeProduction, report.Mode)
	assert.Equal(t, TypeResultSync, report.Type)
	assert.Equal(t, feed.DefaultCompetition, report.Competition)

	require.Len(t, fc.queries, 1)
	q := fc.queries[0]
	assert.Equal(t, "WC", q.Competition)
	assert.Equal(t, []string{feed.StatusInPlay, feed.StatusPaused, feed.StatusFinished}, q.Statuses)
	assert.Equal(t, "2026-07-07", q.DateFrom)
	assert.Equal(t, "2026-07-11", q.DateTo)
	assert.Empty(t, q.Stages)
}

func TestService_Sync_KnockoutQuery(t *testing.T) {
	fc := &stubFeed{}
	svc, _ := newTestService(t, fc, "key")

	report, err := svc.Sync(context.Background(), Options{Competition: "CL", SyncKnockoutTeams: true, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, ModeDryRun, report.Mode)
	assert.Equal(t, TypeKnockoutSync, report.Type)
	assert.Equal(t, "CL", report.Competition)

	require.Len(t, fc.queries, 1)
	q := fc.queries[0]
	assert.Equal(t, "CL", q.Competition)
	assert.Equal(t, feed.KnockoutStages, q.Stages)
	assert.Empty(t, q.Statuses)
	assert.Empty(t, q.DateFrom)
}

func TestService_Sync_EndToEnd(t *testing.T) {
	kickoff := time.Date(2026, 7, 10, 18, 0, 0, 0, time.UTC)
	fc := &stubFeed{matches: []feed.Match{
		feedMatch("France", "Brazil", kickoff, feed.StatusInPlay, intPtr(1), intPtr(0)),
	}}
	svc, store := newTestService(t, fc, "key")

	france := seedTeam(t, store.db, "France")
	brazil := seedTeam(t, store.db, "Brazil")
	match := seedMatch(t, store.db, france, brazil, kickoff, "Group A", models.StatusScheduled)

	report, err := svc.Sync(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Updated)
	assert.Empty(t, report.Errors)

	stored := reloadMatch(t, store.db, match.ID)
	assert.Equal(t, models.StatusLive, stored.Status)
}

func TestService_Test(t *testing.T) {
	kickoff := time.Date(2026, 7, 10, 15, 0, 0, 0, time.UTC)
	fc := &stubFeed{matches: []feed.Match{
		feedMatch("Arsenal", "Chelsea", kickoff, feed.StatusFinished, intPtr(2), intPtr(1)),
		feedMatch("Liverpool", "Everton", kickoff, feed.StatusTimed, nil, nil),
	}}
	svc, _ := newTestService(t, fc, "key")

	report, err := svc.Test(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, ModeTest, report.Mode)
	assert.Equal(t, feed.TestCompetition, report.Competition)
	assert.Equal(t, 2, report.MatchCount)
	require.Len(t, report.Matches, 2)

	assert.Equal(t, "Arsenal", report.Matches[0].HomeTeam)
	assert.Equal(t, "2 - 1", report.Matches[0].Score)
	assert.Equal(t, models.StatusFinished, report.Matches[0].MappedStatus)

	assert.Equal(t, "N/A", report.Matches[1].Score)
	assert.Equal(t, models.StatusScheduled, report.Matches[1].MappedStatus)

	// Test mode defaults to the data-rich test competition.
	require.Len(t, fc.queries, 1)
	assert.Equal(t, "PL", fc.queries[0].Competition)
}

func TestService_Test_MissingApiKeyIsFatal(t *testing.T) {
	svc, _ := newTestService(t, &stubFeed{}, "")

	_, err := svc.Test(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingApiKey)
}

func TestService_SnapshotArchival(t *testing.T) {
	kickoff := time.Date(2026, 7, 10, 18, 0, 0, 0, time.UTC)
	fc := &stubFeed{matches: []feed.Match{
		feedMatch("France", "Brazil", kickoff, feed.StatusInPlay, intPtr(1), intPtr(0)),
	}}

	archive := &mocks.Client{}
	archive.On("BucketExists", mock.Anything, "feed-snapshots").Return(false, nil)
	archive.On("MakeBucket", mock.Anything, "feed-snapshots", mock.Anything).Return(nil)
	archive.On("PutObject", mock.Anything, "feed-snapshots", "snapshots/WC/20260710T120000Z.json",
		mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	store := NewStore(newTestDB(t))
	svc := NewService(fc, store, archive, "feed-snapshots", feed.Config{ApiKey: "key"}, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)
	}

	_, err := svc.Sync(context.Background(), Options{DryRun: true})
	require.NoError(t, err)
	archive.AssertExpectations(t)
}

func TestService_SnapshotArchivalFailureIsNonFatal(t *testing.T) {
	kickoff := time.Date(2026, 7, 10, 18, 0, 0, 0, time.UTC)
	fc := &stubFeed{matches: []feed.Match{
		feedMatch("France", "Brazil", kickoff, feed.StatusInPlay, intPtr(1), intPtr(0)),
	}}

	archive := &mocks.Client{}
	archive.On("BucketExists", mock.Anything, "feed-snapshots").Return(false, errors.New("connection refused"))

	store := NewStore(newTestDB(t))
	svc := NewService(fc, store, archive, "feed-snapshots", feed.Config{ApiKey: "key"}, zap.NewNop())

	_, err := svc.Sync(context.Background(), Options{DryRun: true})
	require.NoError(t, err)
}

func TestService_Snapshots(t *testing.T) {
	archive := &mocks.Client{}
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "snapshots/WC/20260710T120000Z.json"}
	ch <- minio.ObjectInfo{Key: "snapshots/WC/20260710T180000Z.json"}
	close(ch)
	archive.On("ListObjects", mock.Anything, "feed-snapshots",
		minio.ListObjectsOptions{Prefix: "snapshots/WC/", Recursive: true}).Return((<-chan minio.ObjectInfo)(ch))

	svc := NewService(&stubFeed{}, nil, archive, "feed-snapshots", feed.Config{ApiKey: "key"}, zap.NewNop())

	names, err := svc.Snapshots(context.Background(), "WC")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"snapshots/WC/20260710T120000Z.json",
		"snapshots/WC/20260710T180000Z.json",
	}, names)
}

func TestService_Snapshots_DisabledWithoutArchive(t *testing.T) {
	svc, _ := newTestService(t, &stubFeed{}, "key")

	_, err := svc.Snapshots(context.Background(), "WC")
	require.Error(t, err)
}
