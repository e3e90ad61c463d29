package sync

import (
	"context"
	"fmt"

	"match-sync/feature/sync/feed"

	"go.uber.org/zap"
)

// Runner executes one reconciliation pass over a list of feed matches.
// Records are processed sequentially in feed order; each record's failure is
// isolated into the report so one bad record never aborts the batch.
type Runner struct {
	resolver Resolver
	writer   Writer
	logger   *zap.Logger
}

// NewRunner creates a pass runner.
func NewRunner(resolver Resolver, writer Writer, logger *zap.Logger) *Runner {
	return &Runner{resolver: resolver, writer: writer, logger: logger}
}

// outcome is the explicit per-record result. Exactly one of the three shapes
// holds: a decided action, a routine skip (both nil), or a failure.
type outcome struct {
	action *MatchAction
	err    error
}

// accumulate folds one record outcome into the report.
func accumulate(report *Report, o outcome) {
	switch {
	case o.err != nil:
		report.Errors = append(report.Errors, o.err.Error())
		report.Skipped++
	case o.action == nil:
		report.Skipped++
	default:
		report.Matches = append(report.Matches, *o.action)
		report.Updated++
	}
}

// RunResults reconciles feed results into the local store.
func (r *Runner) RunResults(ctx context.Context, feedMatches []feed.Match, dryRun bool, report *Report) {
	for _, fm := range feedMatches {
		accumulate(report, r.syncResult(ctx, fm, dryRun))
	}
}

func (r *Runner) syncResult(ctx context.Context, fm feed.Match, dryRun bool) outcome {
	home, err := r.resolver.ResolveTeam(ctx, fm.HomeTeam.Name, fm.HomeTeam.ShortName)
	if err != nil {
		return outcome{err: fmt.Errorf("could not find teams: %s vs %s: %v", fm.HomeTeam.Name, fm.AwayTeam.Name, err)}
	}
	away, err := r.resolver.ResolveTeam(ctx, fm.AwayTeam.Name, fm.AwayTeam.ShortName)
	if err != nil {
		return outcome{err: fmt.Errorf("could not find teams: %s vs %s: %v", fm.HomeTeam.Name, fm.AwayTeam.Name, err)}
	}

	matchDate := fm.UTCDate.UTC().Format("2006-01-02")

	match, err := r.resolver.ResolveResultMatch(ctx, home.ID, away.ID, fm.UTCDate)
	if err != nil {
		return outcome{err: fmt.Errorf("match not found in DB: %s vs %s on %s: %v", home.Name, away.Name, matchDate, err)}
	}

	// Finished is terminal: never re-derive status or scores from the feed.
	if match.IsFinished() {
		return outcome{}
	}

	newStatus := MapStatus(fm.Status)
	homeScore := fm.Score.FullTime.Home
	awayScore := fm.Score.FullTime.Away

	if !NeedsUpdate(match, newStatus, homeScore, awayScore) {
		return outcome{}
	}

	teams := home.Name + " vs " + away.Name

	if dryRun {
		r.logger.Info("Would update match",
			zap.String("teams", teams),
			zap.String("new_status", newStatus),
		)
		return outcome{action: &MatchAction{
			ID:            match.ID,
			Teams:         teams,
			CurrentScore:  formatScore(match.HomeScore, match.AwayScore),
			NewScore:      formatScore(homeScore, awayScore),
			CurrentStatus: match.Status,
			NewStatus:     newStatus,
			Action:        ActionWouldUpdate,
		}}
	}

	if err := r.writer.UpdateMatchResult(ctx, match.ID, BuildUpdate(newStatus, homeScore, awayScore)); err != nil {
		return outcome{err: err}
	}

	r.logger.Info("Updated match",
		zap.String("teams", teams),
		zap.String("score", formatScore(homeScore, awayScore)),
		zap.String("status", newStatus),
	)

	return outcome{action: &MatchAction{
		ID:     match.ID,
		Teams:  teams,
		Score:  formatScore(homeScore, awayScore),
		Status: newStatus,
		Action: ActionUpdated,
	}}
}

// formatScore renders a nullable score pair, "?" standing in for unknown.
func formatScore(home, away *int) string {
	render := func(v *int) string {
		if v == nil {
			return "?"
		}
		return fmt.Sprintf("%d", *v)
	}
	return render(home) + " - " + render(away)
}
