package sync

import (
	"context"
	"fmt"

	"match-sync/feature/sync/feed"
	"match-sync/feature/sync/models"

	"go.uber.org/zap"
)

// RunKnockout resolves placeholder knockout slots: matches seeded with "TBD"
// teams get their real participants once the feed knows them. It writes team
// identifiers only, never scores or status.
func (r *Runner) RunKnockout(ctx context.Context, feedMatches []feed.Match, dryRun bool, report *Report) {
	for _, fm := range feedMatches {
		accumulate(report, r.syncKnockout(ctx, fm, dryRun))
	}
}

func (r *Runner) syncKnockout(ctx context.Context, fm feed.Match, dryRun bool) outcome {
	// The feed leaves participants null until the previous round decides them.
	if fm.HomeTeam.ID == 0 || fm.AwayTeam.ID == 0 {
		return outcome{}
	}

	stage := MapStageName(fm.Stage)
	matchDate := fm.UTCDate.UTC().Format("2006-01-02")

	home, err := r.resolver.ResolveTeam(ctx, fm.HomeTeam.Name, fm.HomeTeam.ShortName)
	if err != nil {
		return outcome{err: fmt.Errorf("could not find teams: %s vs %s: %v", fm.HomeTeam.Name, fm.AwayTeam.Name, err)}
	}
	away, err := r.resolver.ResolveTeam(ctx, fm.AwayTeam.Name, fm.AwayTeam.ShortName)
	if err != nil {
		return outcome{err: fmt.Errorf("could not find teams: %s vs %s: %v", fm.HomeTeam.Name, fm.AwayTeam.Name, err)}
	}

	candidates, err := r.resolver.StageMatches(ctx, stage, fm.UTCDate)
	if err != nil {
		return outcome{err: err}
	}
	if len(candidates) == 0 {
		return outcome{err: fmt.Errorf("no %s match found on %s", stage, matchDate)}
	}

	// Select the record still needing identifier substitution.
	var target *models.Match
	for i := range candidates {
		if candidates[i].HomeTeamID != home.ID || candidates[i].AwayTeamID != away.ID {
			target = &candidates[i]
			break
		}
	}
	if target == nil {
		// Teams already match; nothing to do.
		return outcome{}
	}

	currentHome, err := r.resolver.TeamByID(ctx, target.HomeTeamID)
	if err != nil {
		return outcome{err: err}
	}
	currentAway, err := r.resolver.TeamByID(ctx, target.AwayTeamID)
	if err != nil {
		return outcome{err: err}
	}

	// Only overwrite placeholder slots. A match that already has two real
	// teams is confirmed data; a name-based resolver must not clobber it on
	// a near-miss.
	if !currentHome.IsPlaceholder() && !currentAway.IsPlaceholder() {
		return outcome{}
	}

	currentTeams := currentHome.Name + " vs " + currentAway.Name
	newTeams := home.Name + " vs " + away.Name

	if dryRun {
		r.logger.Info("Would update knockout slot",
			zap.String("stage", stage),
			zap.String("current_teams", currentTeams),
			zap.String("new_teams", newTeams),
		)
		return outcome{action: &MatchAction{
			ID:           target.ID,
			Stage:        stage,
			Date:         matchDate,
			CurrentTeams: currentTeams,
			NewTeams:     newTeams,
			Action:       ActionWouldUpdate,
		}}
	}

	if err := r.writer.UpdateMatchTeams(ctx, target.ID, home.ID, away.ID); err != nil {
		return outcome{err: err}
	}

	r.logger.Info("Updated knockout slot",
		zap.String("stage", stage),
		zap.String("teams", newTeams),
	)

	return outcome{action: &MatchAction{
		ID:     target.ID,
		Stage:  stage,
		Date:   matchDate,
		Teams:  newTeams,
		Action: ActionUpdated,
	}}
}
