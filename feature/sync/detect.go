package sync

import "match-sync/feature/sync/models"

// NeedsUpdate decides whether a stored match differs meaningfully from the
// mapped feed state: the status changed, or a non-nil feed score differs
// from the stored score. Nil feed scores are ignored so they can never
// erase a stored score. Callers must skip finished matches before calling;
// finished is terminal and sync-immune.
func NeedsUpdate(m *models.Match, newStatus string, homeScore, awayScore *int) bool {
	if m.Status != newStatus {
		return true
	}
	if homeScore != nil && !scoreEqual(m.HomeScore, homeScore) {
		return true
	}
	if awayScore != nil && !scoreEqual(m.AwayScore, awayScore) {
		return true
	}
	return false
}

// BuildUpdate assembles the column set for a result update. Only non-nil
// feed scores are included, which makes partial score updates natural.
func BuildUpdate(newStatus string, homeScore, awayScore *int) map[string]any {
	update := map[string]any{"status": newStatus}
	if homeScore != nil {
		update["home_score"] = *homeScore
	}
	if awayScore != nil {
		update["away_score"] = *awayScore
	}
	return update
}

func scoreEqual(stored, incoming *int) bool {
	if stored == nil || incoming == nil {
		return stored == nil && incoming == nil
	}
	return *stored == *incoming
}
