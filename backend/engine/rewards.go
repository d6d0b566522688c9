package engine

import "math"

// Badge is a named achievement with the accent color the dashboard renders
// it in. Badges are derived from state on every read and never stored.
type Badge struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type badgeRule struct {
	badge Badge
	met   func(ProgressState) bool
}

// badgeRules is evaluated in declaration order; all matching rules are
// returned, not just the best one.
var badgeRules = []badgeRule{
	{Badge{"First Chapter", "#35ff9b"}, func(s ProgressState) bool { return s.DoneChapters >= 1 }},
	{Badge{"5 Chapters", "#67ffd7"}, func(s ProgressState) bool { return s.DoneChapters >= 5 }},
	{Badge{"10 Chapters", "#ffd54d"}, func(s ProgressState) bool { return s.DoneChapters >= 10 }},
	{Badge{"Laser Focus", "#7df2ff"}, func(s ProgressState) bool { return s.Focus >= 50 }},
	{Badge{"Steel Discipline", "#ffb84d"}, func(s ProgressState) bool { return s.Discipline >= 50 }},
}

// ComputeLevel derives the overall level from chapters, focus and discipline:
// floor((done + focus/10 + discipline/10) / 3). Unbounded above; any level
// ring that wraps at 10 is a presentation concern.
func ComputeLevel(s ProgressState) int {
	score := float64(s.DoneChapters) + float64(s.Focus)/10 + float64(s.Discipline)/10
	return int(math.Floor(score / 3))
}

// ComputeBadges returns every earned badge in rule order. The slice is empty
// (not nil) when nothing has been earned so callers can render a placeholder.
func ComputeBadges(s ProgressState) []Badge {
	earned := []Badge{}
	for _, r := range badgeRules {
		if r.met(s) {
			earned = append(earned, r.badge)
		}
	}
	return earned
}

// ChaptersLeft is the remaining chapter count, floored at zero since
// DoneChapters is allowed to overshoot the plan.
func ChaptersLeft(s ProgressState) int {
	left := s.TotalChapters - s.DoneChapters
	if left < 0 {
		return 0
	}
	return left
}
