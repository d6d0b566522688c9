package engine

import "time"

const (
	// BoostStep is the fixed increment applied by a focus/discipline boost.
	BoostStep = 5

	// ChatRewardXP is granted once per successful chat reply.
	ChatRewardXP = 10

	// DefaultClassName is used when no class has been stored yet.
	DefaultClassName = "Class 12 (PCM + English)"
)

// Stat identifies a boostable attribute.
type Stat string

const (
	StatFocus      Stat = "focus"
	StatDiscipline Stat = "discipline"
)

// ProgressState is the full study state for the single dashboard user.
// Mutations take a state by value and return the updated copy, so the
// derivations stay testable without any storage behind them.
type ProgressState struct {
	Name          string `json:"name"`
	ClassName     string `json:"className"`
	TotalChapters int    `json:"totalChapters"`
	DoneChapters  int    `json:"doneChapters"`
	Focus         int    `json:"focus"`
	Discipline    int    `json:"discipline"`
	XP            int    `json:"xp"`
	// WeeklyXP buckets XP grants by ISO weekday, Monday=0 .. Sunday=6.
	WeeklyXP [7]int `json:"weeklyXP"`
}

// DefaultState is the state of a fresh dashboard before anything is stored.
func DefaultState() ProgressState {
	return ProgressState{
		ClassName: DefaultClassName,
	}
}

// GrantXP adds amount to the XP total and to the current weekday bucket.
// Negative amounts are clamped to zero, so a bad caller can never drain XP.
func GrantXP(s ProgressState, amount int) ProgressState {
	return GrantXPAt(s, amount, time.Now())
}

// GrantXPAt is GrantXP with an explicit clock, used by recorded grants and tests.
func GrantXPAt(s ProgressState, amount int, at time.Time) ProgressState {
	if amount < 0 {
		amount = 0
	}
	s.XP += amount
	s.WeeklyXP[Weekday(at)] += amount
	return s
}

// Weekday maps a time to the weekly bucket index, Monday=0.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// MarkChapterDone increments the finished chapter count. There is no upper
// bound against TotalChapters: the user may finish chapters the plan never
// listed.
func MarkChapterDone(s ProgressState) ProgressState {
	s.DoneChapters++
	return s
}

// Boost adds step to the given stat, saturating into [0,100].
func Boost(s ProgressState, stat Stat, step int) ProgressState {
	switch stat {
	case StatFocus:
		s.Focus = clampPercent(s.Focus + step)
	case StatDiscipline:
		s.Discipline = clampPercent(s.Discipline + step)
	}
	return s
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
