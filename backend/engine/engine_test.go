package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoostSaturation(t *testing.T) {
	s := DefaultState()

	// Any boost sequence stays within [0,100].
	for i := 0; i < 30; i++ {
		s = Boost(s, StatFocus, BoostStep)
	}
	assert.Equal(t, 100, s.Focus)

	for i := 0; i < 30; i++ {
		s = Boost(s, StatFocus, -BoostStep)
	}
	assert.Equal(t, 0, s.Focus)

	s = Boost(s, StatDiscipline, 250)
	assert.Equal(t, 100, s.Discipline)
	s = Boost(s, StatDiscipline, -999)
	assert.Equal(t, 0, s.Discipline)
}

func TestComputeLevel(t *testing.T) {
	tests := []struct {
		name  string
		state ProgressState
		want  int
	}{
		{"zero state", ProgressState{}, 0},
		{"chapters only", ProgressState{DoneChapters: 6}, 2},
		{"mixed", ProgressState{DoneChapters: 10, Focus: 50, Discipline: 50}, 6},
		{"fractional floor", ProgressState{DoneChapters: 1, Focus: 10, Discipline: 0}, 0},
		{"unbounded", ProgressState{DoneChapters: 300}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeLevel(tt.state))
		})
	}
}

func TestComputeLevelIsPure(t *testing.T) {
	s := ProgressState{DoneChapters: 7, Focus: 40, Discipline: 30}
	before := s

	first := ComputeLevel(s)
	second := ComputeLevel(s)

	assert.Equal(t, first, second)
	assert.Equal(t, before, s)
}

func TestGrantXPClampsNegative(t *testing.T) {
	s := ProgressState{XP: 50}
	now := time.Now()

	granted := GrantXPAt(s, -10, now)
	zero := GrantXPAt(s, 0, now)

	assert.Equal(t, zero, granted)
	assert.Equal(t, 50, granted.XP)
}

func TestGrantXPWeekdayBucket(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	wednesday := time.Date(2026, 8, 26, 15, 0, 0, 0, time.UTC)

	s := GrantXPAt(ProgressState{}, 10, wednesday)

	assert.Equal(t, 10, s.XP)
	for i, xp := range s.WeeklyXP {
		if i == 2 {
			assert.Equal(t, 10, xp)
		} else {
			assert.Zero(t, xp, "bucket %d should be untouched", i)
		}
	}
}

func TestWeekdayMapping(t *testing.T) {
	// Monday 2026-08-24 through Sunday 2026-08-30.
	monday := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		assert.Equal(t, i, Weekday(monday.AddDate(0, 0, i)))
	}
}

func TestMarkChapterDoneHasNoUpperBound(t *testing.T) {
	s := ProgressState{TotalChapters: 1, DoneChapters: 1}
	s = MarkChapterDone(s)
	assert.Equal(t, 2, s.DoneChapters)
	assert.Equal(t, 0, ChaptersLeft(s))
}

func TestComputeBadgesEmpty(t *testing.T) {
	badges := ComputeBadges(ProgressState{})
	assert.NotNil(t, badges)
	assert.Empty(t, badges)
}

func TestComputeBadgesAllInOrder(t *testing.T) {
	badges := ComputeBadges(ProgressState{DoneChapters: 10, Focus: 50, Discipline: 50})

	names := make([]string, len(badges))
	for i, b := range badges {
		names[i] = b.Name
	}
	assert.Equal(t, []string{
		"First Chapter", "5 Chapters", "10 Chapters", "Laser Focus", "Steel Discipline",
	}, names)
}

func TestComputeBadgesMonotone(t *testing.T) {
	small := ProgressState{DoneChapters: 5, Focus: 20, Discipline: 50}
	big := ProgressState{DoneChapters: 12, Focus: 60, Discipline: 80}

	smallNames := map[string]bool{}
	for _, b := range ComputeBadges(small) {
		smallNames[b.Name] = true
	}
	bigNames := map[string]bool{}
	for _, b := range ComputeBadges(big) {
		bigNames[b.Name] = true
	}

	for name := range smallNames {
		assert.True(t, bigNames[name], "badge %q lost on a strictly larger state", name)
	}
}
