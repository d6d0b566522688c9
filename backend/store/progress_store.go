package store

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"studydash/backend/engine"
	"studydash/backend/models"
)

// Storage keys, fixed for compatibility with the original dashboard client.
const (
	keyName     = "name"
	keyClass    = "cls"
	keyTotal    = "total"
	keyDone     = "done"
	keyFocus    = "focus"
	keyDisc     = "disc"
	keyLevel    = "level"
	keyWeeklyXP = "weeklyXP"
	keyXP       = "xp"
)

// ProgressStore persists the single ProgressState as one row per field.
type ProgressStore struct {
	DB *gorm.DB
}

func NewProgressStore(db *gorm.DB) *ProgressStore {
	return &ProgressStore{DB: db}
}

// Load reads every field, falling back to the default for anything missing
// or unparseable. A fresh database yields engine.DefaultState().
func (ps *ProgressStore) Load() (engine.ProgressState, error) {
	state := engine.DefaultState()

	var entries []models.StateEntry
	if err := ps.DB.Find(&entries).Error; err != nil {
		return state, fmt.Errorf("load progress state: %w", err)
	}

	values := make(map[string]string, len(entries))
	for _, e := range entries {
		values[e.Key] = e.Value
	}

	if v, ok := values[keyName]; ok {
		state.Name = v
	}
	if v, ok := values[keyClass]; ok {
		state.ClassName = v
	}
	state.TotalChapters = parseCount(values[keyTotal])
	state.DoneChapters = parseCount(values[keyDone])
	state.Focus = parseCount(values[keyFocus])
	state.Discipline = parseCount(values[keyDisc])
	state.XP = parseCount(values[keyXP])
	state.WeeklyXP = parseWeeklyXP(values[keyWeeklyXP])
	// The level key is written for the legacy client but never read back:
	// level is always recomputed from the state.

	return state, nil
}

// Save writes every field back. Called after each mutation; a storage
// failure is returned to the caller, never swallowed.
func (ps *ProgressStore) Save(state engine.ProgressState) error {
	weekly, err := json.Marshal(state.WeeklyXP)
	if err != nil {
		return fmt.Errorf("encode weekly xp: %w", err)
	}

	entries := []models.StateEntry{
		{Key: keyName, Value: state.Name},
		{Key: keyClass, Value: state.ClassName},
		{Key: keyTotal, Value: strconv.Itoa(state.TotalChapters)},
		{Key: keyDone, Value: strconv.Itoa(state.DoneChapters)},
		{Key: keyFocus, Value: strconv.Itoa(state.Focus)},
		{Key: keyDisc, Value: strconv.Itoa(state.Discipline)},
		{Key: keyXP, Value: strconv.Itoa(state.XP)},
		{Key: keyLevel, Value: strconv.Itoa(engine.ComputeLevel(state))},
		{Key: keyWeeklyXP, Value: string(weekly)},
	}

	err = ps.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entries).Error
	if err != nil {
		return fmt.Errorf("save progress state: %w", err)
	}
	return nil
}

func parseCount(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseWeeklyXP(v string) [7]int {
	var week [7]int
	var decoded []int
	if err := json.Unmarshal([]byte(v), &decoded); err != nil || len(decoded) != 7 {
		return week
	}
	copy(week[:], decoded)
	return week
}
