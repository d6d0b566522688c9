package models

import "studydash/backend/engine"

// StateEntry is one persisted field of the dashboard state, keyed by the
// fixed names the original client used: name, cls, total, done, focus,
// disc, level, weeklyXP. Values are stored as plain strings; weeklyXP is a
// JSON-encoded array of 7 integers.
type StateEntry struct {
	Key   string `gorm:"primaryKey;size:32"`
	Value string
}

// ProgressView is what the API returns for the dashboard: the raw state
// plus every derived field the UI renders.
type ProgressView struct {
	engine.ProgressState
	Level        int            `json:"level"`
	ChaptersLeft int            `json:"chaptersLeft"`
	Badges       []engine.Badge `json:"badges"`
}

// NewProgressView derives the render fields from a state.
func NewProgressView(s engine.ProgressState) ProgressView {
	return ProgressView{
		ProgressState: s,
		Level:         engine.ComputeLevel(s),
		ChaptersLeft:  engine.ChaptersLeft(s),
		Badges:        engine.ComputeBadges(s),
	}
}

// UpdateProfileRequest carries the manually editable fields. Pointers so a
// partial update leaves the rest untouched.
type UpdateProfileRequest struct {
	Name          *string `json:"name"`
	ClassName     *string `json:"className"`
	TotalChapters *int    `json:"totalChapters"`
	DoneChapters  *int    `json:"doneChapters"`
}

// BoostRequest selects which stat to bump by the fixed step.
type BoostRequest struct {
	Field string `json:"field"`
}

// GrantXPRequest carries an XP amount; negative values are clamped to zero.
type GrantXPRequest struct {
	Amount int `json:"amount"`
}
