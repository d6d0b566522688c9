package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"studydash/backend/config"
	"studydash/backend/engine"
	"studydash/backend/models"
	"studydash/backend/store"
	"studydash/backend/utils"
)

type ProgressController struct {
	DB    *gorm.DB
	Cfg   *config.Config
	Store *store.ProgressStore
}

func NewProgressController(db *gorm.DB, cfg *config.Config) *ProgressController {
	return &ProgressController{DB: db, Cfg: cfg, Store: store.NewProgressStore(db)}
}

// GetProgress godoc
// @Summary Get dashboard state
// @Description Returns the study state with derived level, chapters left and badges
// @Tags progress
// @Produce json
// @Success 200 {object} models.ProgressView
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	state, err := pc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(models.NewProgressView(state))
}

// UpdateProfile godoc
// @Summary Edit profile fields
// @Description Partial update of name, class and chapter counts
// @Tags progress
// @Accept json
// @Produce json
// @Param request body models.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} models.ProgressView
// @Router /progress [put]
func (pc *ProgressController) UpdateProfile(c *fiber.Ctx) error {
	var req models.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	return pc.mutate(c, func(s engine.ProgressState) engine.ProgressState {
		if req.Name != nil {
			s.Name = *req.Name
		}
		if req.ClassName != nil {
			s.ClassName = *req.ClassName
		}
		if req.TotalChapters != nil {
			s.TotalChapters = floorZero(*req.TotalChapters)
		}
		if req.DoneChapters != nil {
			s.DoneChapters = floorZero(*req.DoneChapters)
		}
		return s
	})
}

// ChapterDone godoc
// @Summary Mark a chapter as finished
// @Tags progress
// @Produce json
// @Success 200 {object} models.ProgressView
// @Router /progress/chapter [post]
func (pc *ProgressController) ChapterDone(c *fiber.Ctx) error {
	return pc.mutate(c, engine.MarkChapterDone)
}

// Boost godoc
// @Summary Boost focus or discipline by the fixed step
// @Tags progress
// @Accept json
// @Produce json
// @Param request body models.BoostRequest true "Stat to boost"
// @Success 200 {object} models.ProgressView
// @Failure 400 {object} map[string]interface{}
// @Router /progress/boost [post]
func (pc *ProgressController) Boost(c *fiber.Ctx) error {
	var req models.BoostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	stat := engine.Stat(req.Field)
	if stat != engine.StatFocus && stat != engine.StatDiscipline {
		return utils.BadRequest(c, "Unknown field: "+req.Field)
	}

	return pc.mutate(c, func(s engine.ProgressState) engine.ProgressState {
		return engine.Boost(s, stat, engine.BoostStep)
	})
}

// GrantXP godoc
// @Summary Grant XP into today's weekly bucket
// @Description Negative amounts are clamped to zero
// @Tags progress
// @Accept json
// @Produce json
// @Param request body models.GrantXPRequest true "XP amount"
// @Success 200 {object} models.ProgressView
// @Router /progress/xp [post]
func (pc *ProgressController) GrantXP(c *fiber.Ctx) error {
	var req models.GrantXPRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	return pc.mutate(c, func(s engine.ProgressState) engine.ProgressState {
		return engine.GrantXP(s, req.Amount)
	})
}

// mutate runs one load-mutate-save cycle and responds with the derived view.
func (pc *ProgressController) mutate(c *fiber.Ctx, fn func(engine.ProgressState) engine.ProgressState) error {
	state, err := pc.Store.Load()
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}

	state = fn(state)

	if err := pc.Store.Save(state); err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(models.NewProgressView(state))
}

func floorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
