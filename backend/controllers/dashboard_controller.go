package controllers

import (
	"time"

	"khelkhatm/backend/activity"
	"khelkhatm/backend/config"
	"khelkhatm/backend/dashboard"
	"khelkhatm/backend/models"
	"khelkhatm/backend/repository"
	"khelkhatm/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// Snapshotter hands out the last polled activity snapshot.
type Snapshotter interface {
	Latest() *activity.Live
}

type DashboardController struct {
	Repo     *repository.Repository
	Cfg      *config.Config
	Activity Snapshotter
	Now      func() time.Time
}

func NewDashboardController(repo *repository.Repository, cfg *config.Config, snapshots Snapshotter) *DashboardController {
	return &DashboardController{Repo: repo, Cfg: cfg, Activity: snapshots, Now: cfg.Now}
}

// GetDashboard godoc
// @Summary Derived statistics
// @Description Calendar, streak, projection, habit week and progress breakdowns
// @Tags dashboard
// @Produce json
// @Param month query int false "Month offset from the current month"
// @Param target query int false "Questions per day for the projection"
// @Success 200 {object} dashboard.View
// @Router /dashboard [get]
func (dc *DashboardController) GetDashboard(c *fiber.Ctx) error {
	state, err := dashboard.Load(c.UserContext(), dc.Repo, dc.Cfg.DailyTarget)
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	if dc.Activity != nil {
		state.ApplyActivity(dc.Activity.Latest())
	}

	state.MonthOffset = c.QueryInt("month", 0)
	state.DailyTarget = c.QueryInt("target", dc.Cfg.DailyTarget)
	state.Filter = dashboard.Filter{
		Phase:  c.Query("phase"),
		Topic:  c.Query("topic"),
		Status: models.Status(c.Query("status")),
	}

	return c.JSON(state.Derive(dc.Now()))
}
