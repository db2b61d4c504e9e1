package controllers

import (
	"khelkhatm/backend/config"
	"khelkhatm/backend/repository"
	"khelkhatm/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type StatsController struct {
	Repo *repository.Repository
	Cfg  *config.Config
}

func NewStatsController(repo *repository.Repository, cfg *config.Config) *StatsController {
	return &StatsController{Repo: repo, Cfg: cfg}
}

// GetSummary godoc
// @Summary Progress counters
// @Tags stats
// @Produce json
// @Success 200 {object} models.Summary
// @Router /stats [get]
func (sc *StatsController) GetSummary(c *fiber.Ctx) error {
	summary, err := sc.Repo.Summary(c.UserContext())
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(summary)
}
