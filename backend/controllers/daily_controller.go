package controllers

import (
	"time"

	"khelkhatm/backend/config"
	"khelkhatm/backend/repository"
	"khelkhatm/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const dailyLogLimit = 30

type DailyController struct {
	Repo *repository.Repository
	Cfg  *config.Config
}

func NewDailyController(repo *repository.Repository, cfg *config.Config) *DailyController {
	return &DailyController{Repo: repo, Cfg: cfg}
}

type dailyLogRequest struct {
	Date     string  `json:"date"`
	Exercise bool    `json:"exercise"`
	Coding   bool    `json:"coding"`
	Notes    *string `json:"notes"`
}

// parseLogDate accepts a plain calendar date or a full timestamp. A missing
// date means today.
func parseLogDate(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return now, nil
	}
	if d, err := time.Parse(time.DateOnly, raw); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(now.Location()), nil
}

// GetLogs godoc
// @Summary Recent daily habit logs
// @Description Returns the last 30 logs, newest first
// @Tags daily
// @Produce json
// @Success 200 {array} models.DailyLog
// @Router /daily [get]
func (dc *DailyController) GetLogs(c *fiber.Ctx) error {
	logs, err := dc.Repo.ListDailyLogs(c.UserContext(), dailyLogLimit)
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(logs)
}

func (dc *DailyController) UpsertLog(c *fiber.Ctx) error {
	var req dailyLogRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	date, err := parseLogDate(req.Date, dc.Cfg.Now())
	if err != nil {
		return utils.ValidationError(c, map[string]string{
			"date": "expected YYYY-MM-DD or an RFC 3339 timestamp",
		})
	}

	log, err := dc.Repo.UpsertDailyLog(c.UserContext(), repository.DailyLogInput{
		Date:     date,
		Exercise: req.Exercise,
		Coding:   req.Coding,
		Notes:    req.Notes,
	})
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(log)
}
