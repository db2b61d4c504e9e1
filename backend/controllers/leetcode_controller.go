package controllers

import (
	"errors"
	"log"

	"khelkhatm/backend/activity"
	"khelkhatm/backend/config"

	"github.com/gofiber/fiber/v2"
)

const defaultHistoryDays = 7

// LeetCodeController proxies the coding-activity backend.
type LeetCodeController struct {
	Client *activity.Client
	Cfg    *config.Config
	Logger *log.Logger
}

func NewLeetCodeController(client *activity.Client, cfg *config.Config, logger *log.Logger) *LeetCodeController {
	return &LeetCodeController{Client: client, Cfg: cfg, Logger: logger}
}

func (lc *LeetCodeController) fail(c *fiber.Ctx, err error) error {
	if lc.Logger != nil {
		lc.Logger.Printf("leetcode proxy %s %s: %v", c.Method(), c.Path(), err)
	}

	var backendErr *activity.Error
	switch {
	case errors.As(err, &backendErr):
		return c.Status(backendErr.Status).JSON(fiber.Map{
			"error":  backendErr.Message,
			"status": backendErr.Status,
		})
	case errors.Is(err, activity.ErrNotConfigured):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "LeetCode backend not configured",
			"message": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Internal server error",
			"message": err.Error(),
		})
	}
}

func (lc *LeetCodeController) GetLive(c *fiber.Ctx) error {
	live, err := lc.Client.Live(c.UserContext())
	if err != nil {
		return lc.fail(c, err)
	}
	return c.JSON(live)
}

func (lc *LeetCodeController) PushLive(c *fiber.Ctx) error {
	if err := lc.Client.Push(c.UserContext(), c.Body()); err != nil {
		return lc.fail(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (lc *LeetCodeController) GetStats(c *fiber.Ctx) error {
	stats, err := lc.Client.Stats(c.UserContext())
	if err != nil {
		return lc.fail(c, err)
	}
	return c.JSON(stats)
}

// GetHistory godoc
// @Summary Per-day activity totals
// @Tags leetcode
// @Produce json
// @Param days query int false "Days back from today (default 7)"
// @Success 200 {object} activity.History
// @Router /leetcode/history [get]
func (lc *LeetCodeController) GetHistory(c *fiber.Ctx) error {
	days := c.QueryInt("days", defaultHistoryDays)
	if days <= 0 {
		days = defaultHistoryDays
	}

	history, err := lc.Client.History(c.UserContext(), days, lc.Cfg.Now())
	if err != nil {
		return lc.fail(c, err)
	}
	return c.JSON(history)
}
