package controllers

import (
	"khelkhatm/backend/config"
	"khelkhatm/backend/models"
	"khelkhatm/backend/repository"
	"khelkhatm/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CSController struct {
	Repo *repository.Repository
	Cfg  *config.Config
}

func NewCSController(repo *repository.Repository, cfg *config.Config) *CSController {
	return &CSController{Repo: repo, Cfg: cfg}
}

type updateConceptRequest struct {
	ID     string        `json:"id"`
	Status models.Status `json:"status"`
}

func (cc *CSController) GetConcepts(c *fiber.Ctx) error {
	concepts, err := cc.Repo.ListConcepts(c.UserContext())
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(concepts)
}

func (cc *CSController) UpdateStatus(c *fiber.Ctx) error {
	var req updateConceptRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return utils.BadRequest(c, "Invalid id")
	}

	concept, err := cc.Repo.UpdateConceptStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return storeError(c, err, "Concept not found")
	}
	return c.JSON(concept)
}
