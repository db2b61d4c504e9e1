package controllers

import (
	"time"

	"khelkhatm/backend/config"
	"khelkhatm/backend/models"
	"khelkhatm/backend/repository"
	"khelkhatm/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DSAController struct {
	Repo *repository.Repository
	Cfg  *config.Config
}

func NewDSAController(repo *repository.Repository, cfg *config.Config) *DSAController {
	return &DSAController{Repo: repo, Cfg: cfg}
}

type updateQuestionRequest struct {
	ID          string        `json:"id"`
	Status      models.Status `json:"status"`
	CompletedAt *time.Time    `json:"completedAt"`
}

type revisionRequest struct {
	ID string `json:"id"`
}

// GetQuestions godoc
// @Summary List DSA questions
// @Description Questions ordered by phase, topic and title, with revisions newest first
// @Tags dsa
// @Produce json
// @Param phase query string false "Phase name"
// @Param topic query string false "Topic name"
// @Param status query string false "TODO, REVISIT or DONE"
// @Success 200 {array} models.Question
// @Router /dsa [get]
func (dc *DSAController) GetQuestions(c *fiber.Ctx) error {
	filter := repository.QuestionFilter{
		Phase:  c.Query("phase"),
		Topic:  c.Query("topic"),
		Status: models.Status(c.Query("status")),
	}
	if filter.Status != "" && !filter.Status.ValidForQuestion() {
		return utils.BadRequest(c, "Invalid status")
	}

	questions, err := dc.Repo.ListQuestions(c.UserContext(), filter)
	if err != nil {
		return utils.InternalServerError(c, err.Error())
	}
	return c.JSON(questions)
}

// UpdateStatus godoc
// @Summary Change a question's status
// @Tags dsa
// @Accept json
// @Produce json
// @Success 200 {object} models.Question
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /dsa [put]
func (dc *DSAController) UpdateStatus(c *fiber.Ctx) error {
	var req updateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return utils.BadRequest(c, "Invalid id")
	}

	question, err := dc.Repo.UpdateQuestionStatus(c.UserContext(), id, req.Status, req.CompletedAt, dc.Cfg.Now())
	if err != nil {
		return storeError(c, err, "Question not found")
	}
	return c.JSON(question)
}

// AddRevision records a revision pass with the question's current status.
func (dc *DSAController) AddRevision(c *fiber.Ctx) error {
	var req revisionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	id, err := uuid.Parse(req.ID)
	if err != nil {
		return utils.BadRequest(c, "Invalid id")
	}

	question, err := dc.Repo.AddRevision(c.UserContext(), id)
	if err != nil {
		return storeError(c, err, "Question not found")
	}
	return c.Status(fiber.StatusCreated).JSON(question)
}
