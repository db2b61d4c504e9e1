package controllers

import (
	"errors"

	"khelkhatm/backend/repository"
	"khelkhatm/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// storeError maps repository failures onto HTTP answers.
func storeError(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return utils.NotFound(c, notFound)
	case errors.Is(err, repository.ErrInvalidStatus):
		return utils.BadRequest(c, "Invalid status")
	default:
		return utils.InternalServerError(c, err.Error())
	}
}
