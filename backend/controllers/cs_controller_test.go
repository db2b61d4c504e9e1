package controllers_test

import (
	"testing"

	"khelkhatm/backend/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcepts(t *testing.T) {
	env := newTestEnv(t, "")
	env.seed(t)

	resp := request(t, env.app, "GET", "/api/cs", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var concepts []models.Concept
	decode(t, resp, &concepts)
	require.Len(t, concepts, 2)
	assert.Equal(t, "DBMS", concepts[0].Subject)

	threads := concepts[1]
	resp = request(t, env.app, "PUT", "/api/cs", map[string]string{"id": threads.ID.String(), "status": "DONE"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated models.Concept
	decode(t, resp, &updated)
	assert.Equal(t, models.StatusDone, updated.Status)

	resp = request(t, env.app, "PUT", "/api/cs", map[string]string{"id": threads.ID.String(), "status": "REVISIT"})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
