package rayid_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"match-sync/core/middleware/rayid"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(rayid.New())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("ray_id").(string))
	})
	return app
}

func TestRayID_Generated(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	rid := resp.Header.Get(rayid.Header)
	require.NotEmpty(t, rid)
	_, err = uuid.Parse(rid)
	assert.NoError(t, err)
}

func TestRayID_CallerSuppliedIsKept(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(rayid.Header, "upstream-ray")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "upstream-ray", resp.Header.Get(rayid.Header))
}
