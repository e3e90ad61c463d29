package matches

import (
	"errors"

	"match-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for matches.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the matches routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/matches")
	group.Get("/", h.HandleListMatches)
	group.Get("/:id", h.HandleGetMatch)
}

// HandleListMatches returns all matches with their teams.
// @Summary List matches
// @Description Lists matches ordered by kickoff, optionally filtered by stage.
// @Tags matches
// @Produce json
// @Param stage query string false "Stage label (e.g. 'Quarter-finals')"
// @Success 200 {array} models.Match "Matches"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /matches [get]
func (h *Handler) HandleListMatches(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.List(c.Context(), c.Query("stage"))
	if err != nil {
		l.Error("Match listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(result)
}

// HandleGetMatch returns a single match with its teams.
// @Summary Get match
// @Description Gets one match by id.
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} models.Match "Match"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /matches/{id} [get]
func (h *Handler) HandleGetMatch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	match, err := h.service.Get(c.Context(), c.Params("id"))
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "match not found",
		})
	}
	if err != nil {
		l.Error("Match lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(match)
}
