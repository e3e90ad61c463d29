package sync

import (
	"encoding/json"

	"match-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the sync feature.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, l *zap.Logger) *Handler {
	return &Handler{service: service, logger: l}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/", h.HandleSync)
	group.Get("/snapshots", h.HandleListSnapshots)
}

// Request is the JSON body of a sync invocation. All fields are optional;
// an empty body runs a production result-sync pass for the default
// competition.
type Request struct {
	TestMode          bool   `json:"testMode"`
	Competition       string `json:"competition"`
	DryRun            bool   `json:"dryRun"`
	DaysBack          int    `json:"daysBack"`
	SyncKnockoutTeams bool   `json:"syncKnockoutTeams"`
}

// HandleSync runs one reconciliation pass.
// @Summary Run a sync pass
// @Description Reconciles match results (or knockout team slots) from the upstream feed into the contest database.
// @Tags sync
// @Accept json
// @Produce json
// @Param request body Request false "Pass options"
// @Success 200 {object} Report "Sync report"
// @Failure 500 {object} map[string]string "Fatal pass failure"
// @Router /sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var req Request
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, &req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body: " + err.Error(),
			})
		}
	}

	if req.TestMode {
		report, err := h.service.Test(c.Context(), req.Competition)
		if err != nil {
			l.Error("Test mode fetch failed", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		return c.JSON(report)
	}

	report, err := h.service.Sync(c.Context(), Options{
		Competition:       req.Competition,
		DryRun:            req.DryRun,
		DaysBack:          req.DaysBack,
		SyncKnockoutTeams: req.SyncKnockoutTeams,
	})
	if err != nil {
		l.Error("Sync pass failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

// HandleListSnapshots lists archived feed snapshots.
// @Summary List feed snapshots
// @Description Lists the archived upstream feed payloads, optionally filtered by competition.
// @Tags sync
// @Produce json
// @Param competition query string false "Competition code"
// @Success 200 {object} map[string][]string "Snapshot object names"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /sync/snapshots [get]
func (h *Handler) HandleListSnapshots(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	names, err := h.service.Snapshots(c.Context(), c.Query("competition"))
	if err != nil {
		l.Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if names == nil {
		names = []string{}
	}

	return c.JSON(fiber.Map{"snapshots": names})
}
