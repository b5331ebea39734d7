package college

import (
	"errors"

	"github.com/NovaUNL/Supernova-sub001/core/logger"
	"github.com/NovaUNL/Supernova-sub001/core/ordering"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for class section ordering.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the college routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/college/classes/:id/sections")
	group.Get("/", h.HandleListClassSections)
	group.Put("/", h.HandleReplaceClassSections)
	group.Post("/", h.HandleAppendClassSection)
	group.Delete("/:child", h.HandleRemoveClassSection)
}

// orderEntry is one element of a replace request. Index is a pointer so a
// missing field is distinguishable from index 0.
type orderEntry struct {
	Index *int   `json:"index"`
	ID    string `json:"id"`
}

// appendRequest is the body of an append request.
type appendRequest struct {
	Child string `json:"child"`
}

func parseEntries(c *fiber.Ctx) ([]ordering.Entry, error) {
	var body []orderEntry
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	entries := make([]ordering.Entry, len(body))
	for i, e := range body {
		if e.Index == nil {
			return nil, errors.New("entry is missing the index field")
		}
		entries[i] = ordering.Entry{Index: *e.Index, Child: e.ID}
	}
	return entries, nil
}

func respondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	var oerr *ordering.Error
	if errors.As(err, &oerr) {
		if oerr.Retryable() {
			l.Warn("Reconciliation failed", zap.Error(err))
		}
		return c.Status(statusOf(oerr.Kind)).JSON(fiber.Map{
			"error":   string(oerr.Kind),
			"message": oerr.Error(),
			"detail":  oerr,
		})
	}
	l.Error("Request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "internal",
		"message": err.Error(),
	})
}

func statusOf(kind ordering.Kind) int {
	switch kind {
	case ordering.KindNotFound:
		return fiber.StatusNotFound
	case ordering.KindEmptyReplace, ordering.KindReconciliationFailed:
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

func malformed(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   string(ordering.KindMalformedInput),
		"message": "malformed input: " + err.Error(),
	})
}

// HandleListClassSections returns the ordered sections of a class.
// @Summary List Class Sections
// @Description Returns the synopsis sections of a class, ordered by position.
// @Tags college
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {array} ordering.Relation "Ordered sections"
// @Failure 404 {object} map[string]interface{} "Class not found"
// @Router /college/classes/{id}/sections [get]
func (h *Handler) HandleListClassSections(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	rels, err := h.service.ClassSections(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(rels)
}

// HandleReplaceClassSections replaces the whole ordering of a class.
// @Summary Replace Class Sections
// @Description Replaces the class's section ordering with the submitted one. Entries may arrive in any order; indexes must be exactly 0..N-1. An empty list requires confirm=true.
// @Tags college
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param order body []college.orderEntry true "Proposed ordering"
// @Param confirm query bool false "Confirm an empty replace"
// @Success 200 {array} ordering.Relation "New ordering"
// @Failure 400 {object} map[string]interface{} "Invalid ordering"
// @Failure 404 {object} map[string]interface{} "Class or section not found"
// @Failure 409 {object} map[string]interface{} "Unconfirmed empty replace or write conflict"
// @Router /college/classes/{id}/sections [put]
func (h *Handler) HandleReplaceClassSections(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	entries, err := parseEntries(c)
	if err != nil {
		return malformed(c, err)
	}
	rels, err := h.service.ReplaceClassSections(c.Context(), c.Params("id"), entries, c.QueryBool("confirm"))
	if err != nil {
		return respondError(c, l, err)
	}
	l.Info("Replaced class sections",
		zap.String("class", c.Params("id")),
		zap.Int("count", len(rels)),
	)
	return c.JSON(rels)
}

// HandleAppendClassSection appends a section to a class's ordering.
// @Summary Append Class Section
// @Description Attaches a section at the end of the class's ordering. Appending an attached section is a no-op.
// @Tags college
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param request body college.appendRequest true "Section to append"
// @Success 200 {object} ordering.Relation "Existing relation (no-op)"
// @Success 201 {object} ordering.Relation "Created relation"
// @Failure 404 {object} map[string]interface{} "Class or section not found"
// @Router /college/classes/{id}/sections [post]
func (h *Handler) HandleAppendClassSection(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	var req appendRequest
	if err := c.BodyParser(&req); err != nil {
		return malformed(c, err)
	}
	rel, created, err := h.service.AppendClassSection(c.Context(), c.Params("id"), req.Child)
	if err != nil {
		return respondError(c, l, err)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(rel)
	}
	return c.JSON(rel)
}

// HandleRemoveClassSection detaches a section from a class's ordering.
// @Summary Remove Class Section
// @Description Detaches a section and shifts the sections after it down by one.
// @Tags college
// @Produce json
// @Param id path string true "Class ID"
// @Param child path string true "Section ID"
// @Success 204 "Removed"
// @Failure 404 {object} map[string]interface{} "Class or relation not found"
// @Router /college/classes/{id}/sections/{child} [delete]
func (h *Handler) HandleRemoveClassSection(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.RemoveClassSection(c.Context(), c.Params("id"), c.Params("child")); err != nil {
		return respondError(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
