package synopses

import (
	"errors"

	"github.com/NovaUNL/Supernova-sub001/core/logger"
	"github.com/NovaUNL/Supernova-sub001/core/ordering"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for synopses ordering and documents.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the synopses routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/synopses")

	topics := group.Group("/topics/:id/sections")
	topics.Get("/", h.HandleListTopicSections)
	topics.Put("/", h.HandleReplaceTopicSections)
	topics.Post("/", h.HandleAppendTopicSection)
	topics.Delete("/:child", h.HandleRemoveTopicSection)

	sections := group.Group("/sections/:id/children")
	sections.Get("/", h.HandleListSectionChildren)
	sections.Put("/", h.HandleReplaceSectionChildren)
	sections.Post("/", h.HandleAppendSectionChild)
	sections.Delete("/:child", h.HandleRemoveSectionChild)

	group.Get("/sections/:id/document", h.HandleGetDocument)
	group.Put("/sections/:id/document", h.HandlePutDocument)
	group.Delete("/sections/:id/document", h.HandleDeleteDocument)
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

// respondError maps an error onto a status code and a machine-readable
// body. Ordering errors keep their kind and detail so the client can
// repair the submitted ordering.
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

// HandleListTopicSections returns the ordered sections of a topic.
// @Summary List Topic Sections
// @Description Returns the sections of a topic, ordered by position.
// @Tags synopses
// @Produce json
// @Param id path string true "Topic ID"
// @Success 200 {array} ordering.Relation "Ordered sections"
// @Failure 404 {object} map[string]string "Topic not found"
// @Router /synopses/topics/{id}/sections [get]
func (h *Handler) HandleListTopicSections(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	rels, err := h.service.TopicSections(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(rels)
}

// HandleReplaceTopicSections replaces the whole ordering of a topic.
// @Summary Replace Topic Sections
// @Description Replaces the topic's section ordering with the submitted one. Entries may arrive in any order; indexes must be exactly 0..N-1. An empty list requires confirm=true.
// @Tags synopses
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param order body []synopses.orderEntry true "Proposed ordering"
// @Param confirm query bool false "Confirm an empty replace"
// @Success 200 {array} ordering.Relation "New ordering"
// @Failure 400 {object} map[string]interface{} "Invalid ordering"
// @Failure 404 {object} map[string]interface{} "Topic or section not found"
// @Failure 409 {object} map[string]interface{} "Unconfirmed empty replace or write conflict"
// @Router /synopses/topics/{id}/sections [put]
func (h *Handler) HandleReplaceTopicSections(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	entries, err := parseEntries(c)
	if err != nil {
		return malformed(c, err)
	}
	rels, err := h.service.ReplaceTopicSections(c.Context(), c.Params("id"), entries, c.QueryBool("confirm"))
	if err != nil {
		return respondError(c, l, err)
	}
	l.Info("Replaced topic sections",
		zap.String("topic", c.Params("id")),
		zap.Int("count", len(rels)),
	)
	return c.JSON(rels)
}

// HandleAppendTopicSection appends a section to a topic's ordering.
// @Summary Append Topic Section
// @Description Attaches a section at the end of the topic's ordering. Appending an attached section is a no-op.
// @Tags synopses
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param request body synopses.appendRequest true "Section to append"
// @Success 200 {object} ordering.Relation "Existing relation (no-op)"
// @Success 201 {object} ordering.Relation "Created relation"
// @Failure 404 {object} map[string]interface{} "Topic or section not found"
// @Router /synopses/topics/{id}/sections [post]
func (h *Handler) HandleAppendTopicSection(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	var req appendRequest
	if err := c.BodyParser(&req); err != nil {
		return malformed(c, err)
	}
	rel, created, err := h.service.AppendTopicSection(c.Context(), c.Params("id"), req.Child)
	if err != nil {
		return respondError(c, l, err)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(rel)
	}
	return c.JSON(rel)
}

// HandleRemoveTopicSection detaches a section from a topic's ordering.
// @Summary Remove Topic Section
// @Description Detaches a section and shifts the sections after it down by one.
// @Tags synopses
// @Produce json
// @Param id path string true "Topic ID"
// @Param child path string true "Section ID"
// @Success 204 "Removed"
// @Failure 404 {object} map[string]interface{} "Topic or relation not found"
// @Router /synopses/topics/{id}/sections/{child} [delete]
func (h *Handler) HandleRemoveTopicSection(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.RemoveTopicSection(c.Context(), c.Params("id"), c.Params("child")); err != nil {
		return respondError(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleListSectionChildren returns the ordered subsections of a section.
// @Summary List Section Children
// @Description Returns the subsections of a section, ordered by position.
// @Tags synopses
// @Produce json
// @Param id path string true "Section ID"
// @Success 200 {array} ordering.Relation "Ordered subsections"
// @Failure 404 {object} map[string]interface{} "Section not found"
// @Router /synopses/sections/{id}/children [get]
func (h *Handler) HandleListSectionChildren(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	rels, err := h.service.SectionChildren(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(rels)
}

// HandleReplaceSectionChildren replaces the whole subsection ordering.
// @Summary Replace Section Children
// @Description Replaces the section's subsection ordering with the submitted one. A section can never contain itself.
// @Tags synopses
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param order body []synopses.orderEntry true "Proposed ordering"
// @Param confirm query bool false "Confirm an empty replace"
// @Success 200 {array} ordering.Relation "New ordering"
// @Failure 400 {object} map[string]interface{} "Invalid ordering"
// @Failure 404 {object} map[string]interface{} "Section not found"
// @Failure 409 {object} map[string]interface{} "Unconfirmed empty replace or write conflict"
// @Router /synopses/sections/{id}/children [put]
func (h *Handler) HandleReplaceSectionChildren(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	entries, err := parseEntries(c)
	if err != nil {
		return malformed(c, err)
	}
	rels, err := h.service.ReplaceSectionChildren(c.Context(), c.Params("id"), entries, c.QueryBool("confirm"))
	if err != nil {
		return respondError(c, l, err)
	}
	return c.JSON(rels)
}

// HandleAppendSectionChild appends a subsection to a section's ordering.
// @Summary Append Section Child
// @Description Attaches a subsection at the end of the section's ordering.
// @Tags synopses
// @Accept json
// @Produce json
// @Param id path string true "Section ID"
// @Param request body synopses.appendRequest true "Subsection to append"
// @Success 200 {object} ordering.Relation "Existing relation (no-op)"
// @Success 201 {object} ordering.Relation "Created relation"
// @Failure 404 {object} map[string]interface{} "Section not found"
// @Router /synopses/sections/{id}/children [post]
func (h *Handler) HandleAppendSectionChild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	var req appendRequest
	if err := c.BodyParser(&req); err != nil {
		return malformed(c, err)
	}
	rel, created, err := h.service.AppendSectionChild(c.Context(), c.Params("id"), req.Child)
	if err != nil {
		return respondError(c, l, err)
	}
	if created {
		return c.Status(fiber.StatusCreated).JSON(rel)
	}
	return c.JSON(rel)
}

// HandleRemoveSectionChild detaches a subsection from a section's ordering.
// @Summary Remove Section Child
// @Description Detaches a subsection and shifts the subsections after it down by one.
// @Tags synopses
// @Produce json
// @Param id path string true "Section ID"
// @Param child path string true "Subsection ID"
// @Success 204 "Removed"
// @Failure 404 {object} map[string]interface{} "Section or relation not found"
// @Router /synopses/sections/{id}/children/{child} [delete]
func (h *Handler) HandleRemoveSectionChild(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.RemoveSectionChild(c.Context(), c.Params("id"), c.Params("child")); err != nil {
		return respondError(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetDocument returns a section's markdown document.
// @Summary Get Section Document
// @Description Returns the markdown document stored for a section.
// @Tags synopses
// @Produce plain
// @Param id path string true "Section ID"
// @Success 200 {string} string "Markdown document"
// @Failure 404 {object} map[string]interface{} "Section not found"
// @Router /synopses/sections/{id}/document [get]
func (h *Handler) HandleGetDocument(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	data, err := h.service.GetDocument(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, l, err)
	}
	c.Set(fiber.HeaderContentType, documentContentType)
	return c.Send(data)
}

// HandlePutDocument stores a section's markdown document.
// @Summary Put Section Document
// @Description Stores the request body as the section's markdown document.
// @Tags synopses
// @Accept plain
// @Param id path string true "Section ID"
// @Success 204 "Stored"
// @Failure 404 {object} map[string]interface{} "Section not found"
// @Router /synopses/sections/{id}/document [put]
func (h *Handler) HandlePutDocument(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.PutDocument(c.Context(), c.Params("id"), c.Body()); err != nil {
		return respondError(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleDeleteDocument removes a section's markdown document.
// @Summary Delete Section Document
// @Description Removes the markdown document stored for a section.
// @Tags synopses
// @Param id path string true "Section ID"
// @Success 204 "Deleted"
// @Failure 404 {object} map[string]interface{} "Section not found"
// @Router /synopses/sections/{id}/document [delete]
func (h *Handler) HandleDeleteDocument(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	if err := h.service.DeleteDocument(c.Context(), c.Params("id")); err != nil {
		return respondError(c, l, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
