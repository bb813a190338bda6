package controllers

import (
	"log/slog"
	"net/http"

	"bizmeet/internal/delivery/http/helpers"
	"bizmeet/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Create a networking event
// @Description Creates an event. event_date is a calendar date (YYYY-MM-DD) and must be today or in the future.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body domain.EventInput true "Event form"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed with error.fields"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /events [post]
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.EventInput
	if !helpers.DecodeJSON(w, r, &input) {
		return
	}
	event, err := c.Service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// List godoc
// @Summary List events
// @Description Returns events ordered by event date, newest first, paginated.
// @Tags events
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 25, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Router /events [get]
func (c *EventController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	events, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, listResponse{
		Items: events,
		Meta:  helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// GetByID godoc
// @Summary Get an event
// @Description Returns the event with its assigned entrepreneurs attached.
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetByID(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetByID(r.Context(), r.PathValue("eventID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Update godoc
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param event body domain.EventInput true "Event form"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed with error.fields"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [patch]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.EventInput
	if !helpers.DecodeJSON(w, r, &input) {
		return
	}
	event, err := c.Service.Update(r.Context(), r.PathValue("eventID"), input)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// Delete godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [delete]
func (c *EventController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("eventID")); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AssignEntrepreneur godoc
// @Summary Assign an entrepreneur to an event
// @Description Links an entrepreneur to an event so participants can book meetings. Each pair may be linked at most once.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param entrepreneurID path string true "Entrepreneur ID (UUID)"
// @Success 201 {object} helpers.APIResponse "data contains the assignment"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (already assigned)"
// @Router /events/{eventID}/entrepreneurs/{entrepreneurID} [post]
func (c *EventController) AssignEntrepreneur(w http.ResponseWriter, r *http.Request) {
	input := domain.EventEntrepreneurInput{
		EventID:        r.PathValue("eventID"),
		EntrepreneurID: r.PathValue("entrepreneurID"),
	}
	link, err := c.Service.AssignEntrepreneur(r.Context(), input)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, link)
}

// RemoveEntrepreneur godoc
// @Summary Remove an entrepreneur from an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID (UUID)"
// @Param entrepreneurID path string true "Entrepreneur ID (UUID)"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/entrepreneurs/{entrepreneurID} [delete]
func (c *EventController) RemoveEntrepreneur(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.RemoveEntrepreneur(r.Context(), r.PathValue("eventID"), r.PathValue("entrepreneurID")); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
