package controllers

import (
	"log/slog"
	"net/http"

	"bizmeet/internal/delivery/http/helpers"
	"bizmeet/internal/domain"
)

type ParticipantController struct {
	Logger  *slog.Logger
	Service domain.ParticipantService
}

func NewParticipantController(logger *slog.Logger, svc domain.ParticipantService) *ParticipantController {
	return &ParticipantController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Register a participant
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param participant body domain.ParticipantInput true "Participant form"
// @Success 201 {object} helpers.APIResponse "data contains the created participant"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed with error.fields"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /participants [post]
func (c *ParticipantController) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.ParticipantInput
	if !helpers.DecodeJSON(w, r, &input) {
		return
	}
	participant, err := c.Service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, participant)
}

// List godoc
// @Summary List participants
// @Description Returns participants ordered by name, paginated.
// @Tags participants
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 25, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Router /participants [get]
func (c *ParticipantController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	participants, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, listResponse{
		Items: participants,
		Meta:  helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// GetByID godoc
// @Summary Get a participant
// @Tags participants
// @Produce json
// @Param participantID path string true "Participant ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the participant"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /participants/{participantID} [get]
func (c *ParticipantController) GetByID(w http.ResponseWriter, r *http.Request) {
	participant, err := c.Service.GetByID(r.Context(), r.PathValue("participantID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participant)
}

// Update godoc
// @Summary Update a participant
// @Tags participants
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param participantID path string true "Participant ID (UUID)"
// @Param participant body domain.ParticipantInput true "Participant form"
// @Success 200 {object} helpers.APIResponse "data contains the updated participant"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed with error.fields"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /participants/{participantID} [patch]
func (c *ParticipantController) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.ParticipantInput
	if !helpers.DecodeJSON(w, r, &input) {
		return
	}
	participant, err := c.Service.Update(r.Context(), r.PathValue("participantID"), input)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, participant)
}

// Delete godoc
// @Summary Delete a participant
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param participantID path string true "Participant ID (UUID)"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /participants/{participantID} [delete]
func (c *ParticipantController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("participantID")); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
