package controllers

import (
	"log/slog"
	"net/http"

	"bizmeet/internal/delivery/http/helpers"
	"bizmeet/internal/domain"
)

type EntrepreneurController struct {
	Logger  *slog.Logger
	Service domain.EntrepreneurService
}

func NewEntrepreneurController(logger *slog.Logger, svc domain.EntrepreneurService) *EntrepreneurController {
	return &EntrepreneurController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Register an entrepreneur
// @Description Registers an entrepreneur company. is_active defaults to true when omitted.
// @Tags entrepreneurs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entrepreneur body domain.EntrepreneurInput true "Entrepreneur form"
// @Success 201 {object} helpers.APIResponse "data contains the created entrepreneur"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed with error.fields"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /entrepreneurs [post]
func (c *EntrepreneurController) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.EntrepreneurInput
	if !helpers.DecodeJSON(w, r, &input) {
		return
	}
	entrepreneur, err := c.Service.Create(r.Context(), input)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, entrepreneur)
}

// List godoc
// @Summary List entrepreneurs
// @Description Returns entrepreneurs ordered by company name, paginated.
// @Tags entrepreneurs
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 25, max 100)"
// @Success 200 {object} helpers.APIResponse "data contains items and pagination meta"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /entrepreneurs [get]
func (c *EntrepreneurController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	entrepreneurs, total, err := c.Service.List(r.Context(), params)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, listResponse{
		Items: entrepreneurs,
		Meta:  helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// ListActive godoc
// @Summary List active entrepreneurs
// @Description Returns all active entrepreneurs ordered by company name, unpaginated. Used to populate event assignment pickers.
// @Tags entrepreneurs
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the active entrepreneurs"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /entrepreneurs/active [get]
func (c *EntrepreneurController) ListActive(w http.ResponseWriter, r *http.Request) {
	entrepreneurs, err := c.Service.ListActive(r.Context())
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entrepreneurs)
}

// GetByID godoc
// @Summary Get an entrepreneur
// @Tags entrepreneurs
// @Produce json
// @Param entrepreneurID path string true "Entrepreneur ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the entrepreneur"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /entrepreneurs/{entrepreneurID} [get]
func (c *EntrepreneurController) GetByID(w http.ResponseWriter, r *http.Request) {
	entrepreneur, err := c.Service.GetByID(r.Context(), r.PathValue("entrepreneurID"))
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entrepreneur)
}

// Update godoc
// @Summary Update an entrepreneur
// @Description Replaces the entrepreneur's form fields. The full form is validated, same rules as create.
// @Tags entrepreneurs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entrepreneurID path string true "Entrepreneur ID (UUID)"
// @Param entrepreneur body domain.EntrepreneurInput true "Entrepreneur form"
// @Success 200 {object} helpers.APIResponse "data contains the updated entrepreneur"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed with error.fields"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /entrepreneurs/{entrepreneurID} [patch]
func (c *EntrepreneurController) Update(w http.ResponseWriter, r *http.Request) {
	var input domain.EntrepreneurInput
	if !helpers.DecodeJSON(w, r, &input) {
		return
	}
	entrepreneur, err := c.Service.Update(r.Context(), r.PathValue("entrepreneurID"), input)
	if err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, entrepreneur)
}

// Delete godoc
// @Summary Delete an entrepreneur
// @Tags entrepreneurs
// @Produce json
// @Security BearerAuth
// @Param entrepreneurID path string true "Entrepreneur ID (UUID)"
// @Success 204 "no content"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /entrepreneurs/{entrepreneurID} [delete]
func (c *EntrepreneurController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Delete(r.Context(), r.PathValue("entrepreneurID")); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
