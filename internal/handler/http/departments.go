package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/internal/service"
	"github.com/atereshkin/staffdir/internal/store"
	"github.com/atereshkin/staffdir/internal/utils"
	"github.com/atereshkin/staffdir/models"
)

func (h *Handler) createDepartment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdDepartment, err := h.services.DirectoryService.CreateDepartment(ctx, request.Name, request.Location)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrDepartmentAlreadyExists):
			log.Err(err).Msg("department already exists")
			utils.WriteJSONError(w, "department already exists", http.StatusConflict)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during department creation")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, createdDepartment, http.StatusCreated)
}

func (h *Handler) listDepartments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	departments, err := h.services.DirectoryService.ListDepartments(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during department listing")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if departments == nil {
		departments = []models.Department{}
	}

	utils.WriteJSON(w, departments, http.StatusOK)
}
