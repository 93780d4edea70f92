package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/internal/store"
	"github.com/atereshkin/staffdir/internal/utils"
	"github.com/atereshkin/staffdir/models"
)

func (h *Handler) createSalary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CreateSalaryRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	_, err := h.services.DirectoryService.CreateSalary(ctx, request.UserID, request.Amount)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("user_id", request.UserID).Msg("user not found")
			utils.WriteJSONError(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during salary creation")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "salary recorded"}, http.StatusCreated)
}
