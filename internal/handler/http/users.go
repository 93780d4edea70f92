package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/internal/store"
	"github.com/atereshkin/staffdir/internal/utils"
	"github.com/atereshkin/staffdir/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.DirectoryService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during user listing")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []models.UserListItem{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUserDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid user id")
		utils.WriteJSONError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	detail, err := h.services.DirectoryService.GetUserDetail(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Int64("user_id", userID).Msg("user not found")
			utils.WriteJSONError(w, "user not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user detail lookup")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	if detail.SalaryHistory == nil {
		detail.SalaryHistory = []models.Salary{}
	}

	utils.WriteJSON(w, detail, http.StatusOK)
}
