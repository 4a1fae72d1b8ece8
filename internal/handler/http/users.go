package http

import (
	"encoding/json"
	"net/http"

	"github.com/mini-x/user-service/internal/logger"
	"github.com/mini-x/user-service/internal/utils"
)

type usersDataRequest struct {
	UserIDs []string `json:"userIds"`
}

// usersData resolves a batch of user ids to usernames. Unresolvable ids are
// omitted rather than reported, so the response arrays may be shorter than
// the request.
func (h *Handler) usersData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req usersDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	data, err := h.services.IdentityService.GetUsersData(ctx, req.UserIDs)
	if err != nil {
		log.Err(err).Int("requested", len(req.UserIDs)).Msg("users data lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, data, http.StatusOK)
}
