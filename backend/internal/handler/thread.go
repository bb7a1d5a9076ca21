package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errMissingUser)
		return
	}

	var body api.CreateThreadRequest
	if err := utils.DecodeValidate(r.Body, &body, domain.ThreadPayloadMissing, domain.ThreadPayloadType); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.thread.Create(r.Context(), user.Id, body.Title, body.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedThreadResponse{AddedThread: added}))
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	thread, err := h.thread.GetDetail(r.Context(), threadId)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(api.ThreadResponse{Thread: thread}))
}
