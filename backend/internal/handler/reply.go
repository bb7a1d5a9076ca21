package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errMissingUser)
		return
	}

	var body api.AddReplyRequest
	if err := utils.DecodeValidate(r.Body, &body, domain.ReplyPayloadMissing, domain.ReplyPayloadType); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.reply.Add(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id, body.Content)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedReplyResponse{AddedReply: added}))
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errMissingUser)
		return
	}

	err := h.reply.Delete(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), chi.URLParam(r, "replyId"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Envelope{Status: api.StatusSuccess})
}
