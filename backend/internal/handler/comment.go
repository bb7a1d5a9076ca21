package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/itchan-dev/forum/shared/api"
	"github.com/itchan-dev/forum/shared/domain"
	mw "github.com/itchan-dev/forum/shared/middleware"
	"github.com/itchan-dev/forum/shared/utils"
)

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errMissingUser)
		return
	}

	var body api.AddCommentRequest
	if err := utils.DecodeValidate(r.Body, &body, domain.CommentPayloadMissing, domain.CommentPayloadType); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	added, err := h.comment.Add(r.Context(), chi.URLParam(r, "threadId"), user.Id, body.Content)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(api.AddedCommentResponse{AddedComment: added}))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteErrorAndStatusCode(w, errMissingUser)
		return
	}

	err := h.comment.Delete(r.Context(), chi.URLParam(r, "threadId"), chi.URLParam(r, "commentId"), user.Id)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Envelope{Status: api.StatusSuccess})
}
