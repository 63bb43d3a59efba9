package handler

import (
	"net/http"
	"portfolio/internal/http/handler/middleware"
	"portfolio/internal/http/payload"
	"portfolio/internal/http/view"
	"strconv"
)

func (h *PortfolioHandler) HandleGetSkills(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.portfolio.Skills, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *PortfolioHandler) HandleGetProjects(w http.ResponseWriter, r *http.Request) {
	h.respond(w, h.portfolio.Projects, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

// HandleToggleTheme only acknowledges; the theme lives in the browser.
func (h *PortfolioHandler) HandleToggleTheme(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{Status: statusSuccess}, http.StatusOK, middleware.RequestIDFromContext(r.Context()))
}

func (h *PortfolioHandler) HandleSubmitContact(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	var contact payload.ContactRequest
	if err := h.decoder.DecodeJSONPayload(r, &contact); err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: "Invalid contact message: " + err.Error(),
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", SubmitContact,
			"request_id", requestId)
		return
	}

	id, err := h.service.SubmitMessage(r.Context(), contact.ToContactMessage())
	if err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: storeErrorMessage(err, msgMessageNotSaved),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to submit message",
			"error", err,
			"handler", SubmitContact,
			"request_id", requestId)
		return
	}

	h.logs.Infow("contact message received",
		"message_id", id,
		"handler", SubmitContact,
		"request_id", requestId)

	h.respond(w, Response{Status: statusSuccess, Message: msgMessageSent}, http.StatusOK, requestId)
}

func (h *PortfolioHandler) HandleGetMessages(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	messages, err := h.service.ListMessages(r.Context())
	if err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: storeErrorMessage(err, msgMessagesNotRead),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to list messages",
			"error", err,
			"handler", GetMessages,
			"request_id", requestId)
		return
	}

	resp := make([]messageView, 0, len(messages))
	for _, m := range messages {
		resp = append(resp, messageView{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			Timestamp: m.Timestamp.Format(view.TimestampLayout),
		})
	}

	h.respond(w, resp, http.StatusOK, requestId)
}

func (h *PortfolioHandler) HandleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFromContext(r.Context())

	id, err := strconv.ParseUint(r.PathValue("id"), 10, 0)
	if err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: "Invalid message id",
		}, http.StatusBadRequest, requestId)
		h.logs.Errorw("invalid message id",
			"error", err,
			"handler", DeleteMessage,
			"request_id", requestId)
		return
	}

	removed, err := h.service.DeleteMessage(r.Context(), uint(id))
	if err != nil {
		h.respond(w, Response{
			Status:  statusError,
			Message: storeErrorMessage(err, msgMessageNotGone),
		}, http.StatusInternalServerError, requestId)
		h.logs.Errorw("failed to delete message",
			"error", err,
			"message_id", id,
			"handler", DeleteMessage,
			"request_id", requestId)
		return
	}

	h.logs.Infow("message deleted",
		"message_id", id,
		"removed", removed,
		"handler", DeleteMessage,
		"request_id", requestId)

	h.respond(w, Response{Status: statusSuccess, Message: msgMessageDeleted}, http.StatusOK, requestId)
}
