package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/gog-commerce/internal/contact/usecase/command"
	"github.com/tair/gog-commerce/internal/contact/usecase/query"
	"github.com/tair/gog-commerce/pkg/apperror"
	"github.com/tair/gog-commerce/pkg/logger"
	"github.com/tair/gog-commerce/pkg/middleware"
	"github.com/tair/gog-commerce/pkg/response"
)

// ContactHandler handles the contact form and its admin inbox
type ContactHandler struct {
	submitHandler *command.SubmitMessageHandler
	deleteHandler *command.DeleteMessageHandler
	listHandler   *query.ListMessagesHandler
}

// NewContactHandler creates a new contact handler
func NewContactHandler(
	submitHandler *command.SubmitMessageHandler,
	deleteHandler *command.DeleteMessageHandler,
	listHandler *query.ListMessagesHandler,
) *ContactHandler {
	return &ContactHandler{
		submitHandler: submitHandler,
		deleteHandler: deleteHandler,
		listHandler:   listHandler,
	}
}

// RegisterRoutes registers the public form and the admin inbox routes
func (h *ContactHandler) RegisterRoutes(router *mux.Router, authn *middleware.Authenticator) {
	router.HandleFunc("/contactus", h.Submit).Methods(http.MethodPost)
	router.HandleFunc("/admin/messages", authn.RequireAdmin(h.ListMessages)).Methods(http.MethodGet)
	router.HandleFunc("/admin/contactUs/{id}", authn.RequireAdmin(h.DeleteMessage)).Methods(http.MethodDelete)
}

type submitRequest struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit godoc
// @Summary Send a message to the shop admins
// @Tags Contact
// @Accept json
// @Produce plain
// @Param request body submitRequest true "Message"
// @Success 200 {string} string "Message sent to Admin!"
// @Failure 400 {string} string
// @Failure 500 {string} string
// @Router /api/contactus [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Text(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	_, err := h.submitHandler.Handle(r.Context(), command.SubmitMessageCommand{
		Name:    req.Name,
		Subject: req.Subject,
		Phone:   req.Phone,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		status := apperror.HTTPStatus(err)
		if status == http.StatusInternalServerError {
			logger.Error(r.Context()).Err(err).Msg("Failed to store contact message")
			response.Text(w, status, "Internal server error")
			return
		}
		response.Text(w, status, apperror.PublicMessage(err))
		return
	}

	response.Text(w, http.StatusOK, "Message sent to Admin!")
}

// ListMessages godoc
// @Summary List contact messages (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} domain.Message
// @Router /api/admin/messages [get]
func (h *ContactHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.listHandler.Handle(r.Context(), query.ListMessagesQuery{})
	if err != nil {
		response.Failure(r.Context(), w, err, "Internal server error")
		return
	}

	response.JSON(w, http.StatusOK, messages)
}

// DeleteMessage godoc
// @Summary Delete a contact message (admin)
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /api/admin/contactUs/{id} [delete]
func (h *ContactHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid message ID")
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteMessageCommand{ID: uint(id)}); err != nil {
		response.FailureMessage(r.Context(), w, err, "Internal server error")
		return
	}

	response.Message(w, http.StatusOK, "Message deleted successfully")
}
