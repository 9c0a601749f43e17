package handler

import (
	"net/http"

	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/pkg/httputils"
	"github.com/arjunugale18-cmyk/Ar-world-chatt/internal/service"

	"github.com/gorilla/mux"
)

type MessageHandler struct {
	messageService service.MessageService
}

func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

func (h *MessageHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/messages/{username}/{other}", h.getConversation).Methods("GET", "OPTIONS")
}

// @Summary Get conversation
// @Description Messages between two usernames, both directions, oldest first.
// @ID get-conversation
// @Produce json
// @Success 200 {array} model.Message
// @Failure 500 {object} response.ErrorResponse
// @Param username path string true "One participant"
// @Param other path string true "The other participant"
// @Router /api/messages/{username}/{other} [get]
func (h *MessageHandler) getConversation(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	messages, err := h.messageService.Conversation(vars["username"], vars["other"])
	if err != nil {
		httputils.ResponseError(w, http.StatusInternalServerError, "Failed to get conversation")
		return
	}

	httputils.ResponseJSON(w, http.StatusOK, messages)
}
