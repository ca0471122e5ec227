package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusparking/lotfinder/internal/chat"
	"github.com/campusparking/lotfinder/internal/logger"
)

const maxChatBody = 4 << 10

type ChatHandler struct {
	helper ChatProvider
}

func NewChatHandler(helper ChatProvider) *ChatHandler {
	return &ChatHandler{helper: helper}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Reply answers a free-text parking question
func (h *ChatHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	reply, err := h.helper.Reply(r.Context(), req.Message)
	if errors.Is(err, chat.ErrEmptyMessage) {
		writeError(w, http.StatusBadRequest, "message is required", "")
		return
	}
	if err != nil {
		logger.FromContext(r.Context()).Error("chat_reply_error", "err", err)
		writeError(w, http.StatusBadGateway, "Failed to answer", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reply":   reply,
	})
}
