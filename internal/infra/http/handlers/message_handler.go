package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/xavierca1/whatsapp-relay/internal/usecase"
)

// SendMessageExecutor é o que o handler precisa do usecase (mockável nos testes)
type SendMessageExecutor interface {
	Execute(ctx context.Context, input usecase.SendMessageInput) (*usecase.SendMessageOutput, error)
}

type MessageHandler struct {
	SendMessageUC SendMessageExecutor
}

func NewMessageHandler(uc SendMessageExecutor) *MessageHandler {
	return &MessageHandler{SendMessageUC: uc}
}

// SendMessage (POST /send-message)
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var input usecase.SendMessageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if errs := usecase.ValidateSendMessageInput(input); len(errs) > 0 {
		writeDetail(w, http.StatusUnprocessableEntity, errs)
		return
	}

	output, err := h.SendMessageUC.Execute(r.Context(), input)
	if err != nil {
		h.writeError(w, err)
		return
	}

	status := http.StatusOK
	if output.Outcome == usecase.OutcomeUnconfirmed {
		status = http.StatusAccepted
	}
	writeJSON(w, status, output.Body)
}

func (h *MessageHandler) writeError(w http.ResponseWriter, err error) {
	if upstream, ok := usecase.AsUpstreamError(err); ok {
		log.Printf("❌ HTTP Error: %d %v", upstream.StatusCode, upstream.Body)
		writeDetail(w, upstream.StatusCode, upstream.Body)
		return
	}

	if usecase.IsCredentialsMissing(err) {
		writeDetail(w, http.StatusUnauthorized, err.Error())
		return
	}

	log.Printf("❌ Erro inesperado no envio: %v", err)
	writeDetail(w, http.StatusInternalServerError, err.Error())
}

func writeDetail(w http.ResponseWriter, status int, detail any) {
	writeJSON(w, status, map[string]any{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
