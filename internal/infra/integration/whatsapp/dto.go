package whatsapp

import "fmt"

// Resposta crua do /messages, o usecase decide o que fazer com o status
type APIResponse struct {
	StatusCode int
	Body       []byte
}

// Resposta do /media
type UploadMediaResponse struct {
	ID string `json:"id"`
}

// APIError é retornado quando a Graph API responde com status diferente do esperado
type APIError struct {
	Operation  string
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp %s: status %d: %s", e.Operation, e.StatusCode, string(e.Body))
}
