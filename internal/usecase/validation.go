package usecase

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateSendMessageInput checa só presença; formato do número quem valida é a Meta
func ValidateSendMessageInput(input SendMessageInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.RecipientNumber) == "" {
		errors = append(errors, ValidationError{"recipientNumber", "is required"})
	}
	if strings.TrimSpace(input.MessageBody) == "" {
		errors = append(errors, ValidationError{"messageBody", "is required"})
	}

	return errors
}
