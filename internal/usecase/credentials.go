package usecase

import (
	"strings"

	"github.com/xavierca1/whatsapp-relay/internal/entity"
)

// ResolveCredentials: valor do request primeiro, depois o default do ambiente.
// Retorna ErrCredentialsMissing se qualquer um dos dois campos ficar vazio.
func ResolveCredentials(request, defaults entity.Credentials) (entity.Credentials, error) {
	resolved := entity.Credentials{
		AccountID:   firstNonEmpty(request.AccountID, defaults.AccountID),
		AccessToken: firstNonEmpty(request.AccessToken, defaults.AccessToken),
	}

	if !resolved.Complete() {
		return entity.Credentials{}, ErrCredentialsMissing
	}
	return resolved, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
