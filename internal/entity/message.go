package entity

import (
	"encoding/json"
	"strings"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

const MessagingProduct = "whatsapp"

// Value Object: Credentials (phone number id + bearer token da Meta)
type Credentials struct {
	AccountID   string
	AccessToken string
}

func (c Credentials) Complete() bool {
	return c.AccountID != "" && c.AccessToken != ""
}

// Entidade: SendRequest (o que o front manda)
type SendRequest struct {
	RecipientNumber string
	MessageBody     string
	ImageURL        string
	Credentials     Credentials
}

type MessageKind string

const (
	KindText       MessageKind = "text"
	KindImageLink  MessageKind = "image_link"
	KindImageMedia MessageKind = "image_media"
)

// OutboundMessage é o payload enviado pra /messages.
// Exatamente um dos três formatos é produzido por request.
type OutboundMessage struct {
	To      string
	kind    MessageKind
	body    string
	link    string
	mediaID string
}

func NewTextMessage(to, body string) OutboundMessage {
	return OutboundMessage{To: to, kind: KindText, body: body}
}

func NewImageLinkMessage(to, link, caption string) OutboundMessage {
	return OutboundMessage{To: to, kind: KindImageLink, link: link, body: caption}
}

func NewImageMediaMessage(to, mediaID, caption string) OutboundMessage {
	return OutboundMessage{To: to, kind: KindImageMedia, mediaID: mediaID, body: caption}
}

func (m OutboundMessage) Kind() MessageKind { return m.kind }
func (m OutboundMessage) Body() string      { return m.body }
func (m OutboundMessage) Link() string      { return m.link }
func (m OutboundMessage) MediaID() string   { return m.mediaID }

type textContent struct {
	Body string `json:"body"`
}

type imageContent struct {
	ID      string `json:"id,omitempty"`
	Link    string `json:"link,omitempty"`
	Caption string `json:"caption"`
}

type wireMessage struct {
	MessagingProduct string        `json:"messaging_product"`
	To               string        `json:"to"`
	Type             string        `json:"type"`
	Text             *textContent  `json:"text,omitempty"`
	Image            *imageContent `json:"image,omitempty"`
}

// MarshalJSON gera o formato esperado pela Graph API
func (m OutboundMessage) MarshalJSON() ([]byte, error) {
	w := wireMessage{
		MessagingProduct: MessagingProduct,
		To:               m.To,
	}

	switch m.kind {
	case KindImageMedia:
		w.Type = "image"
		w.Image = &imageContent{ID: m.mediaID, Caption: m.body}
	case KindImageLink:
		w.Type = "image"
		w.Image = &imageContent{Link: m.link, Caption: m.body}
	default:
		w.Type = "text"
		w.Text = &textContent{Body: m.body}
	}

	return json.Marshal(w)
}

// NormalizeRecipient aplica a heurística de DDI: 10 dígitos sem o prefixo ganham o código do país.
// Não é validação, número estranho passa direto e a Meta rejeita.
func NormalizeRecipient(raw, countryCode string) string {
	recipient := strings.TrimSpace(raw)
	if countryCode == "" {
		return recipient
	}
	if !strings.HasPrefix(recipient, countryCode) && len(recipient) == 10 {
		return countryCode + recipient
	}
	return recipient
}

func IsRemoteImage(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}
