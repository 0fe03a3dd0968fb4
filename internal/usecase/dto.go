package usecase

import "github.com/xavierca1/whatsapp-relay/internal/entity"

const DeliveryHint = "If not received, please REPLY 'Hi' to the bot on WhatsApp."

type SendMessageInput struct {
	RecipientNumber string `json:"recipientNumber"`
	MessageBody     string `json:"messageBody"`
	ImageURL        string `json:"imageUrl"`
	PhoneNumberID   string `json:"phoneNumberId"`
	AccessToken     string `json:"accessToken"`
}

func (i SendMessageInput) ToEntity() entity.SendRequest {
	return entity.SendRequest{
		RecipientNumber: i.RecipientNumber,
		MessageBody:     i.MessageBody,
		ImageURL:        i.ImageURL,
		Credentials: entity.Credentials{
			AccountID:   i.PhoneNumberID,
			AccessToken: i.AccessToken,
		},
	}
}

type DeliveryOutcome string

const (
	// 200 da Meta
	OutcomeDelivered DeliveryOutcome = "delivered"
	// status que não é 200 nem erro (1xx/2xx != 200/3xx)
	OutcomeUnconfirmed DeliveryOutcome = "unconfirmed"
)

type SendMessageOutput struct {
	Outcome     DeliveryOutcome
	StatusCode  int
	MessageType entity.MessageKind
	// Body é o JSON da Meta. Em OutcomeDelivered já vem com o "_hint".
	Body any
}

// MediaUploadResult é o resultado do upload opcional. Err != nil nunca aborta o envio.
type MediaUploadResult struct {
	MediaID string
	Err     error
}

func (r MediaUploadResult) OK() bool {
	return r.Err == nil && r.MediaID != ""
}
