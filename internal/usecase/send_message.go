package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/xavierca1/whatsapp-relay/internal/entity"
)

const integrationService = "whatsapp"

type SendMessageUseCase struct {
	Gateway     MessagingGateway
	Defaults    entity.Credentials
	CountryCode string
	Metrics     MetricsRecorder
}

func NewSendMessageUseCase(gateway MessagingGateway, defaults entity.Credentials, countryCode string, metrics MetricsRecorder) *SendMessageUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &SendMessageUseCase{
		Gateway:     gateway,
		Defaults:    defaults,
		CountryCode: countryCode,
		Metrics:     metrics,
	}
}

// Execute: credenciais -> normaliza número -> (upload opcional) -> payload -> envio -> mapeia resposta
func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	dispatchID := uuid.NewString()
	req := input.ToEntity()

	// 1. Credenciais (nenhuma chamada de rede se faltar)
	creds, err := ResolveCredentials(req.Credentials, uc.Defaults)
	if err != nil {
		log.Printf("⚠️ [%s] WhatsApp: credenciais ausentes", dispatchID)
		return nil, err
	}

	// 2. Número
	recipient := entity.NormalizeRecipient(req.RecipientNumber, uc.CountryCode)

	// 3. Upload do banner (falha aqui NUNCA derruba o envio)
	var upload MediaUploadResult
	if entity.IsDataURL(req.ImageURL) {
		upload = uc.uploadInlineImage(ctx, dispatchID, creds, req.ImageURL)
		if upload.Err != nil {
			log.Printf("❌ [%s] WhatsApp: upload de mídia falhou, seguindo sem imagem: %v", dispatchID, upload.Err)
		}
	}

	// 4. Payload
	msg := BuildOutboundMessage(recipient, req.MessageBody, req.ImageURL, upload)

	// 5. Envio
	resp, err := uc.Gateway.SendMessage(ctx, creds, msg)
	if err != nil {
		log.Printf("❌ [%s] WhatsApp: erro ao enviar mensagem: %v", dispatchID, err)
		uc.Metrics.RecordIntegrationError(integrationService)
		uc.Metrics.RecordMessage(string(msg.Kind()), "transport_error")
		return nil, &TechnicalError{Code: CodeTransportError, Message: err.Error(), Err: err}
	}

	log.Printf("[%s] WhatsApp: status %d body %s", dispatchID, resp.StatusCode, string(resp.Body))

	// 6. Resposta
	return uc.mapResponse(dispatchID, msg, resp.StatusCode, resp.Body)
}

// BuildOutboundMessage escolhe o formato. Primeira regra que bate ganha.
func BuildOutboundMessage(recipient, body, imageRef string, upload MediaUploadResult) entity.OutboundMessage {
	switch {
	case upload.OK():
		return entity.NewImageMediaMessage(recipient, upload.MediaID, body)
	case entity.IsRemoteImage(imageRef):
		return entity.NewImageLinkMessage(recipient, imageRef, body)
	default:
		return entity.NewTextMessage(recipient, body)
	}
}

func (uc *SendMessageUseCase) uploadInlineImage(ctx context.Context, dispatchID string, creds entity.Credentials, ref string) MediaUploadResult {
	log.Printf("[%s] WhatsApp: imagem local detectada, enviando pra Media API...", dispatchID)

	img, err := entity.ParseImageDataURL(ref)
	if err != nil {
		uc.Metrics.RecordMediaUpload("malformed")
		return MediaUploadResult{Err: &DomainError{Code: CodeMalformedMediaInput, Message: err.Error(), Err: err}}
	}

	mediaID, err := uc.Gateway.UploadMedia(ctx, creds, *img)
	if err != nil {
		uc.Metrics.RecordMediaUpload("failed")
		uc.Metrics.RecordIntegrationError(integrationService)
		return MediaUploadResult{Err: err}
	}

	log.Printf("✅ [%s] WhatsApp: mídia enviada, ID: %s", dispatchID, mediaID)
	uc.Metrics.RecordMediaUpload("uploaded")
	return MediaUploadResult{MediaID: mediaID}
}

func (uc *SendMessageUseCase) mapResponse(dispatchID string, msg entity.OutboundMessage, status int, raw []byte) (*SendMessageOutput, error) {
	kind := string(msg.Kind())

	if status >= http.StatusBadRequest {
		log.Printf("❌ [%s] WhatsApp: API retornou status %d: %s", dispatchID, status, string(raw))
		uc.Metrics.RecordIntegrationError(integrationService)
		uc.Metrics.RecordMessage(kind, "rejected")

		var body any
		if err := json.Unmarshal(raw, &body); err != nil {
			body = string(raw)
		}
		return nil, &UpstreamError{Code: CodeUpstreamRejected, StatusCode: status, Body: body}
	}

	if status == http.StatusOK {
		var body map[string]any
		if err := json.Unmarshal(raw, &body); err != nil || body == nil {
			uc.Metrics.RecordMessage(kind, "invalid_response")
			return nil, invalidUpstreamResponse(status, raw, err)
		}
		body["_hint"] = DeliveryHint

		log.Printf("✅ [%s] WhatsApp: Meta aceitou a mensagem para %s", dispatchID, msg.To)
		uc.Metrics.RecordMessage(kind, string(OutcomeDelivered))
		return &SendMessageOutput{Outcome: OutcomeDelivered, StatusCode: status, MessageType: msg.Kind(), Body: body}, nil
	}

	// nem 200 nem erro: devolve o body como veio, sem hint
	var body any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			uc.Metrics.RecordMessage(kind, "invalid_response")
			return nil, invalidUpstreamResponse(status, raw, err)
		}
	}

	log.Printf("⚠️ [%s] WhatsApp: status %d inesperado, entrega não confirmada", dispatchID, status)
	uc.Metrics.RecordMessage(kind, string(OutcomeUnconfirmed))
	return &SendMessageOutput{Outcome: OutcomeUnconfirmed, StatusCode: status, MessageType: msg.Kind(), Body: body}, nil
}

func invalidUpstreamResponse(status int, raw []byte, err error) error {
	return &TechnicalError{
		Code:    CodeInvalidUpstreamResponse,
		Message: fmt.Sprintf("invalid response from whatsapp api (status %d): %s", status, string(raw)),
		Err:     err,
	}
}
