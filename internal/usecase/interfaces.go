package usecase

import (
	"context"

	"github.com/xavierca1/whatsapp-relay/internal/entity"
	"github.com/xavierca1/whatsapp-relay/internal/infra/integration/whatsapp"
)

type MessagingGateway interface {
	UploadMedia(ctx context.Context, creds entity.Credentials, img entity.InlineImage) (string, error)
	SendMessage(ctx context.Context, creds entity.Credentials, msg entity.OutboundMessage) (*whatsapp.APIResponse, error)
}

type MetricsRecorder interface {
	RecordMessage(messageType, outcome string)
	RecordMediaUpload(outcome string)
	RecordIntegrationError(service string)
}

type noopMetrics struct{}

func (noopMetrics) RecordMessage(string, string)  {}
func (noopMetrics) RecordMediaUpload(string)      {}
func (noopMetrics) RecordIntegrationError(string) {}
