package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/xavierca1/whatsapp-relay/internal/entity"
)

const DefaultBaseURL = "https://graph.facebook.com/v18.0"

// mesmo escape que o mime/multipart usa em CreateFormFile
var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// UploadMedia manda o binário pro /media e devolve o media id
func (c *Client) UploadMedia(ctx context.Context, creds entity.Credentials, img entity.InlineImage) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(img.FileName())))
	header.Set("Content-Type", img.MimeType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("erro ao montar multipart: %w", err)
	}
	if _, err := part.Write(img.Data); err != nil {
		return "", fmt.Errorf("erro ao escrever arquivo no multipart: %w", err)
	}
	if err := writer.WriteField("messaging_product", entity.MessagingProduct); err != nil {
		return "", err
	}
	if err := writer.WriteField("type", img.MimeType); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	resp, err := c.do(ctx, c.endpoint(creds, "media"), creds.AccessToken, writer.FormDataContentType(), &buf)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{Operation: "media upload", StatusCode: resp.StatusCode, Body: resp.Body}
	}

	var result UploadMediaResponse
	if err := json.Unmarshal(resp.Body, &result); err != nil {
		return "", fmt.Errorf("erro ao parsear resposta do upload: %w", err)
	}
	if result.ID == "" {
		return "", errors.New("upload retornou sem media id")
	}

	return result.ID, nil
}

// SendMessage só falha em erro de transporte. Status e body voltam crus.
func (c *Client) SendMessage(ctx context.Context, creds entity.Credentials, msg entity.OutboundMessage) (*APIResponse, error) {
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar payload: %w", err)
	}

	return c.do(ctx, c.endpoint(creds, "messages"), creds.AccessToken, "application/json", bytes.NewReader(body))
}

func (c *Client) endpoint(creds entity.Credentials, resource string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, creds.AccountID, resource)
}

func (c *Client) do(ctx context.Context, url, token, contentType string, body io.Reader) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar requisição: %w", err)
	}

	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	return &APIResponse{StatusCode: resp.StatusCode, Body: respBody}, nil
}
