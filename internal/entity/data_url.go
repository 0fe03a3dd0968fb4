package entity

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"regexp"
	"strings"
)

const DataURLPrefix = "data:image"

var ErrMalformedDataURL = errors.New("malformed data url")

var mimeTypeRegex = regexp.MustCompile(`^data:(.*?);`)

// Value Object: InlineImage (banner gerado no front, vem como data URL)
type InlineImage struct {
	MimeType string
	Data     []byte
}

// Extension usa o subtipo do MIME, ex: image/png -> png
func (i InlineImage) Extension() string {
	parts := strings.Split(i.MimeType, "/")
	return parts[len(parts)-1]
}

func (i InlineImage) FileName() string {
	return "banner." + i.Extension()
}

func IsDataURL(ref string) bool {
	return strings.HasPrefix(ref, DataURLPrefix)
}

// ParseImageDataURL quebra "data:<mime>;base64,<payload>" em MIME + bytes
func ParseImageDataURL(ref string) (*InlineImage, error) {
	header, encoded, found := strings.Cut(ref, ",")
	if !found {
		return nil, fmt.Errorf("%w: missing ',' separator", ErrMalformedDataURL)
	}

	match := mimeTypeRegex.FindStringSubmatch(header)
	if match == nil || match[1] == "" {
		return nil, fmt.Errorf("%w: missing mime type in header %q", ErrMalformedDataURL, header)
	}

	// o MIME vai pro Content-Type/Content-Disposition do multipart, então tem que ser um token válido
	mimeType, params, err := mime.ParseMediaType(match[1])
	if err != nil || len(params) > 0 || !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: invalid mime type %q", ErrMalformedDataURL, match[1])
	}

	data, err := decodeBase64(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataURL, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedDataURL)
	}

	return &InlineImage{MimeType: mimeType, Data: data}, nil
}

// EncodeDataURL é o inverso, usado nos testes e pra debug
func EncodeDataURL(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

var base64Whitespace = strings.NewReplacer("\r", "", "\n", "", "\t", "", " ", "")

// decodeBase64 ignora quebras de linha e espaços no meio do payload (base64 "wrapped")
func decodeBase64(encoded string) ([]byte, error) {
	encoded = base64Whitespace.Replace(encoded)
	if data, err := base64.StdEncoding.DecodeString(encoded); err == nil {
		return data, nil
	}
	// alguns browsers mandam sem padding
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(encoded, "="))
}
