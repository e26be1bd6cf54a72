package generator

import (
	"encoding/base64"
	"fmt"
	"strings"

	deployerrors "github.com/nitinsinghh27/TDS-PR1/errors"
	"github.com/nitinsinghh27/TDS-PR1/model"
)

type decodedAttachment struct {
	Name     string
	MimeType string
	Content  []byte
}

// decodeAttachment parses a data-URI attachment of the form
// data:mime/type;base64,content. Failures surface as ErrAttachmentDecode so
// the caller can drop the attachment and continue.
func decodeAttachment(att model.Attachment) (*decodedAttachment, error) {
	rest, ok := strings.CutPrefix(att.URL, "data:")
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a data URI", deployerrors.ErrAttachmentDecode, att.Name)
	}
	header, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, fmt.Errorf("%w: %q has no payload", deployerrors.ErrAttachmentDecode, att.Name)
	}
	mimeType, _, _ := strings.Cut(header, ";")

	content, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", deployerrors.ErrAttachmentDecode, att.Name, err)
	}
	return &decodedAttachment{Name: att.Name, MimeType: mimeType, Content: content}, nil
}

// textual reports whether the attachment content is safe to inline in a prompt
func (a *decodedAttachment) textual() bool {
	switch {
	case strings.HasPrefix(a.MimeType, "text/"):
		return true
	case a.MimeType == "application/json", a.MimeType == "application/javascript":
		return true
	}
	return false
}
