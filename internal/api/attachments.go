package api

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	apierrors "github.com/diogo/openchat/internal/errors"
)

// MaxAttachmentSize caps how large an attached image can be
const MaxAttachmentSize = 20 * 1024 * 1024 // 20MB

// SupportedImageTypes returns the MIME types accepted as image attachments
func SupportedImageTypes() []string {
	return []string{
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/webp",
	}
}

// IsImageType reports whether a MIME type is an accepted image type
func IsImageType(mimeType string) bool {
	for _, t := range SupportedImageTypes() {
		if t == mimeType {
			return true
		}
	}
	return false
}

// Attachment is a local file read into memory, ready for request assembly
type Attachment struct {
	Name     string
	MIMEType string
	Data     []byte
}

// DataURL encodes the attachment as an inline data URL
func (a Attachment) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", a.MIMEType, base64.StdEncoding.EncodeToString(a.Data))
}

// IsImage reports whether the attachment is an accepted image
func (a Attachment) IsImage() bool {
	return IsImageType(a.MIMEType)
}

// LoadAttachment reads one local file into an Attachment. Read failures are
// reported as AttachmentError so the caller can abort the send before any
// network call.
func LoadAttachment(path string) (Attachment, error) {
	name := filepath.Base(path)

	info, err := os.Stat(path)
	if err != nil {
		return Attachment{}, apierrors.NewAttachmentError(name, err)
	}
	if info.Size() > MaxAttachmentSize {
		return Attachment{}, apierrors.NewAttachmentError(name,
			fmt.Errorf("file size %d exceeds maximum %d bytes", info.Size(), MaxAttachmentSize))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Attachment{}, apierrors.NewAttachmentError(name, err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	return Attachment{
		Name:     name,
		MIMEType: mimeType,
		Data:     data,
	}, nil
}

// LoadAttachments reads every path. Any single failure fails the whole
// batch; partial reads are never returned.
func LoadAttachments(paths []string) ([]Attachment, error) {
	var attachments []Attachment
	for _, p := range paths {
		a, err := LoadAttachment(p)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, a)
	}
	return attachments, nil
}

// FilterImages drops non-image attachments. The request assembler assumes
// everything it receives is an image.
func FilterImages(attachments []Attachment) []Attachment {
	var images []Attachment
	for _, a := range attachments {
		if a.IsImage() {
			images = append(images, a)
		}
	}
	return images
}
