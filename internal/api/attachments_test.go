package api

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apierrors "github.com/diogo/openchat/internal/errors"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAttachment(t *testing.T) {
	path := writeTempFile(t, "cat.png", []byte("not-really-png"))

	att, err := LoadAttachment(path)
	if err != nil {
		t.Fatalf("LoadAttachment failed: %v", err)
	}

	if att.Name != "cat.png" {
		t.Errorf("Name = %s", att.Name)
	}
	if att.MIMEType != "image/png" {
		t.Errorf("MIMEType = %s, want image/png", att.MIMEType)
	}
	if string(att.Data) != "not-really-png" {
		t.Error("Data does not match file contents")
	}
	if !att.IsImage() {
		t.Error("png attachment should be an image")
	}
}

func TestLoadAttachment_MissingFile(t *testing.T) {
	_, err := LoadAttachment(filepath.Join(t.TempDir(), "missing.png"))

	if !errors.Is(err, apierrors.ErrAttachmentRead) {
		t.Errorf("expected ErrAttachmentRead, got %v", err)
	}

	var attErr *apierrors.AttachmentError
	if !errors.As(err, &attErr) {
		t.Fatal("expected AttachmentError")
	}
	if attErr.Name != "missing.png" {
		t.Errorf("error should carry the file name, got %s", attErr.Name)
	}
}

func TestLoadAttachment_UnknownExtension(t *testing.T) {
	path := writeTempFile(t, "data.bin42", []byte{1, 2, 3})

	att, err := LoadAttachment(path)
	if err != nil {
		t.Fatalf("LoadAttachment failed: %v", err)
	}
	if att.MIMEType != "application/octet-stream" {
		t.Errorf("MIMEType = %s, want application/octet-stream", att.MIMEType)
	}
	if att.IsImage() {
		t.Error("octet-stream should not be an image")
	}
}

func TestLoadAttachments_OneFailureFailsAll(t *testing.T) {
	good := writeTempFile(t, "ok.png", []byte("x"))
	bad := filepath.Join(t.TempDir(), "missing.jpg")

	atts, err := LoadAttachments([]string{good, bad})
	if !errors.Is(err, apierrors.ErrAttachmentRead) {
		t.Errorf("expected ErrAttachmentRead, got %v", err)
	}
	if atts != nil {
		t.Error("no partial attachment list should be returned")
	}
}

func TestFilterImages(t *testing.T) {
	atts := []Attachment{
		{Name: "a.png", MIMEType: "image/png"},
		{Name: "b.txt", MIMEType: "text/plain; charset=utf-8"},
		{Name: "c.webp", MIMEType: "image/webp"},
		{Name: "d.pdf", MIMEType: "application/pdf"},
	}

	images := FilterImages(atts)

	if len(images) != 2 {
		t.Fatalf("expected 2 images, got %d", len(images))
	}
	if images[0].Name != "a.png" || images[1].Name != "c.webp" {
		t.Errorf("wrong images retained: %s, %s", images[0].Name, images[1].Name)
	}
}

func TestIsImageType(t *testing.T) {
	for _, mt := range SupportedImageTypes() {
		if !IsImageType(mt) {
			t.Errorf("IsImageType(%s) = false", mt)
		}
	}
	if IsImageType("image/tiff") {
		t.Error("tiff should not be supported")
	}
}

func TestAttachment_DataURL(t *testing.T) {
	att := Attachment{Name: "a.gif", MIMEType: "image/gif", Data: []byte("GIF89a")}

	url := att.DataURL()
	if !strings.HasPrefix(url, "data:image/gif;base64,") {
		t.Errorf("DataURL = %s", url)
	}
}
