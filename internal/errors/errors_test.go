package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestCredentialError_Is(t *testing.T) {
	err := NewCredentialError(errors.New("401 unauthorized"))

	if !errors.Is(err, ErrInvalidCredential) {
		t.Error("CredentialError should match ErrInvalidCredential")
	}

	if errors.Is(err, ErrRemoteCall) {
		t.Error("CredentialError should not match ErrRemoteCall")
	}
}

func TestCredentialError_NoCause(t *testing.T) {
	err := &CredentialError{}
	if err.Error() != "invalid API key or connection error" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}

func TestAttachmentError(t *testing.T) {
	cause := errors.New("no such file")
	err := NewAttachmentError("photo.png", cause)

	if !errors.Is(err, ErrAttachmentRead) {
		t.Error("AttachmentError should match ErrAttachmentRead")
	}

	if !errors.Is(err, cause) {
		t.Error("AttachmentError should unwrap to its cause")
	}

	want := "failed to read attachment photo.png: no such file"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestRemoteError(t *testing.T) {
	tests := []struct {
		name  string
		err   *RemoteError
		want  string
	}{
		{
			name: "with model",
			err:  NewRemoteError("gpt-4", errors.New("timeout")),
			want: "remote call failed (model gpt-4): timeout",
		},
		{
			name: "without model",
			err:  NewRemoteError("", errors.New("timeout")),
			want: "remote call failed: timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrRemoteCall) {
				t.Error("RemoteError should match ErrRemoteCall")
			}
		})
	}
}

func TestWrappedSentinels(t *testing.T) {
	wrapped := fmt.Errorf("send failed: %w", ErrUnknownConversation)
	if !errors.Is(wrapped, ErrUnknownConversation) {
		t.Error("wrapped sentinel should still match")
	}
}

func TestHelperPredicates(t *testing.T) {
	if !IsCredentialError(NewCredentialError(nil)) {
		t.Error("IsCredentialError failed")
	}
	if !IsAttachmentError(NewAttachmentError("a.png", errors.New("x"))) {
		t.Error("IsAttachmentError failed")
	}
	if !IsRemoteError(NewRemoteError("m", errors.New("x"))) {
		t.Error("IsRemoteError failed")
	}
	if IsCredentialError(errors.New("other")) {
		t.Error("IsCredentialError matched unrelated error")
	}
}
