// Package errors provides custom error types for the openchat core.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrInvalidCredential covers both auth rejection and transport failure
	// during credential validation. The two cases are deliberately not
	// distinguished.
	ErrInvalidCredential = errors.New("invalid API key or connection error")

	// ErrAttachmentRead means a local attachment could not be read. The send
	// is aborted before any network call is made.
	ErrAttachmentRead = errors.New("failed to read attachment")

	// ErrRemoteCall means the completion request itself failed.
	ErrRemoteCall = errors.New("remote call failed")

	// ErrUnknownConversation means a mutation targeted a conversation id that
	// is not in the store. The store state is left unchanged.
	ErrUnknownConversation = errors.New("unknown conversation")
)

// CredentialError represents a failed credential validation
type CredentialError struct {
	Cause error
}

func (e *CredentialError) Error() string {
	if e.Cause == nil {
		return "invalid API key or connection error"
	}
	return fmt.Sprintf("invalid API key or connection error: %v", e.Cause)
}

// Is allows comparison with the ErrInvalidCredential sentinel
func (e *CredentialError) Is(target error) bool {
	if target == ErrInvalidCredential {
		return true
	}
	_, ok := target.(*CredentialError)
	return ok
}

func (e *CredentialError) Unwrap() error {
	return e.Cause
}

// NewCredentialError creates a new CredentialError
func NewCredentialError(cause error) *CredentialError {
	return &CredentialError{Cause: cause}
}

// AttachmentError represents a failure to read a local attachment
type AttachmentError struct {
	Name  string
	Cause error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("failed to read attachment %s: %v", e.Name, e.Cause)
}

// Is allows comparison with the ErrAttachmentRead sentinel
func (e *AttachmentError) Is(target error) bool {
	if target == ErrAttachmentRead {
		return true
	}
	_, ok := target.(*AttachmentError)
	return ok
}

func (e *AttachmentError) Unwrap() error {
	return e.Cause
}

// NewAttachmentError creates a new AttachmentError
func NewAttachmentError(name string, cause error) *AttachmentError {
	return &AttachmentError{Name: name, Cause: cause}
}

// RemoteError represents a failed completion request
type RemoteError struct {
	Model string
	Cause error
}

func (e *RemoteError) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("remote call failed (model %s): %v", e.Model, e.Cause)
	}
	return fmt.Sprintf("remote call failed: %v", e.Cause)
}

// Is allows comparison with the ErrRemoteCall sentinel
func (e *RemoteError) Is(target error) bool {
	if target == ErrRemoteCall {
		return true
	}
	_, ok := target.(*RemoteError)
	return ok
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}

// NewRemoteError creates a new RemoteError
func NewRemoteError(model string, cause error) *RemoteError {
	return &RemoteError{Model: model, Cause: cause}
}

// IsCredentialError checks whether err is a credential validation failure
func IsCredentialError(err error) bool {
	return errors.Is(err, ErrInvalidCredential)
}

// IsAttachmentError checks whether err is an attachment read failure
func IsAttachmentError(err error) bool {
	return errors.Is(err, ErrAttachmentRead)
}

// IsRemoteError checks whether err is a completion request failure
func IsRemoteError(err error) bool {
	return errors.Is(err, ErrRemoteCall)
}
