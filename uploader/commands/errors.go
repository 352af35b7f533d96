package commands

import "fmt"

// ConfigError reports an invalid invocation argument, detected before any filesystem access.
type ConfigError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// UploadError wraps any failure of the model store.
type UploadError struct {
	ModelDir string
	RepoId   string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload %s to %s: %s", e.ModelDir, e.RepoId, e.Err.Error())
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// VisibilityError is returned by the publish step. It is logged, never propagated.
type VisibilityError struct {
	RepoId  string
	Private bool
	Err     error
}

func (e *VisibilityError) Error() string {
	visibility := "public"
	if e.Private {
		visibility = "private"
	}
	return fmt.Sprintf("failed to make %s %s: %s", e.RepoId, visibility, e.Err.Error())
}

func (e *VisibilityError) Unwrap() error {
	return e.Err
}
