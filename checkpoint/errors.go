package checkpoint

import "fmt"

// MissingFileError is returned when a file required for the requested epoch is absent.
type MissingFileError struct {
	Path string
	Dir  string
}

func (e *MissingFileError) Error() string {
	return fmt.Sprintf("required file %s not found in %s", e.Path, e.Dir)
}

// ConfigCheckError is returned when the checkpoint configuration file fails the structural check.
type ConfigCheckError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ConfigCheckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid checkpoint config %s: %s: %s", e.Path, e.Reason, e.Err.Error())
	}
	return fmt.Sprintf("invalid checkpoint config %s: %s", e.Path, e.Reason)
}

func (e *ConfigCheckError) Unwrap() error {
	return e.Err
}
