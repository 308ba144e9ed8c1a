package recorder

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyRecording = errors.New("a recording is already in progress")
	ErrNotRecording     = errors.New("no recording in progress")
)

// DeviceOpenError is returned by Start when the audio input stream could not
// be opened or started. There is no automatic retry.
type DeviceOpenError struct {
	Err error
}

func (e *DeviceOpenError) Error() string {
	return fmt.Sprintf("unable to open the audio input stream: %v", e.Err)
}

func (e *DeviceOpenError) Unwrap() error {
	return e.Err
}

// EncodeError is returned by Stop when the captured audio could not be saved.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("unable to save the recording to '%s': %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}
