package runner

import (
	"errors"
	"fmt"
)

// InputKind identifies where raw messages come from.
type InputKind string

const (
	KindMessage InputKind = "message"
	KindFile    InputKind = "file"
	KindHash    InputKind = "hash"
	KindRange   InputKind = "range"
)

// ErrNoInput is returned when an Input names no source at all.
var ErrNoInput = errors.New("no commit message, file, hash or hash range given")

// Input names the messages to lint. When several sources are set, the
// most specific wins: message, then file, then hash, then range.
type Input struct {
	Message  string
	File     string
	Hash     string
	FromHash string
	ToHash   string

	// Literal marks Message as given even when it is empty.
	Literal bool
}

// Kind returns the source that will be used.
func (in Input) Kind() (InputKind, error) {
	switch {
	case in.Literal || in.Message != "":
		return KindMessage, nil
	case in.File != "":
		return KindFile, nil
	case in.Hash != "":
		return KindHash, nil
	case in.FromHash != "":
		return KindRange, nil
	default:
		return "", ErrNoInput
	}
}

// InputError reports an input that could not be read.
type InputError struct {
	Kind   InputKind
	Source string
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("unable to read %s %s: %v", e.Kind, e.Source, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
