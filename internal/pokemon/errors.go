package pokemon

import (
	"errors"
	"fmt"
)

var (
	ErrUsage                   = errors.New("usage error")
	ErrUnknownPokemon          = errors.New("invalid pokemon")
	ErrUnknownForm             = errors.New("invalid form")
	ErrInvalidGenerationFormat = errors.New("invalid generation format")
	ErrInvalidGeneration       = errors.New("invalid generation number")
	ErrIndexOutOfBounds        = errors.New("pokemon index out of bounds")
	ErrNoValidNames            = errors.New("no correct pokemon names have been provided")
	ErrAssetNotFound           = errors.New("colorscript not found")
	ErrAssetNotUTF8            = errors.New("colorscript is not valid UTF-8")
	ErrParse                   = errors.New("malformed pokemon data")
)

// UnknownFormError is returned when a requested form is not available.
// Alternatives lists the valid forms and may be empty.
type UnknownFormError struct {
	Name         string
	Form         string
	Alternatives []string
}

func (e *UnknownFormError) Error() string {
	return fmt.Sprintf("invalid form '%s' for pokemon %s", e.Form, e.Name)
}

func (e *UnknownFormError) Unwrap() error {
	return ErrUnknownForm
}
