// Package pokemon provides the core types shared by the catalog, selector and renderer.
package pokemon

import (
	"fmt"
	"path"
)

// RegularForm is the form sentinel meaning "no suffix".
const RegularForm = "regular"

// Entry is a single catalog record. Its id is its 1-based position in the catalog.
type Entry struct {
	Name  string   `json:"name"`  // Canonical name, matches the asset store key (e.g., "pikachu")
	Forms []string `json:"forms"` // Supported forms, may include "regular"
}

// AlternateForms returns the entry's forms with the "regular" sentinel removed.
func (e Entry) AlternateForms() []string {
	alts := make([]string, 0, len(e.Forms))
	for _, f := range e.Forms {
		if f != RegularForm {
			alts = append(alts, f)
		}
	}
	return alts
}

// HasForm reports whether form is one of the entry's alternate forms.
func (e Entry) HasForm(form string) bool {
	for _, f := range e.AlternateForms() {
		if f == form {
			return true
		}
	}
	return false
}

// GenerationRange maps a generation to an inclusive range of catalog ids.
type GenerationRange struct {
	Generation int
	FirstID    int
	LastID     int
}

// Size returns how many ids the range covers.
func (r GenerationRange) Size() int {
	return r.LastID - r.FirstID + 1
}

// Contains reports whether id falls inside the range.
func (r GenerationRange) Contains(id int) bool {
	return id >= r.FirstID && id <= r.LastID
}

// Mode is the selection mode requested on the command line.
type Mode int

const (
	ModeNone Mode = iota
	ModeList
	ModeExplicit
	ModeRandomByGeneration
	ModeRandomByNames
)

// String returns the flag name associated with the mode.
func (m Mode) String() string {
	switch m {
	case ModeList:
		return "--list"
	case ModeExplicit:
		return "--name"
	case ModeRandomByGeneration:
		return "--random"
	case ModeRandomByNames:
		return "--random-by-names"
	default:
		return "none"
	}
}

// SelectionRequest describes what the user asked for.
type SelectionRequest struct {
	Mode           Mode
	Name           string // ModeExplicit
	Form           string // ModeExplicit only
	GenerationSpec string // ModeRandomByGeneration, e.g. "1-8", "3", "2,4"
	Names          string // ModeRandomByNames, comma separated
	Shiny          bool
	Large          bool
}

// Validate rejects form requests combined with a random mode.
func (r SelectionRequest) Validate() error {
	if r.Form == "" {
		return nil
	}
	switch r.Mode {
	case ModeRandomByGeneration, ModeRandomByNames:
		return fmt.Errorf("%w: --form flag unexpected with %s", ErrUsage, r.Mode)
	}
	return nil
}

// ResolvedAsset fully determines one sprite in the asset store.
type ResolvedAsset struct {
	DisplayName string // Includes any form suffix (e.g., "raichu-alola")
	Shiny       bool
	Large       bool
}

// Key returns the store path "{size}/{variant}/{name}".
func (a ResolvedAsset) Key() string {
	size := "small"
	if a.Large {
		size = "large"
	}
	variant := "regular"
	if a.Shiny {
		variant = "shiny"
	}
	return path.Join(size, variant, a.DisplayName)
}

// Title returns the heading printed above the sprite.
func (a ResolvedAsset) Title() string {
	if a.Shiny {
		return a.DisplayName + " (shiny)"
	}
	return a.DisplayName
}
