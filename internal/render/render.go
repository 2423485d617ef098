// Package render prints a resolved sprite.
package render

import (
	"fmt"
	"io"

	"github.com/mimiqdev/pokescript/internal/pokemon"
)

// Source provides sprite text for an asset.
type Source interface {
	Get(asset pokemon.ResolvedAsset) (string, error)
}

// Renderer writes sprites to Out.
type Renderer struct {
	Source Source
	Out    io.Writer
}

// New creates a renderer.
func New(src Source, out io.Writer) *Renderer {
	return &Renderer{Source: src, Out: out}
}

// Render writes the optional title line followed by the sprite verbatim.
// Nothing is written if the sprite cannot be found.
func (r *Renderer) Render(asset pokemon.ResolvedAsset, showTitle bool) error {
	content, err := r.Source.Get(asset)
	if err != nil {
		return err
	}

	if showTitle {
		if _, err := fmt.Fprintln(r.Out, asset.Title()); err != nil {
			return err
		}
	}

	_, err = io.WriteString(r.Out, content)
	return err
}
