// Package colorscripts provides read-only access to the pre-rendered sprites.
//
// Sprites are keyed "{size}/{variant}/{name}", for example
// "small/regular/pikachu" or "large/shiny/raichu-alola".
package colorscripts

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/mimiqdev/pokescript/internal/pokemon"
)

//go:embed colorscripts
var bundled embed.FS

// Store looks up sprites in a filesystem tree.
type Store struct {
	fsys fs.FS
}

// New wraps an arbitrary filesystem laid out as size/variant/name.
func New(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Bundled returns the store compiled into the binary.
func Bundled() *Store {
	sub, err := fs.Sub(bundled, "colorscripts")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return New(sub)
}

// Open returns a store reading from dir on disk, or the bundled store when
// dir is empty.
func Open(dir string) (*Store, error) {
	if dir == "" {
		return Bundled(), nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("opening colorscripts directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening colorscripts directory: %s is not a directory", dir)
	}
	return New(os.DirFS(dir)), nil
}

// Get returns the sprite text for an asset.
func (s *Store) Get(asset pokemon.ResolvedAsset) (string, error) {
	key := asset.Key()

	data, err := fs.ReadFile(s.fsys, key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrInvalid) {
			return "", fmt.Errorf("%w: colorscript for '%s' not found at %s", pokemon.ErrAssetNotFound, asset.DisplayName, key)
		}
		return "", fmt.Errorf("reading colorscript %s: %w", key, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: could not read embedded file content for '%s'", pokemon.ErrAssetNotUTF8, asset.DisplayName)
	}

	return string(data), nil
}

// Has reports whether a sprite exists for the asset.
func (s *Store) Has(asset pokemon.ResolvedAsset) bool {
	_, err := fs.Stat(s.fsys, asset.Key())
	return err == nil
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// Dimensions returns the display width and height of a sprite in terminal cells.
func Dimensions(sprite string) (width, height int) {
	lines := strings.Split(strings.TrimRight(sprite, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return 0, 0
	}
	for _, line := range lines {
		if w := runewidth.StringWidth(ansiEscape.ReplaceAllString(line, "")); w > width {
			width = w
		}
	}
	return width, len(lines)
}
