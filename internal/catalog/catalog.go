// Package catalog loads the bundled list of pokemon names and forms.
package catalog

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"iter"

	"github.com/mimiqdev/pokescript/internal/pokemon"
)

//go:embed pokemon.json
var pokemonJSON []byte

// Catalog holds every known pokemon in national dex order.
type Catalog struct {
	entries []pokemon.Entry
	byName  map[string]int
}

// Load parses the embedded pokemon data.
func Load() (*Catalog, error) {
	return Parse(bytes.NewReader(pokemonJSON))
}

// Parse reads a JSON array of {"name", "forms"} records.
func Parse(r io.Reader) (*Catalog, error) {
	var entries []pokemon.Entry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %v", pokemon.ErrParse, err)
	}

	c := &Catalog{
		entries: entries,
		byName:  make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", pokemon.ErrParse, i+1)
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate name %q", pokemon.ErrParse, e.Name)
		}
		c.byName[e.Name] = i
	}

	return c, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the entry with the given canonical name.
func (c *Catalog) Lookup(name string) (pokemon.Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return pokemon.Entry{}, false
	}
	return c.entries[i], true
}

// Contains reports whether name is a canonical catalog name.
func (c *Catalog) Contains(name string) bool {
	_, ok := c.byName[name]
	return ok
}

// At returns the entry with the given 1-based id.
func (c *Catalog) At(id int) (pokemon.Entry, error) {
	if id < 1 || id > len(c.entries) {
		return pokemon.Entry{}, fmt.Errorf("%w: id %d (catalog has %d entries)", pokemon.ErrIndexOutOfBounds, id, len(c.entries))
	}
	return c.entries[id-1], nil
}

// Entries yields every entry in catalog order.
func (c *Catalog) Entries() iter.Seq[pokemon.Entry] {
	return func(yield func(pokemon.Entry) bool) {
		for _, e := range c.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Names yields every canonical name in catalog order.
func (c *Catalog) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for e := range c.Entries() {
			if !yield(e.Name) {
				return
			}
		}
	}
}

// WriteNames writes one canonical name per line.
func (c *Catalog) WriteNames(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for name := range c.Names() {
		if _, err := fmt.Fprintln(bw, name); err != nil {
			return err
		}
	}
	return bw.Flush()
}
