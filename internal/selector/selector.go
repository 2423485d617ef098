// Package selector resolves a selection request into a single sprite.
package selector

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/mimiqdev/pokescript/internal/catalog"
	"github.com/mimiqdev/pokescript/internal/generation"
	"github.com/mimiqdev/pokescript/internal/pokemon"
)

// ShinyRate is the chance of a shiny encounter when shiny is not forced.
const ShinyRate = 1.0 / 128.0

// Rand is the randomness the selector draws from. *rand.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// systemRand uses the auto-seeded top-level math/rand/v2 source.
type systemRand struct{}

func (systemRand) IntN(n int) int   { return rand.IntN(n) }
func (systemRand) Float64() float64 { return rand.Float64() }

// Result is the outcome of a resolution.
type Result struct {
	Asset pokemon.ResolvedAsset

	// Rejected holds names from a random-by-names request that are not in
	// the catalog, in input order. It is set even when resolution fails.
	Rejected []string
}

// Selector resolves requests against a catalog.
type Selector struct {
	catalog *catalog.Catalog
	rng     Rand
	logger  *slog.Logger
}

// Option configures a Selector.
type Option func(*Selector)

// WithRand replaces the system random source.
func WithRand(r Rand) Option {
	return func(s *Selector) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithLogger sets the debug logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Selector) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a selector over the given catalog.
func New(c *catalog.Catalog, opts ...Option) *Selector {
	s := &Selector{
		catalog: c,
		rng:     systemRand{},
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve dispatches on the request mode.
func (s *Selector) Resolve(req pokemon.SelectionRequest) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	switch req.Mode {
	case pokemon.ModeExplicit:
		name, err := s.ResolveName(req.Name, req.Form)
		if err != nil {
			return Result{}, err
		}
		return Result{Asset: s.asset(name, req)}, nil

	case pokemon.ModeRandomByGeneration:
		name, err := s.RandomByGeneration(req.GenerationSpec)
		if err != nil {
			return Result{}, err
		}
		return Result{Asset: s.asset(name, req)}, nil

	case pokemon.ModeRandomByNames:
		name, rejected, err := s.RandomByNames(req.Names)
		if err != nil {
			return Result{Rejected: rejected}, err
		}
		return Result{Asset: s.asset(name, req), Rejected: rejected}, nil

	default:
		return Result{}, fmt.Errorf("%w: no selection mode", pokemon.ErrUsage)
	}
}

// ResolveName validates name and applies an optional form suffix.
func (s *Selector) ResolveName(name, form string) (string, error) {
	entry, ok := s.catalog.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w %s", pokemon.ErrUnknownPokemon, name)
	}
	if form == "" {
		return name, nil
	}
	if !entry.HasForm(form) {
		return "", &pokemon.UnknownFormError{
			Name:         name,
			Form:         form,
			Alternatives: entry.AlternateForms(),
		}
	}
	return name + "-" + form, nil
}

// RandomByGeneration draws a pokemon uniformly from the ids covered by spec.
func (s *Selector) RandomByGeneration(spec string) (string, error) {
	start, end, err := generation.ParseSpec(spec, s.rng)
	if err != nil {
		return "", err
	}
	firstID, lastID, err := generation.IDRange(start, end)
	if err != nil {
		return "", err
	}

	id := firstID + s.rng.IntN(lastID-firstID+1)
	entry, err := s.catalog.At(id)
	if err != nil {
		return "", err
	}

	s.logger.Debug("random pokemon drawn",
		slog.String("spec", spec),
		slog.Int("start_gen", start),
		slog.Int("end_gen", end),
		slog.Int("id", id),
		slog.String("name", entry.Name))

	return entry.Name, nil
}

// RandomByNames picks one valid name from a comma separated list. Unknown
// names are returned as rejected; none valid fails with ErrNoValidNames.
func (s *Selector) RandomByNames(names string) (string, []string, error) {
	var valid, rejected []string
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if s.catalog.Contains(name) {
			valid = append(valid, name)
		} else {
			rejected = append(rejected, name)
		}
	}

	if len(valid) == 0 {
		return "", rejected, pokemon.ErrNoValidNames
	}

	name := valid[s.rng.IntN(len(valid))]
	s.logger.Debug("random pokemon picked from names",
		slog.Int("valid", len(valid)),
		slog.Int("rejected", len(rejected)),
		slog.String("name", name))

	return name, rejected, nil
}

// RollShiny reports whether an encounter is shiny.
func (s *Selector) RollShiny(forced bool) bool {
	return forced || s.rng.Float64() < ShinyRate
}

func (s *Selector) asset(name string, req pokemon.SelectionRequest) pokemon.ResolvedAsset {
	return pokemon.ResolvedAsset{
		DisplayName: name,
		Shiny:       s.RollShiny(req.Shiny),
		Large:       req.Large,
	}
}
