package pwgen

import (
	"github.com/dmitrymomot/pwgen/pkg/entropy"
)

// Generator produces passwords for one fixed Options set. The character
// pools are derived once at construction and shared read-only across all
// candidates; each candidate's draws are otherwise independent.
type Generator struct {
	opts Options
	pool pool
	src  entropy.Source
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource replaces the operating-system entropy source. Tests use it to
// make generation deterministic; production code has no reason to.
func WithSource(src entropy.Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// New validates opts, derives the character pools and returns a Generator
// backed by the operating-system entropy source unless overridden.
func New(opts Options, options ...Option) (*Generator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	p, err := newPool(opts)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		opts: opts,
		pool: p,
		src:  entropy.System(),
	}
	for _, opt := range options {
		opt(g)
	}
	return g, nil
}

// Generate produces Options.Count independent passwords. Candidates are not
// deduplicated; every draw is independent of the previous passwords.
func (g *Generator) Generate() ([]string, error) {
	passwords := make([]string, 0, g.opts.Count)
	for i := 0; i < g.opts.Count; i++ {
		var (
			pw  []byte
			err error
		)
		if g.opts.Mode == ModeRandom {
			pw, err = g.random()
		} else {
			pw, err = g.pronounceable()
		}
		if err != nil {
			return nil, err
		}
		if err := g.enforce(pw); err != nil {
			return nil, err
		}
		passwords = append(passwords, string(pw))
	}
	return passwords, nil
}

// Generate is a convenience wrapper that builds a Generator with the
// operating-system entropy source and produces opts.Count passwords.
func Generate(opts Options) ([]string, error) {
	g, err := New(opts)
	if err != nil {
		return nil, err
	}
	return g.Generate()
}
