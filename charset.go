package pwgen

import (
	"fmt"
	"strings"
)

// Character classes, matching the classic pwgen sets.
const (
	lowercaseChars  = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars      = "0123456789"
	symbolChars     = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	consonantChars  = "bcdfghjklmnpqrstvwxz"
	vowelLowerChars = "aeiouy"

	// vowelChars covers both cases so AvoidVowels filters uppercase pools too.
	vowelChars = "aeiouyAEIOUY"

	// ambiguousChars are the visually confusable characters excluded by
	// AvoidAmbiguous.
	ambiguousChars = "B8G6I1l0OQDS5Z2"
)

// pool holds the filtered per-class character sequences one generation run
// draws from. Slices are built once per run and never mutated afterwards, and
// their order is fixed so a given entropy stream always maps to the same
// output.
type pool struct {
	consonants []byte // pronounceable consonant slots
	vowels     []byte // pronounceable vowel slots; aliases consonants when AvoidVowels
	uppercase  []byte
	digits     []byte
	symbols    []byte
	combined   []byte // union of enabled classes for uniform draws
}

// newPool derives the character pools from opts. It fails rather than
// silently under-delivering: a class that was requested but emptied out by
// the exclusion flags is a configuration error.
func newPool(opts Options) (pool, error) {
	keep := func(set string) []byte {
		out := make([]byte, 0, len(set))
		for i := 0; i < len(set); i++ {
			c := set[i]
			if opts.AvoidAmbiguous && strings.IndexByte(ambiguousChars, c) >= 0 {
				continue
			}
			if opts.AvoidVowels && strings.IndexByte(vowelChars, c) >= 0 {
				continue
			}
			if strings.IndexByte(opts.Remove, c) >= 0 {
				continue
			}
			out = append(out, c)
		}
		return out
	}

	var p pool

	lowercase := keep(lowercaseChars)
	if len(lowercase) == 0 {
		return pool{}, fmt.Errorf("%w: lowercase", ErrEmptyPool)
	}
	p.combined = append(p.combined, lowercase...)

	if opts.Mode == ModePronounceable {
		p.consonants = keep(consonantChars)
		if len(p.consonants) == 0 {
			return pool{}, fmt.Errorf("%w: consonants", ErrEmptyPool)
		}
		if opts.AvoidVowels {
			// Vowel slots still need characters. Alternation structure is
			// kept, but every slot draws a consonant.
			p.vowels = p.consonants
		} else {
			p.vowels = keep(vowelLowerChars)
			if len(p.vowels) == 0 {
				return pool{}, fmt.Errorf("%w: vowels", ErrEmptyPool)
			}
		}
	}

	if opts.Uppercase {
		p.uppercase = keep(uppercaseChars)
		if len(p.uppercase) == 0 {
			return pool{}, fmt.Errorf("%w: uppercase", ErrEmptyPool)
		}
		p.combined = append(p.combined, p.uppercase...)
	}

	if opts.Digits {
		p.digits = keep(digitChars)
		if len(p.digits) == 0 {
			return pool{}, fmt.Errorf("%w: digits", ErrEmptyPool)
		}
		p.combined = append(p.combined, p.digits...)
	}

	if opts.Symbols || opts.RequireSymbol {
		p.symbols = keep(symbolChars)
		if len(p.symbols) == 0 {
			return pool{}, fmt.Errorf("%w: symbols", ErrEmptyPool)
		}
		p.combined = append(p.combined, p.symbols...)
	}

	return p, nil
}
