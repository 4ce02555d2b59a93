package pwgen

// cvState is the character class the phonetic state machine expects at the
// current position.
type cvState int

const (
	expectConsonant cvState = iota
	expectVowel
)

// Per-position odds of substituting a digit or a capital letter for the
// expected consonant/vowel when the class is enabled.
const (
	interleaveNum = 1
	interleaveDen = 5
)

// pronounceable emits one candidate by alternating consonants and vowels.
// The starting class is chosen uniformly, so either may open a password.
// Substituted positions still advance the state machine: the expected class
// flips whether or not the slot received a letter, which keeps the
// alternation structure intact around the substitutions.
func (g *Generator) pronounceable() ([]byte, error) {
	pw := make([]byte, 0, g.opts.Length)

	state := expectConsonant
	startVowel, err := g.src.Chance(1, 2)
	if err != nil {
		return nil, err
	}
	if startVowel {
		state = expectVowel
	}

	for len(pw) < g.opts.Length {
		set, err := g.positionSet(state)
		if err != nil {
			return nil, err
		}
		idx, err := g.src.Intn(len(set))
		if err != nil {
			return nil, err
		}
		pw = append(pw, set[idx])

		if state == expectConsonant {
			state = expectVowel
		} else {
			state = expectConsonant
		}
	}
	return pw, nil
}

// positionSet picks the character set for one position: usually the expected
// phonetic class, occasionally a digit or a capital letter when those classes
// are enabled. Symbols are never interleaved here; memorability is the point
// of this mode, so RequireSymbol is left to the enforcement pass.
func (g *Generator) positionSet(state cvState) ([]byte, error) {
	if len(g.pool.digits) > 0 {
		hit, err := g.src.Chance(interleaveNum, interleaveDen)
		if err != nil {
			return nil, err
		}
		if hit {
			return g.pool.digits, nil
		}
	}
	if len(g.pool.uppercase) > 0 {
		hit, err := g.src.Chance(interleaveNum, interleaveDen)
		if err != nil {
			return nil, err
		}
		if hit {
			return g.pool.uppercase, nil
		}
	}
	if state == expectVowel {
		return g.pool.vowels, nil
	}
	return g.pool.consonants, nil
}
