package pwgen

// Mode selects the password generation algorithm.
type Mode int

const (
	// ModePronounceable alternates consonants and vowels so the result can be
	// memorized. This is the default.
	ModePronounceable Mode = iota

	// ModeRandom draws every character uniformly from the combined pool of
	// enabled classes.
	ModeRandom
)

// Options is the immutable configuration for one generation run. The zero
// value is not useful; start from DefaultOptions.
type Options struct {
	// Length of every generated password, in characters. Must be at least 1.
	Length int

	// Count of passwords to generate. Must be at least 1.
	Count int

	// Mode selects pronounceable or fully random generation.
	Mode Mode

	// Digits enables the digit pool and guarantees at least one digit per
	// password when the length allows.
	Digits bool

	// Uppercase enables the uppercase pool and guarantees at least one
	// capital letter per password when the length allows.
	Uppercase bool

	// Symbols enables the symbol pool without demanding a symbol in every
	// password. Pronounceable mode ignores it unless RequireSymbol is set,
	// since unforced symbols only hurt memorability.
	Symbols bool

	// RequireSymbol guarantees at least one symbol per password and enables
	// the symbol pool even when Symbols is unset.
	RequireSymbol bool

	// AvoidVowels removes vowels from every pool, e.g. to rule out accidental
	// offensive words. Honored in both modes; pronounceable output then fills
	// vowel slots with consonants.
	AvoidVowels bool

	// AvoidAmbiguous removes characters easily confused with one another
	// (0/O, 1/l/I and friends) from every pool.
	AvoidAmbiguous bool

	// Remove strips the listed characters from every pool.
	Remove string
}

// DefaultOptions mirrors classic pwgen defaults: one 8-character
// pronounceable password with digits and capital letters enabled.
func DefaultOptions() Options {
	return Options{
		Length:    8,
		Count:     1,
		Digits:    true,
		Uppercase: true,
	}
}

// Validate reports the first configuration problem, if any.
func (o Options) Validate() error {
	if o.Length < 1 {
		return ErrInvalidLength
	}
	if o.Count < 1 {
		return ErrInvalidCount
	}
	return nil
}
