// Package pwgen generates passwords from configurable character pools using
// an operating-system entropy source.
//
// Two generation modes are supported. Pronounceable mode (the default)
// alternates consonants and vowels through a small state machine so the
// result can be memorized, occasionally substituting digits or capital
// letters when those classes are enabled. Random mode draws every character
// uniformly from the combined pool of enabled classes and is the right choice
// when memorability does not matter.
//
// After a candidate is produced, constraint enforcement guarantees that every
// mandated character class is represented: a missing class overwrites one
// uniformly chosen, not-yet-claimed position. Guarantees apply in fixed
// priority order (symbol, then uppercase, then digit), so passwords shorter
// than the number of requested guarantees satisfy as many as positions allow
// instead of failing.
//
// # Usage
//
// Generate three fully random passwords:
//
//	opts := pwgen.DefaultOptions()
//	opts.Count = 3
//	opts.Mode = pwgen.ModeRandom
//
//	passwords, err := pwgen.Generate(opts)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Pronounceable passwords with a guaranteed symbol:
//
//	opts := pwgen.DefaultOptions()
//	opts.Length = 12
//	opts.RequireSymbol = true
//
//	passwords, err := pwgen.Generate(opts)
//
// Deterministic generation for tests substitutes the entropy source:
//
//	g, err := pwgen.New(opts, pwgen.WithSource(entropy.New(fixedStream)))
//
// # Character Pools
//
// Lowercase letters are always included. Uppercase letters, digits and
// symbols join the pool according to Options. AvoidAmbiguous removes visually
// confusable characters (0/O, 1/l/I and friends) from every pool, AvoidVowels
// removes vowels, and Remove strips arbitrary caller-chosen characters. A
// class that was requested but emptied out by the exclusions is a
// configuration error, never a silently missing class.
//
// # Error Handling
//
// Configuration problems surface as ErrInvalidLength, ErrInvalidCount or a
// wrapped ErrEmptyPool naming the empty class. A failing entropy source
// surfaces as a wrapped entropy.ErrUnavailable and aborts generation; there
// is no fallback to a weaker random source.
package pwgen
