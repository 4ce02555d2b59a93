package pwgen

import "bytes"

// guarantee describes one mandated character class: when active and absent
// from a candidate, one unreserved position is overwritten with a uniformly
// chosen member of the class pool.
type guarantee struct {
	active bool
	set    []byte
}

// enforce patches pw in place so every mandated class is represented.
// Guarantees apply in fixed priority order (symbol, uppercase, digit) and
// never overwrite a position claimed by an earlier guarantee. A class that is
// already present reserves one position holding it, so a later patch cannot
// destroy the candidate's only member of a satisfied class. A candidate
// shorter than the number of active guarantees satisfies as many as
// positions allow, in priority order, rather than failing.
func (g *Generator) enforce(pw []byte) error {
	guarantees := []guarantee{
		{g.opts.RequireSymbol, g.pool.symbols},
		{g.opts.Uppercase, g.pool.uppercase},
		{g.opts.Digits, g.pool.digits},
	}

	reserved := make([]bool, len(pw))
	free := len(pw)

	for _, gr := range guarantees {
		if !gr.active || free == 0 {
			continue
		}
		if idx := bytes.IndexAny(pw, string(gr.set)); idx >= 0 {
			// Classes are disjoint, so this position cannot already be
			// claimed by an earlier guarantee.
			reserved[idx] = true
			free--
			continue
		}

		c, err := g.pick(gr.set)
		if err != nil {
			return err
		}
		pos, err := g.pickFree(reserved, free)
		if err != nil {
			return err
		}
		pw[pos] = c
		reserved[pos] = true
		free--
	}
	return nil
}

// pick returns a uniformly chosen member of set.
func (g *Generator) pick(set []byte) (byte, error) {
	idx, err := g.src.Intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

// pickFree returns a uniformly chosen index among unreserved positions.
// free must equal the number of false entries in reserved.
func (g *Generator) pickFree(reserved []bool, free int) (int, error) {
	n, err := g.src.Intn(free)
	if err != nil {
		return 0, err
	}
	for i, taken := range reserved {
		if taken {
			continue
		}
		if n == 0 {
			return i, nil
		}
		n--
	}
	return len(reserved) - 1, nil
}
