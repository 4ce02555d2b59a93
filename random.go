package pwgen

// random emits one candidate with every character drawn uniformly from the
// combined pool. Weighting is per character, not per class: a larger class
// contributes more characters and therefore more probability mass.
func (g *Generator) random() ([]byte, error) {
	pw := make([]byte, g.opts.Length)
	for i := range pw {
		idx, err := g.src.Intn(len(g.pool.combined))
		if err != nil {
			return nil, err
		}
		pw[i] = g.pool.combined[idx]
	}
	return pw, nil
}
