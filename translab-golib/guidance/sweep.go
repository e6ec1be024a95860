package guidance

// Sweep expands base into one Weights value per (unigram, ngram) lambda pair
// from the cross product of lambdas. Pairs whose two values are equal are
// skipped: they produce degenerate runs where the single-token and n-gram
// guidance cannot be told apart in the results.
func Sweep(base Weights, lambdas []float64) []Weights {
	var out []Weights
	for _, l1 := range lambdas {
		for _, l2 := range lambdas {
			if l1 == l2 {
				continue
			}
			w := base
			w.Unigram = l1
			w.NGram = l2
			out = append(out, w)
		}
	}
	return out
}
