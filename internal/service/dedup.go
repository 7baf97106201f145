package service

// filterNew is the deduplication filter: it keeps the candidates whose
// external identifier is not in the existing set. Pure and deterministic;
// applying it twice with the same set changes nothing. Candidates with an
// empty identifier are dropped, since they could never be matched on a
// later run.
func filterNew[T any](candidates []T, existing map[string]struct{}, key func(T) string) []T {
	kept := make([]T, 0, len(candidates))
	for _, c := range candidates {
		k := key(c)
		if k == "" {
			continue
		}
		if _, ok := existing[k]; ok {
			continue
		}
		kept = append(kept, c)
	}
	return kept
}
