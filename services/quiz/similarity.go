package quiz

import "strings"

// isTooSimilar reports whether two answer options read as near-duplicates.
// Short strings match on equality or containment; longer strings on
// position-wise character overlap across the shared prefix. The overlap
// heuristic is intentionally crude and must stay as-is: option replacement
// decisions depend on its exact accept/reject behavior.
func isTooSimilar(a, b string) bool {
	na := strings.ToLower(strings.TrimSpace(a))
	nb := strings.ToLower(strings.TrimSpace(b))

	if len(na) < 10 || len(nb) < 10 {
		return na == nb || strings.Contains(na, nb) || strings.Contains(nb, na)
	}

	shared := len(na)
	if len(nb) < shared {
		shared = len(nb)
	}

	matches := 0
	for i := 0; i < shared; i++ {
		if na[i] == nb[i] {
			matches++
		}
	}

	longest := len(na)
	if len(nb) > longest {
		longest = len(nb)
	}

	ratio := float64(matches) / float64(longest)
	return ratio > 0.7
}
