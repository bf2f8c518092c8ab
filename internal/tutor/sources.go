package tutor

import "github.com/priyansh/neetdost/internal/llm"

// dedupeSources collapses citations sharing a URI. The last-seen entry
// for a URI wins, but it stays at the position of the URI's first
// appearance. Entries missing a URI or title are dropped first.
func dedupeSources(in []llm.Source) []llm.Source {
	var out []llm.Source
	index := make(map[string]int)

	for _, s := range in {
		if s.URI == "" || s.Title == "" {
			continue
		}
		if i, ok := index[s.URI]; ok {
			out[i] = s
			continue
		}
		index[s.URI] = len(out)
		out = append(out, s)
	}

	return out
}
