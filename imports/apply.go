package imports

import "sort"

// Apply performs every action against src and returns the rewritten
// source. Actions for one unit never overlap; they may arrive in any
// order.
func Apply(src []byte, actions []Action) []byte {
	sorted := append([]Action(nil), actions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})

	out := make([]byte, 0, len(src))
	cursor := 0
	for _, a := range sorted {
		start := int(a.Span.Start)
		if start < cursor {
			// overlapping actions are a caller bug; keep the earlier edit
			continue
		}
		out = append(out, src[cursor:start]...)
		out = append(out, a.Text...)
		cursor = int(a.Span.End)
	}
	out = append(out, src[cursor:]...)
	return out
}
