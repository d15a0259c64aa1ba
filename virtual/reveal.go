package virtual

// Reveal remembers members that have intersected the viewport.
// A revealed member is never turned back into a placeholder.
type Reveal map[string]struct{}

func (r Reveal) Add(ids ...string) (added int) {
	for _, id := range ids {
		if _, ok := r[id]; ok {
			continue
		}

		r[id] = struct{}{}
		added++
	}

	return
}

func (r Reveal) Has(id string) bool {
	_, ok := r[id]

	return ok
}
