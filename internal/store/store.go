// Package store holds the client-side state layer: session, cart, bookmarks,
// notification slot and order draft. The backend is the source of truth;
// every store here is a cache that reconciles against it. Stores are
// constructor-injected (no package-level singletons) so tests can substitute
// the gateway and the persistence slot.
package store

// Persister is the durable slot stores flush snapshots into so state
// survives restarts. *state.Store implements it; a nil Persister disables
// persistence.
type Persister interface {
	Put(name string, v any) error
	Get(name string, v any) (bool, error)
	Delete(name string) error
}

// optimistic swaps in next, runs call, and restores the prior snapshot when
// call fails. The restore is a full-snapshot swap, not a patch, so an
// interleaved mutation cannot leave a half-rolled-back state.
func optimistic[S any](get func() S, set func(S), next S, call func() error) error {
	prev := get()
	set(next)
	if err := call(); err != nil {
		set(prev)
		return err
	}
	return nil
}

func dedupe(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
