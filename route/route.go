package route

import "context"

// Chain returns the node chain [origin, stops..., destination].
// Empty identifiers are dropped, so a route missing its origin or destination
// yields a shorter chain instead of an empty-named stop.
func (r Route) Chain() []string {
	chain := make([]string, 0, len(r.Stops)+2)
	if r.Origin != "" {
		chain = append(chain, r.Origin)
	}
	for _, s := range r.Stops {
		if s != "" {
			chain = append(chain, s)
		}
	}
	if r.Destination != "" {
		chain = append(chain, r.Destination)
	}

	return chain
}

// Hops returns the number of hops in the chain (len(chain) - 1, never negative).
func (r Route) Hops() int {
	n := len(r.Chain()) - 1
	if n < 0 {
		return 0
	}

	return n
}

// Distance resolves the total route distance, using d.DistanceKM when the
// route carries none.
func (r Route) Distance(d Defaults) float64 {
	if r.DistanceKM == nil {
		return d.DistanceKM
	}

	return *r.DistanceKM
}

// HopWeight splits the total distance evenly across the hops of the chain.
// A chain without hops gets a fixed 1.0.
func (r Route) HopWeight(d Defaults) float64 {
	hops := r.Hops()
	if hops == 0 {
		return fallbackHopWeight
	}

	return r.Distance(d) / float64(hops)
}

// Label names the route for diagnostics: its ID when set, otherwise
// "origin->destination".
func (r Route) Label() string {
	if r.ID != "" {
		return r.ID
	}

	return r.Origin + "->" + r.Destination
}

// Static is an in-memory Source.
type Static []Route

// Routes returns a copy of the slice; ctx is unused.
func (s Static) Routes(_ context.Context) ([]Route, error) {
	out := make([]Route, len(s))
	copy(out, s)

	return out, nil
}
