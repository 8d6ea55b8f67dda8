package geo

// Proximity tier weights. Same state is a trivial weekend trip, a
// bordering state is feasible, anything further is possible but not
// ideal.
const (
	SameStateWeight     = 1.0
	NeighborStateWeight = 0.7
	DistantStateWeight  = 0.4
)

// ProximityWeight maps a (source state, destination state) pair to a
// tier weight. A source state absent from the adjacency table simply
// has no neighbors, so unknown states fall through to the distant tier
// rather than erroring. An empty state carries no location information
// and is treated as maximally distant, never as a same-state match.
func (t *Tables) ProximityWeight(sourceState, destState string) float64 {
	if sourceState == "" || destState == "" {
		return DistantStateWeight
	}
	if sourceState == destState {
		return SameStateWeight
	}
	for _, n := range t.Neighbors[sourceState] {
		if n == destState {
			return NeighborStateWeight
		}
	}
	return DistantStateWeight
}
