package mapforge

// FaceEdge is an ordered pair of FaceVertex plus the set of MapPlanes common
// to both endpoints.
//
// Invariant: the common set has exactly two planes — the two faces sharing
// this edge (the edge's own supporting plane is one of them, the adjacent
// face's supporting plane is the other).
type FaceEdge struct {
	A, B    *FaceVertex
	Carrier [2]*MapPlane
}

// newFaceEdge builds the edge between a and b, deriving Carrier from the
// planes shared by both vertex identities.
func newFaceEdge(a, b *FaceVertex) (*FaceEdge, bool) {
	shared := sharedPlanes(a, b)
	if len(shared) != 2 {
		return nil, false
	}
	return &FaceEdge{A: a, B: b, Carrier: [2]*MapPlane{shared[0], shared[1]}}, true
}

// hasCarrier reports whether p is one of the edge's two carrier planes.
func (fe *FaceEdge) hasCarrier(p *MapPlane) bool {
	return fe.Carrier[0] == p || fe.Carrier[1] == p
}

// otherCarrier returns the carrier plane that is not p.
func (fe *FaceEdge) otherCarrier(p *MapPlane) *MapPlane {
	if fe.Carrier[0] == p {
		return fe.Carrier[1]
	}
	return fe.Carrier[0]
}
