package mapforge

import "image/color"

// Face is a planar convex polygon on a MapPlane: an ordered cycle of
// FaceVertex and a parallel cycle of FaceEdge. Ordering is counter-clockwise
// when viewed from the front of the surface plane.
//
// Invariant: edge i joins vertex i to vertex (i+1)%k; cycle length >= 3.
type Face struct {
	SurfacePlane *MapPlane
	Vertices     []*FaceVertex
	Edges        []*FaceEdge
	Col          color.RGBA
}

// orderFaceVertices walks the adjacency of candidate vertices that share
// plane P to produce a closed, CCW-from-front cycle, per spec.md sec.4.3:
// start anywhere, repeatedly pick an unused vertex sharing exactly two of
// its three planes with the current one (a FaceEdge exists between them).
func orderFaceVertices(p *MapPlane, candidates []*FaceVertex) ([]*FaceVertex, []*FaceEdge, bool) {
	if len(candidates) < 3 {
		return nil, nil, false
	}

	used := make([]bool, len(candidates))
	ordered := make([]*FaceVertex, 0, len(candidates))
	edges := make([]*FaceEdge, 0, len(candidates))

	ordered = append(ordered, candidates[0])
	used[0] = true

	for len(ordered) < len(candidates) {
		current := ordered[len(ordered)-1]
		found := -1
		for i, cand := range candidates {
			if used[i] {
				continue
			}
			if len(sharedPlanes(current, cand)) == 2 {
				found = i
				break
			}
		}
		if found == -1 {
			return nil, nil, false
		}
		edge, ok := newFaceEdge(current, candidates[found])
		if !ok {
			return nil, nil, false
		}
		edges = append(edges, edge)
		ordered = append(ordered, candidates[found])
		used[found] = true
	}

	closing, ok := newFaceEdge(ordered[len(ordered)-1], ordered[0])
	if !ok {
		return nil, nil, false
	}
	edges = append(edges, closing)

	if signedAreaSign(ordered, p.Normal) < 0 {
		reverseVertices(ordered)
		reverseEdges(edges)
	}

	return ordered, edges, true
}

// signedAreaSign is the sign of (v0-v1) x (v2-v1) . n that orderFaceVertices
// uses to pick the winding; polygon.go's signedAreaSignPts is the same test
// on a plain point list.
func signedAreaSign(vs []*FaceVertex, n Vector3) float64 {
	if len(vs) < 3 {
		return 0
	}
	v0, v1, v2 := vs[0].Point(), vs[1].Point(), vs[2].Point()
	return v0.SubV(v1).CrossV(v2.SubV(v1)).DotV(n)
}

func reverseVertices(vs []*FaceVertex) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}

// reverseEdges rewrites the edge cycle to match a vertex cycle reversed by
// reverseVertices: with k edges, new edge i is old edge (k-2-i) mod k with
// its endpoints swapped, so edge i again joins vertex i to vertex i+1.
func reverseEdges(es []*FaceEdge) {
	k := len(es)
	old := append([]*FaceEdge(nil), es...)
	for i := range es {
		e := old[(2*k-2-i)%k]
		es[i] = &FaceEdge{A: e.B, B: e.A, Carrier: e.Carrier}
	}
}

// Points returns the face's vertex positions in cycle order.
func (f *Face) Points() []Vector3 {
	pts := make([]Vector3, len(f.Vertices))
	for i, v := range f.Vertices {
		pts[i] = v.Point()
	}
	return pts
}

// classify classifies the face's vertex set against plane.
func (f *Face) classify(plane Plane, eps float64) PlaneSide {
	return classify(f.Points(), plane, eps)
}

// ToPolygon demotes a Face to the weaker, identity-free Polygon
// representation used once union/clipping no longer needs vertex identity
// (spec.md sec.3's Polygon: "used after the vertex-triple identity is no
// longer needed, during BSP").
func (f *Face) ToPolygon() *Polygon {
	return newPolygon(f.Points(), f.SurfacePlane, f.Col)
}

// split divides a Face along splitter using the edge-based procedure of
// spec.md sec.4.3: for each edge with common carrier planes {Q,R}, a side
// change synthesizes a new FaceVertex {Q,R,splitter}; coplanar endpoints go
// to both halves (resolving the open question in spec.md sec.9 the same way
// Polygon.split does).
func (f *Face) split(splitter *MapPlane, eps float64) (back, front *Face, err error) {
	var backVerts, frontVerts []*FaceVertex

	n := len(f.Vertices)
	for i := 0; i < n; i++ {
		a := f.Vertices[i]
		b := f.Vertices[(i+1)%n]
		edge := f.Edges[i]

		sideA := pointSide(a.Point(), splitter.Plane, eps)
		sideB := pointSide(b.Point(), splitter.Plane, eps)

		switch sideA {
		case Back:
			backVerts = append(backVerts, a)
		case Front:
			frontVerts = append(frontVerts, a)
		default:
			backVerts = append(backVerts, a)
			frontVerts = append(frontVerts, a)
		}

		crosses := (sideA == Front && sideB == Back) || (sideA == Back && sideB == Front)
		if crosses {
			q, r := edge.Carrier[0], edge.Carrier[1]
			point, ok := intersect3(q.Plane, r.Plane, splitter.Plane)
			if !ok {
				return nil, nil, &DegenerateGeometryError{Planes: [3]*MapPlane{q, r, splitter}}
			}
			nv := newFaceVertex(q, r, splitter, point)
			backVerts = append(backVerts, nv)
			frontVerts = append(frontVerts, nv)
		}
	}

	if len(backVerts) < 3 || len(frontVerts) < 3 {
		return nil, nil, &DegenerateGeometryError{Detail: "face split produced a degenerate half"}
	}

	back = &Face{SurfacePlane: f.SurfacePlane, Col: f.Col, Vertices: dedupConsecutive(backVerts)}
	front = &Face{SurfacePlane: f.SurfacePlane, Col: f.Col, Vertices: dedupConsecutive(frontVerts)}
	back.Edges = rebuildCycleEdges(back.Vertices)
	front.Edges = rebuildCycleEdges(front.Vertices)
	return back, front, nil
}

// dedupConsecutive drops a consecutive repeat of the same vertex: either the
// same plane-triple identity (sameVertex — two cycle entries for the
// identical polyhedron vertex) or, since a coplanar vertex can be followed
// by a synthesized intersection at that same point under a different
// identity, mere point coincidence.
func dedupConsecutive(vs []*FaceVertex) []*FaceVertex {
	if len(vs) == 0 {
		return vs
	}
	repeats := func(a, b *FaceVertex) bool {
		return sameVertex(a, b) || a.Point().ApproxEqual(b.Point(), SplitEpsilon)
	}
	out := make([]*FaceVertex, 0, len(vs))
	for i, v := range vs {
		prev := out
		if len(prev) > 0 && repeats(prev[len(prev)-1], v) {
			continue
		}
		if i == len(vs)-1 && len(out) > 0 && repeats(out[0], v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// rebuildCycleEdges reconstructs the parallel FaceEdge cycle for a vertex
// cycle produced by split: edge i's carrier planes are whatever the two
// vertices actually share. Since a synthesized vertex now carries its full
// {Q,R,splitter} triple (see split), this is almost always 2 planes; the
// 1-plane case only arises between two splitter-introduced vertices that
// share nothing but the splitter itself, and is carried as a degenerate
// (duplicated) carrier pair rather than treated as an error.
func rebuildCycleEdges(vs []*FaceVertex) []*FaceEdge {
	n := len(vs)
	edges := make([]*FaceEdge, n)
	for i := 0; i < n; i++ {
		a, b := vs[i], vs[(i+1)%n]
		shared := sharedPlanes(a, b)
		var carrier [2]*MapPlane
		switch len(shared) {
		case 2:
			carrier = [2]*MapPlane{shared[0], shared[1]}
		case 1:
			carrier = [2]*MapPlane{shared[0], shared[0]}
		}
		edges[i] = &FaceEdge{A: a, B: b, Carrier: carrier}
	}
	return edges
}
