package mapforge

import "image/color"

// Brush is a convex polyhedron defined by its supporting planes. Faces are
// built once from the planes and then reshaped in place by union clipping.
type Brush struct {
	Planes []*MapPlane
	Faces  []*Face
	Min    Vector3
	Max    Vector3
}

// NewBrushFromPlanes builds a Brush's faces from its supporting planes per
// spec.md sec.4.3: every ordered triple (i,j,k), i<j<k, is intersected to
// produce a candidate FaceVertex; vertices sharing a given plane are then
// walked into an ordered face cycle for that plane. Planes that end up with
// fewer than 3 surviving candidates (degenerate/redundant plane, common
// when a brush has more half-spaces than necessary) contribute no face.
func NewBrushFromPlanes(planes []*MapPlane) (*Brush, error) {
	if len(planes) < 4 {
		return nil, &InvariantViolationError{Detail: "brush needs at least 4 supporting planes"}
	}

	var candidates []*FaceVertex
	for i := 0; i < len(planes); i++ {
		for j := i + 1; j < len(planes); j++ {
			for k := j + 1; k < len(planes); k++ {
				pt, ok := intersect3(planes[i].Plane, planes[j].Plane, planes[k].Plane)
				if !ok {
					continue
				}
				candidates = append(candidates, newFaceVertex(planes[i], planes[j], planes[k], pt))
			}
		}
	}

	b := &Brush{Planes: planes}
	haveBounds := false

	for _, p := range planes {
		var onPlane []*FaceVertex
		for _, c := range candidates {
			if c.hasPlane(p) {
				onPlane = append(onPlane, c)
			}
		}
		if len(onPlane) < 3 {
			continue
		}
		verts, edges, ok := orderFaceVertices(p, onPlane)
		if !ok {
			continue
		}
		face := &Face{SurfacePlane: p, Vertices: verts, Edges: edges, Col: color.RGBA{R: 200, G: 200, B: 200, A: 255}}
		b.Faces = append(b.Faces, face)

		for _, pt := range face.Points() {
			if !haveBounds {
				b.Min, b.Max = pt, pt
				haveBounds = true
				continue
			}
			b.Min = Vector3{X: min(b.Min.X, pt.X), Y: min(b.Min.Y, pt.Y), Z: min(b.Min.Z, pt.Z)}
			b.Max = Vector3{X: max(b.Max.X, pt.X), Y: max(b.Max.Y, pt.Y), Z: max(b.Max.Z, pt.Z)}
		}
	}

	if len(b.Faces) == 0 {
		return nil, &InvariantViolationError{Detail: "brush produced no faces from its planes"}
	}
	return b, nil
}

// UnionBrushes computes the boolean union of brushes by clipping each
// brush's faces against every other brush's supporting-plane volume, per
// spec.md sec.4.3. Input order is load-bearing: it fixes which of two
// brushes keeps a coincident shared face via the keepShared tie-break.
func UnionBrushes(brushes []*Brush, eps float64) ([]*Face, error) {
	var result []*Face

	for bi, b := range brushes {
		faces := append([]*Face(nil), b.Faces...)

		keepShared := false
		for oi, o := range brushes {
			if oi == bi {
				keepShared = true
				continue
			}
			var clipped []*Face
			for _, f := range faces {
				pieces, err := clipFace(f, keepShared, o.Planes, 0, eps)
				if err != nil {
					return nil, wrapf(err, "clipping brush %d face against brush %d", bi, oi)
				}
				clipped = append(clipped, pieces...)
			}
			faces = clipped
		}

		result = append(result, faces...)
	}

	return result, nil
}

// clipFace is Clip(face, keepShared, volume, idx) from spec.md sec.4.3.
func clipFace(face *Face, keepShared bool, volume []*MapPlane, idx int, eps float64) ([]*Face, error) {
	if idx >= len(volume) {
		return nil, nil
	}
	plane := volume[idx]
	side := face.classify(plane.Plane, eps)

	switch side {
	case Back, CoplanarBack:
		return clipFace(face, keepShared, volume, idx+1, eps)

	case Front, CoplanarFront:
		return []*Face{face}, nil

	case Coplanar:
		if face.SurfacePlane.Normal.DotV(plane.Normal) > 0 && !keepShared {
			return []*Face{face}, nil
		}
		return clipFace(face, keepShared, volume, idx+1, eps)

	case Spanning:
		back, front, err := face.split(plane, eps)
		if err != nil {
			return nil, err
		}
		if idx+1 >= len(volume) {
			return []*Face{front}, nil
		}
		backResult, err := clipFace(back, keepShared, volume, idx+1, eps)
		if err != nil {
			return nil, err
		}
		if len(backResult) == 0 {
			return []*Face{front}, nil
		}
		if len(backResult) == 1 && backResult[0] == back {
			return []*Face{face}, nil
		}
		return append([]*Face{front}, backResult...), nil
	}

	return nil, &InvariantViolationError{Detail: "unreachable plane side in clipFace"}
}
