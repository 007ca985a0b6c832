package mapforge

import "math"

// Named epsilons, per the fixed tolerances a brush/BSP pipeline depends on.
// These are never meant to be literals scattered through the split/classify
// code below. PipelineOptions can override the side tolerance only; the
// other three are fixed.
//
// Polygon.split and Face.split test each vertex with the eps their caller
// passes; union, BSP construction and cell enumeration all pass the side
// tolerance, so SplitEpsilon is used only to merge coincident consecutive
// points after a split.
const (
	SideEpsilon      = 1e-3 // point-to-plane classification
	SplitEpsilon     = 1e-6 // merging coincident points after a split
	IntersectEpsilon = 1e-7 // 3-plane intersection determinant
	RayEpsilon       = 1e-6 // ray/plane denominator
)

// Plane is an oriented half-space: n·x + d = 0, front is n·x + d > 0.
type Plane struct {
	Normal Vector3
	D      float64
}

// NewPlaneFromPoints builds the plane through v0, v1, v2 with normal
// (v1-v0) x (v2-v0), matching the map format's planeFromPoints.
func NewPlaneFromPoints(v0, v1, v2 Vector3) Plane {
	e1 := v1.SubV(v0)
	e2 := v2.SubV(v0)
	n := e1.CrossV(e2)
	n = n.Normalized()
	return Plane{Normal: n, D: -n.DotV(v0)}
}

// Negated returns the plane with its half-space flipped.
func (p Plane) Negated() Plane {
	return Plane{Normal: Vector3{X: -p.Normal.X, Y: -p.Normal.Y, Z: -p.Normal.Z}, D: -p.D}
}

// PlaneSide is the outcome of classifying a point, or a set of points, against a plane.
type PlaneSide int

const (
	Coplanar PlaneSide = iota
	Front
	Back
	Spanning
	CoplanarFront
	CoplanarBack
)

// pointSide classifies a single point against a plane using the given epsilon.
func pointSide(p Vector3, plane Plane, eps float64) PlaneSide {
	s := plane.Normal.DotV(p) + plane.D
	switch {
	case s < -eps:
		return Back
	case s > eps:
		return Front
	default:
		return Coplanar
	}
}

// classify tallies the side of every point against plane and resolves the
// truth table from spec.md sec.4.1: all-one-side is that side, mixed
// front+back is Spanning (even in the presence of coplanar points),
// coplanar+front-only is CoplanarFront, coplanar+back-only is CoplanarBack,
// all-coplanar is Coplanar.
func classify(points []Vector3, plane Plane, eps float64) PlaneSide {
	var nFront, nBack, nCoplanar int
	for _, p := range points {
		switch pointSide(p, plane, eps) {
		case Front:
			nFront++
		case Back:
			nBack++
		default:
			nCoplanar++
		}
	}
	switch {
	case nFront > 0 && nBack > 0:
		return Spanning
	case nFront > 0 && nCoplanar > 0:
		return CoplanarFront
	case nFront > 0:
		return Front
	case nBack > 0 && nCoplanar > 0:
		return CoplanarBack
	case nBack > 0:
		return Back
	default:
		return Coplanar
	}
}

// intersect3 solves the 3-plane system with Cramer's rule. Returns ok=false
// (DegenerateGeometry) when the planes' normals are within IntersectEpsilon
// of coplanar/parallel (|det| too small).
func intersect3(p0, p1, p2 Plane) (Vector3, bool) {
	n0, n1, n2 := p0.Normal, p1.Normal, p2.Normal
	det := n0.CrossV(n1).DotV(n2)
	if math.Abs(det) < IntersectEpsilon {
		return Vector3{}, false
	}

	t0 := n1.CrossV(n2).Scaled(-p0.D)
	t1 := n2.CrossV(n0).Scaled(-p1.D)
	t2 := n0.CrossV(n1).Scaled(-p2.D)
	sum := t0.AddV(t1).AddV(t2)
	return sum.Scaled(1.0 / det), true
}

// rayPlane intersects the line through origin with direction dir (need not
// be unit) against plane. ok=false when the line is within RayEpsilon of
// parallel to the plane.
func rayPlane(origin, dir Vector3, plane Plane) (Vector3, bool) {
	denom := plane.Normal.DotV(dir)
	if math.Abs(denom) < RayEpsilon {
		return Vector3{}, false
	}
	t := (-plane.D - plane.Normal.DotV(origin)) / denom
	return origin.AddV(dir.Scaled(t)), true
}
