package mapforge

import (
	"image/color"
	"math"
	"sort"
)

// Polygon is the weaker, identity-free representation a Face is demoted to
// once brush union no longer needs vertex-triple identity: an ordered list
// of 3D points lying on SurfacePlane, wound CCW from the front. Unlike Face,
// a split here doesn't synthesize FaceVertex identities — it just walks the
// point list and intersects edges against the splitter directly.
type Polygon struct {
	SurfacePlane *MapPlane
	Points       []Vector3
	Col          color.RGBA
}

// newPolygon builds a Polygon from an unordered point set on plane by
// sorting the points by angle around their centroid in the plane's tangent
// frame, per spec.md sec.4.2. A small bias away from the true centroid
// breaks ties when points are symmetric about it (e.g. a rectangle), so the
// sort has a single well-defined starting point rather than an ambiguous
// one.
func newPolygon(points []Vector3, plane *MapPlane, col color.RGBA) *Polygon {
	if len(points) < 3 {
		return &Polygon{SurfacePlane: plane, Points: points, Col: col}
	}

	centroid := Vector3{}
	for _, p := range points {
		centroid = centroid.AddV(p)
	}
	centroid = centroid.Scaled(1.0 / float64(len(points)))

	tangent, bitangent := tangentFrame(plane.Normal)
	biased := centroid.AddV(tangent.Scaled(1e-4)).AddV(bitangent.Scaled(1e-4))

	type angled struct {
		p   Vector3
		ang float64
	}
	as := make([]angled, len(points))
	for i, p := range points {
		d := p.SubV(biased)
		as[i] = angled{p: p, ang: math.Atan2(d.DotV(bitangent), d.DotV(tangent))}
	}
	sort.Slice(as, func(i, j int) bool { return as[i].ang < as[j].ang })

	ordered := make([]Vector3, len(as))
	for i, a := range as {
		ordered[i] = a.p
	}

	poly := &Polygon{SurfacePlane: plane, Points: ordered, Col: col}
	if signedAreaSignPts(ordered, plane.Normal) < 0 {
		poly.reverse()
	}
	return poly
}

// newBoundingQuad builds a (half-size * 2)-square Polygon centered on
// plane's projection of the origin, used to seed the initial bounding cube
// faces for cell enumeration (spec.md sec.4.5).
func newBoundingQuad(plane *MapPlane, halfSize float64) *Polygon {
	tangent, bitangent := tangentFrame(plane.Normal)
	origin := plane.Normal.Scaled(-plane.D)

	corners := []Vector3{
		origin.AddV(tangent.Scaled(-halfSize)).AddV(bitangent.Scaled(-halfSize)),
		origin.AddV(tangent.Scaled(halfSize)).AddV(bitangent.Scaled(-halfSize)),
		origin.AddV(tangent.Scaled(halfSize)).AddV(bitangent.Scaled(halfSize)),
		origin.AddV(tangent.Scaled(-halfSize)).AddV(bitangent.Scaled(halfSize)),
	}
	poly := &Polygon{SurfacePlane: plane, Points: corners}
	if signedAreaSignPts(corners, plane.Normal) < 0 {
		poly.reverse()
	}
	return poly
}

// tangentFrame derives an arbitrary orthonormal (tangent, bitangent) basis
// for the plane perpendicular to n. The seed axis is world X, or world Y
// when |n.X| > 0.9, so the seed is never close to parallel to n.
func tangentFrame(n Vector3) (Vector3, Vector3) {
	seed := Vector3{X: 1, Y: 0, Z: 0}
	if math.Abs(n.X) > 0.9 {
		seed = Vector3{X: 0, Y: 1, Z: 0}
	}
	tangent := seed.SubV(n.Scaled(seed.DotV(n))).Normalized()
	bitangent := n.CrossV(tangent)
	return tangent, bitangent
}

func signedAreaSignPts(pts []Vector3, n Vector3) float64 {
	if len(pts) < 3 {
		return 0
	}
	return pts[0].SubV(pts[1]).CrossV(pts[2].SubV(pts[1])).DotV(n)
}

func (p *Polygon) reverse() {
	for i, j := 0, len(p.Points)-1; i < j; i, j = i+1, j-1 {
		p.Points[i], p.Points[j] = p.Points[j], p.Points[i]
	}
}

// classify classifies the polygon's point set against plane.
func (p *Polygon) classify(plane Plane, eps float64) PlaneSide {
	return classify(p.Points, plane, eps)
}

// split divides the polygon along splitter by walking its point list: each
// edge whose endpoints fall on different sides is cut by rayPlane, and a
// coplanar point goes to both halves (spec.md sec.4.2's vertex-based
// split — no FaceVertex identity to preserve here, just the point list).
func (p *Polygon) split(splitter Plane, eps float64) (back, front *Polygon, err error) {
	var backPts, frontPts []Vector3
	n := len(p.Points)
	for i := 0; i < n; i++ {
		a := p.Points[i]
		b := p.Points[(i+1)%n]
		sideA := pointSide(a, splitter, eps)
		sideB := pointSide(b, splitter, eps)

		switch sideA {
		case Back:
			backPts = append(backPts, a)
		case Front:
			frontPts = append(frontPts, a)
		default:
			backPts = append(backPts, a)
			frontPts = append(frontPts, a)
		}

		if (sideA == Front && sideB == Back) || (sideA == Back && sideB == Front) {
			dir := b.SubV(a)
			pt, ok := rayPlane(a, dir, splitter)
			if !ok {
				return nil, nil, &DegenerateGeometryError{Detail: "polygon edge parallel to splitter during split"}
			}
			backPts = append(backPts, pt)
			frontPts = append(frontPts, pt)
		}
	}

	if len(backPts) < 3 || len(frontPts) < 3 {
		return nil, nil, &DegenerateGeometryError{Detail: "polygon split produced a degenerate half"}
	}

	back = &Polygon{SurfacePlane: p.SurfacePlane, Col: p.Col, Points: dedupConsecutivePts(backPts)}
	front = &Polygon{SurfacePlane: p.SurfacePlane, Col: p.Col, Points: dedupConsecutivePts(frontPts)}
	return back, front, nil
}

func dedupConsecutivePts(pts []Vector3) []Vector3 {
	if len(pts) == 0 {
		return pts
	}
	out := make([]Vector3, 0, len(pts))
	for i, p := range pts {
		if len(out) > 0 && out[len(out)-1].ApproxEqual(p, SplitEpsilon) {
			continue
		}
		if i == len(pts)-1 && len(out) > 0 && out[0].ApproxEqual(p, SplitEpsilon) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Triangulate fan-triangulates the polygon from Points[0], producing a flat
// buffer of (x,y,z) vertices ready for a triangle-list render path.
func (p *Polygon) Triangulate() []Vector3 {
	if len(p.Points) < 3 {
		return nil
	}
	out := make([]Vector3, 0, (len(p.Points)-2)*3)
	for i := 1; i < len(p.Points)-1; i++ {
		out = append(out, p.Points[0], p.Points[i], p.Points[i+1])
	}
	return out
}
