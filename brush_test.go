package mapforge

import "testing"

// cubePlanes returns the 6 supporting planes of an axis-aligned cube
// spanning [min,max] on every axis. Normals point outward, matching what
// NewPlaneFromPoints produces for a map-parsed brush (interior classifies
// Back, not Front).
func cubePlanes(min, max float64) []*MapPlane {
	return []*MapPlane{
		{Plane: Plane{Normal: Vector3{X: -1}, D: min}},
		{Plane: Plane{Normal: Vector3{X: 1}, D: -max}},
		{Plane: Plane{Normal: Vector3{Y: -1}, D: min}},
		{Plane: Plane{Normal: Vector3{Y: 1}, D: -max}},
		{Plane: Plane{Normal: Vector3{Z: -1}, D: min}},
		{Plane: Plane{Normal: Vector3{Z: 1}, D: -max}},
	}
}

func TestNewBrushFromPlanesUnitCube(t *testing.T) {
	b, err := NewBrushFromPlanes(cubePlanes(0, 1))
	if err != nil {
		t.Fatalf("NewBrushFromPlanes: %v", err)
	}
	if len(b.Faces) != 6 {
		t.Fatalf("got %d faces, want 6", len(b.Faces))
	}
	for _, f := range b.Faces {
		if len(f.Vertices) != 4 {
			t.Errorf("face has %d vertices, want 4", len(f.Vertices))
		}
	}
	if !b.Min.ApproxEqual(Vector3{}, 1e-9) || !b.Max.ApproxEqual(Vector3{X: 1, Y: 1, Z: 1}, 1e-9) {
		t.Errorf("bounds = [%v,%v], want [0,1]", b.Min, b.Max)
	}
}

func TestUnionSingleBrushIdentity(t *testing.T) {
	b, err := NewBrushFromPlanes(cubePlanes(0, 1))
	if err != nil {
		t.Fatalf("NewBrushFromPlanes: %v", err)
	}
	faces, err := UnionBrushes([]*Brush{b}, SideEpsilon)
	if err != nil {
		t.Fatalf("UnionBrushes: %v", err)
	}
	if len(faces) != len(b.Faces) {
		t.Errorf("union([B]) produced %d faces, want %d (identity)", len(faces), len(b.Faces))
	}
}

func TestUnionDisjointBrushesKeepsBothFaceSets(t *testing.T) {
	a, err := NewBrushFromPlanes(cubePlanes(0, 1))
	if err != nil {
		t.Fatalf("brush A: %v", err)
	}
	bPlanes := cubePlanes(10, 11)
	b, err := NewBrushFromPlanes(bPlanes)
	if err != nil {
		t.Fatalf("brush B: %v", err)
	}

	faces, err := UnionBrushes([]*Brush{a, b}, SideEpsilon)
	if err != nil {
		t.Fatalf("UnionBrushes: %v", err)
	}
	if len(faces) != len(a.Faces)+len(b.Faces) {
		t.Errorf("disjoint union produced %d faces, want %d unchanged", len(faces), len(a.Faces)+len(b.Faces))
	}
}

func TestUnionOverlappingCubesDropsInteriorFaces(t *testing.T) {
	a, err := NewBrushFromPlanes(cubePlanes(0, 1))
	if err != nil {
		t.Fatalf("brush A: %v", err)
	}
	// B translated by 0.5 on X, per the spec's S2 scenario.
	bPlanes := []*MapPlane{
		{Plane: Plane{Normal: Vector3{X: -1}, D: 0.5}},
		{Plane: Plane{Normal: Vector3{X: 1}, D: -1.5}},
		{Plane: Plane{Normal: Vector3{Y: -1}, D: 0}},
		{Plane: Plane{Normal: Vector3{Y: 1}, D: -1}},
		{Plane: Plane{Normal: Vector3{Z: -1}, D: 0}},
		{Plane: Plane{Normal: Vector3{Z: 1}, D: -1}},
	}
	b, err := NewBrushFromPlanes(bPlanes)
	if err != nil {
		t.Fatalf("brush B: %v", err)
	}

	faces, err := UnionBrushes([]*Brush{a, b}, SideEpsilon)
	if err != nil {
		t.Fatalf("UnionBrushes: %v", err)
	}

	// A's x=1 face and B's x=0.5 face lie inside the other cube, so union
	// must clip them away entirely, leaving fewer faces than the two cubes
	// have unclipped.
	if len(faces) == 0 {
		t.Fatal("union produced no faces")
	}
	for _, f := range faces {
		onX := func(x float64) bool {
			for _, p := range f.Points() {
				if p.X < x-1e-9 || p.X > x+1e-9 {
					return false
				}
			}
			return true
		}
		if onX(1) || onX(0.5) {
			t.Errorf("union kept an interior face lying on x=%v", f.Points()[0].X)
		}
	}
	if len(faces) >= len(a.Faces)+len(b.Faces) {
		t.Errorf("union of overlapping cubes produced %d faces, expected fewer than the %d unclipped", len(faces), len(a.Faces)+len(b.Faces))
	}
}

func TestUnionContainedBrushKeepsOnlyOuter(t *testing.T) {
	outer, err := NewBrushFromPlanes(cubePlanes(0, 10))
	if err != nil {
		t.Fatalf("brush outer: %v", err)
	}
	inner, err := NewBrushFromPlanes(cubePlanes(2, 8))
	if err != nil {
		t.Fatalf("brush inner: %v", err)
	}

	faces, err := UnionBrushes([]*Brush{outer, inner}, SideEpsilon)
	if err != nil {
		t.Fatalf("UnionBrushes: %v", err)
	}
	if len(faces) != len(outer.Faces) {
		t.Errorf("union([outer,inner]) produced %d faces, want %d (outer only)", len(faces), len(outer.Faces))
	}
}
