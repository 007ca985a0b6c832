package mapforge

import "testing"

func TestClassifyTruthTable(t *testing.T) {
	plane := Plane{Normal: Vector3{X: 1}, D: 0}

	cases := []struct {
		name   string
		points []Vector3
		want   PlaneSide
	}{
		{"all front", []Vector3{{X: 1}, {X: 2}, {X: 3}}, Front},
		{"all back", []Vector3{{X: -1}, {X: -2}}, Back},
		{"all coplanar", []Vector3{{X: 0}, {X: 0}}, Coplanar},
		{"front+coplanar", []Vector3{{X: 1}, {X: 0}}, CoplanarFront},
		{"back+coplanar", []Vector3{{X: -1}, {X: 0}}, CoplanarBack},
		{"front+back spanning", []Vector3{{X: 1}, {X: -1}}, Spanning},
		{"front+back+coplanar spanning", []Vector3{{X: 1}, {X: -1}, {X: 0}}, Spanning},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := classify(c.points, plane, SideEpsilon)
			if got != c.want {
				t.Errorf("classify(%v) = %v, want %v", c.points, got, c.want)
			}
		})
	}
}

func TestIntersect3UnitCubeCorner(t *testing.T) {
	px := Plane{Normal: Vector3{X: 1}, D: 0}
	py := Plane{Normal: Vector3{Y: 1}, D: 0}
	pz := Plane{Normal: Vector3{Z: 1}, D: 0}

	pt, ok := intersect3(px, py, pz)
	if !ok {
		t.Fatal("expected intersection")
	}
	if !pt.ApproxEqual(Vector3{}, 1e-9) {
		t.Errorf("got %v, want origin", pt)
	}
}

func TestIntersect3Degenerate(t *testing.T) {
	p0 := Plane{Normal: Vector3{X: 1}, D: 0}
	p1 := Plane{Normal: Vector3{X: 1}, D: -1}
	p2 := Plane{Normal: Vector3{Y: 1}, D: 0}

	_, ok := intersect3(p0, p1, p2)
	if ok {
		t.Fatal("expected degenerate (parallel) intersection to fail")
	}
}

func TestRayPlane(t *testing.T) {
	plane := Plane{Normal: Vector3{Z: 1}, D: -10}
	pt, ok := rayPlane(Vector3{}, Vector3{Z: 1}, plane)
	if !ok {
		t.Fatal("expected hit")
	}
	if !pt.ApproxEqual(Vector3{Z: 10}, 1e-9) {
		t.Errorf("got %v, want z=10", pt)
	}
}

func TestNewPlaneFromPoints(t *testing.T) {
	p := NewPlaneFromPoints(Vector3{}, Vector3{X: 1}, Vector3{Y: 1})
	if !p.Normal.ApproxEqual(Vector3{Z: 1}, 1e-9) {
		t.Errorf("normal = %v, want +Z", p.Normal)
	}
}
