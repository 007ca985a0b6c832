package mapforge

import (
	"image/color"
	"testing"
)

func squarePlane() *MapPlane {
	return &MapPlane{Plane: Plane{Normal: Vector3{Z: 1}, D: 0}}
}

func TestNewPolygonOrdersCCW(t *testing.T) {
	plane := squarePlane()
	pts := []Vector3{
		{X: 1, Y: 1},
		{X: -1, Y: -1},
		{X: 1, Y: -1},
		{X: -1, Y: 1},
	}
	poly := newPolygon(pts, plane, color.RGBA{})
	if len(poly.Points) != 4 {
		t.Fatalf("got %d points, want 4", len(poly.Points))
	}
	if signedAreaSignPts(poly.Points, plane.Normal) < 0 {
		t.Errorf("polygon not wound CCW from front: %v", poly.Points)
	}
}

func TestPolygonClassifyCoplanar(t *testing.T) {
	plane := squarePlane()
	pts := []Vector3{{X: 1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}, {X: -1, Y: 1}}
	poly := newPolygon(pts, plane, color.RGBA{})
	if got := poly.classify(plane.Plane, SideEpsilon); got != Coplanar {
		t.Errorf("classify(self-plane) = %v, want Coplanar", got)
	}
}

func TestPolygonSplitThroughCenter(t *testing.T) {
	plane := squarePlane()
	pts := []Vector3{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}
	poly := newPolygon(pts, plane, color.RGBA{})

	splitter := Plane{Normal: Vector3{X: 1}, D: 0}
	back, front, err := poly.split(splitter, SplitEpsilon)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if len(back.Points) < 3 || len(front.Points) < 3 {
		t.Fatalf("degenerate halves: back=%d front=%d", len(back.Points), len(front.Points))
	}
	if classify(back.Points, splitter, SplitEpsilon) != Back && classify(back.Points, splitter, SplitEpsilon) != CoplanarBack {
		t.Errorf("back half not on back side")
	}
	if classify(front.Points, splitter, SplitEpsilon) != Front && classify(front.Points, splitter, SplitEpsilon) != CoplanarFront {
		t.Errorf("front half not on front side")
	}
}

func TestPolygonTriangulateFan(t *testing.T) {
	plane := squarePlane()
	pts := []Vector3{{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1}}
	poly := &Polygon{SurfacePlane: plane, Points: pts}

	tris := poly.Triangulate()
	if len(tris) != 6 {
		t.Fatalf("got %d triangle vertices, want 6 (2 triangles)", len(tris))
	}
}
