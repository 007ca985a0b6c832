package mapforge

import "testing"

func TestGenerateCellsSingleCube(t *testing.T) {
	polys := unitCubePolygons(t)
	root, err := BuildTree(polys, SideEpsilon)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}

	cells, err := GenerateCells(polys, root, SideEpsilon, false)
	if err != nil {
		t.Fatalf("GenerateCells: %v", err)
	}
	if len(cells) == 0 {
		t.Fatal("expected at least one convex cell for a single solid cube")
	}
	for _, c := range cells {
		if len(c.Faces) < 4 {
			t.Errorf("cell has %d faces, want a closed convex polytope (>=4)", len(c.Faces))
		}
	}
}

func TestGenerateCellsDebugPassesWithFullCoverage(t *testing.T) {
	polys := unitCubePolygons(t)
	root, err := BuildTree(polys, SideEpsilon)
	if err != nil {
		t.Fatalf("BuildTree: %v", err)
	}

	if _, err := GenerateCells(polys, root, SideEpsilon, true); err != nil {
		t.Fatalf("GenerateCells with debug=true on a fully-covered tree: %v", err)
	}
}

func TestInitialBoundsSixFaces(t *testing.T) {
	bounds := initialBounds()
	if len(bounds) != 6 {
		t.Fatalf("got %d bounding faces, want 6", len(bounds))
	}
	for _, f := range bounds {
		if len(f.Points) != 4 {
			t.Errorf("bounding face has %d points, want 4", len(f.Points))
		}
	}
}
