package mapforge

// BoundsMax is the half-size of the world bounding cube used to seed cell
// enumeration (spec.md sec.4.5).
const BoundsMax = 1024.0

// Cell is a convex polytope-as-face-list produced by intersecting the world
// bounding cube with the half-spaces along one root-to-leaf BSP path.
type Cell struct {
	Faces []*Polygon
}

// initialBounds builds the six faces of the axis-aligned bounding cube of
// half-size BoundsMax centered at the origin.
func initialBounds() []*Polygon {
	axes := []struct {
		normal Vector3
		tex    string
	}{
		{Vector3{X: 1}, "bound_x+"},
		{Vector3{X: -1}, "bound_x-"},
		{Vector3{Y: 1}, "bound_y+"},
		{Vector3{Y: -1}, "bound_y-"},
		{Vector3{Z: 1}, "bound_z+"},
		{Vector3{Z: -1}, "bound_z-"},
	}
	faces := make([]*Polygon, len(axes))
	for i, a := range axes {
		plane := &MapPlane{Plane: Plane{Normal: a.normal, D: -BoundsMax}, TexName: a.tex}
		faces[i] = newBoundingQuad(plane, BoundsMax)
	}
	return faces
}

// splitCellUntil walks node, splitting the current convex cell (bounds)
// along the way, until it reaches the leaf targetPolygon belongs to — per
// spec.md sec.4.5.
func splitCellUntil(target *Polygon, bounds []*Polygon, filler *[][]*Polygon, deleted *[]*Polygon, node *BSPNode, eps float64) error {
	if node.Leaf != nil {
		if !node.Leaf.Solid {
			return nil
		}
		*filler = append(*filler, bounds)
		*deleted = append(*deleted, node.Leaf.Polygons...)
		node.Leaf.FillerFaces = bounds
		return nil
	}

	plane := node.Internal.Plane

	var frontCell, backCell []*Polygon
	var splitOccurred bool
	for _, poly := range bounds {
		switch poly.classify(plane, eps) {
		case Front, CoplanarFront:
			frontCell = append(frontCell, poly)
		case Back, CoplanarBack:
			backCell = append(backCell, poly)
		case Coplanar:
			frontCell = append(frontCell, poly)
			backCell = append(backCell, poly)
		case Spanning:
			back, front, err := poly.split(plane, eps)
			if err != nil {
				return err
			}
			frontCell = append(frontCell, front)
			backCell = append(backCell, back)
			splitOccurred = true
		}
	}

	if splitOccurred {
		frontCell = append(frontCell, fixConvexCell(frontCell, plane, eps))
		backCell = append(backCell, fixConvexCell(backCell, plane.Negated(), eps))
	}

	switch target.classify(plane, eps) {
	case Front, CoplanarFront, Coplanar:
		return splitCellUntil(target, frontCell, filler, deleted, node.Internal.Front, eps)
	case Back, CoplanarBack:
		return splitCellUntil(target, backCell, filler, deleted, node.Internal.Back, eps)
	case Spanning:
		back, front, err := target.split(plane, eps)
		if err != nil {
			return err
		}
		if err := splitCellUntil(front, frontCell, filler, deleted, node.Internal.Front, eps); err != nil {
			return err
		}
		return splitCellUntil(back, backCell, filler, deleted, node.Internal.Back, eps)
	}
	return nil
}

// fixConvexCell closes the open side created by splitting bounds along
// plane: it builds a fresh cap Polygon on plane and clips it against the
// existing half-faces' supporting planes in order, keeping only the front
// piece when a clip spans, per spec.md sec.4.5. Clipping stops at the first
// face whose plane has the cap entirely behind it (or at a failed split), and
// the cap is returned as clipped up to that point.
func fixConvexCell(half []*Polygon, plane Plane, eps float64) *Polygon {
	capPlane := &MapPlane{Plane: plane}
	capPoly := newBoundingQuad(capPlane, BoundsMax)

	for _, face := range half {
		side := capPoly.classify(face.SurfacePlane.Plane, eps)
		switch side {
		case Front, CoplanarFront, Coplanar:
			// already entirely in front of (or coplanar with) this face's plane
		case Back, CoplanarBack:
			return capPoly
		case Spanning:
			_, front, err := capPoly.split(face.SurfacePlane.Plane, eps)
			if err != nil {
				return capPoly
			}
			capPoly = front
		}
	}
	return capPoly
}

// GenerateCells implements generateCells(polygons, root) from spec.md
// sec.4.5: repeatedly resolve the first remaining polygon's solid leaf into
// a convex cell, then drop every polygon that leaf consumed as boundary.
// In debug mode it follows up with an explicit coverage pass over the tree
// (checkLeafCoverage) and fails loudly on any solid leaf the loop above
// never reached; outside debug mode that same leaf only gets logged.
func GenerateCells(polygons []*Polygon, root *BSPNode, eps float64, debug bool) ([]Cell, error) {
	remaining := append([]*Polygon(nil), polygons...)
	var cells []Cell

	for len(remaining) > 0 {
		target := remaining[0]
		bounds := initialBounds()
		var filler [][]*Polygon
		var deleted []*Polygon

		if err := splitCellUntil(target, bounds, &filler, &deleted, root, eps); err != nil {
			return nil, err
		}
		for _, f := range filler {
			cells = append(cells, Cell{Faces: f})
		}

		remaining = removePolygons(remaining, deleted)
	}

	if err := checkLeafCoverage(root, debug); err != nil {
		return nil, err
	}

	return cells, nil
}

// checkLeafCoverage walks the tree for solid leaves GenerateCells's main
// loop never resolved into a cell (FillerFaces left nil) — a leaf like that
// is a hole in the enumerated world. It always logs; in debug mode it
// returns an InvariantViolationError for the first one found instead of
// just logging and carrying on.
func checkLeafCoverage(node *BSPNode, debug bool) error {
	if node == nil {
		return nil
	}
	if node.Leaf != nil {
		if node.Leaf.Solid && node.Leaf.FillerFaces == nil {
			mylog.Printf("solid leaf has no cell faces (missed by cell enumeration)")
			if debug {
				return &InvariantViolationError{Detail: "solid leaf left without cell faces"}
			}
		}
		return nil
	}
	if err := checkLeafCoverage(node.Internal.Back, debug); err != nil {
		return err
	}
	return checkLeafCoverage(node.Internal.Front, debug)
}

func removePolygons(list []*Polygon, remove []*Polygon) []*Polygon {
	if len(remove) == 0 {
		return list
	}
	drop := make(map[*Polygon]bool, len(remove))
	for _, p := range remove {
		drop[p] = true
	}
	out := list[:0:0]
	for _, p := range list {
		if !drop[p] {
			out = append(out, p)
		}
	}
	return out
}
