package mapforge

// BSPNode is a tagged-variant BSP tree node: either an internal split node
// or a leaf. Leaf is further split between empty (no boundary, a void
// region) and solid (bounded by the Polygons that terminated recursion on
// this side) — FillerFaces is populated later, during cell enumeration.
type BSPNode struct {
	Internal *InternalNode
	Leaf     *LeafNode
}

type InternalNode struct {
	Plane Plane
	Back  *BSPNode
	Front *BSPNode
}

type LeafNode struct {
	Solid       bool
	Polygons    []*Polygon
	FillerFaces []*Polygon
}

func internalNode(plane Plane, back, front *BSPNode) *BSPNode {
	return &BSPNode{Internal: &InternalNode{Plane: plane, Back: back, Front: front}}
}

func emptyLeaf() *BSPNode {
	return &BSPNode{Leaf: &LeafNode{Solid: false}}
}

func solidLeaf(polygons []*Polygon) *BSPNode {
	return &BSPNode{Leaf: &LeafNode{Solid: true, Polygons: polygons}}
}

// candidatePolygon is a polygon tagged with whether it has already served
// as a pivot, per buildTree's bookkeeping in spec.md sec.4.4.
type candidatePolygon struct {
	poly *Polygon
	used bool
}

// BuildTree constructs a BSP tree from a flat polygon list per spec.md
// sec.4.4: the first unused polygon in list order becomes the pivot at
// each recursive step, and every polygon is consumed exactly once.
func BuildTree(polygons []*Polygon, eps float64) (*BSPNode, error) {
	cands := make([]*candidatePolygon, len(polygons))
	for i, p := range polygons {
		cands[i] = &candidatePolygon{poly: p}
	}
	return buildTree(cands, eps)
}

func buildTree(cands []*candidatePolygon, eps float64) (*BSPNode, error) {
	pivotIdx := -1
	for i, c := range cands {
		if !c.used {
			pivotIdx = i
			break
		}
	}
	if pivotIdx == -1 {
		return nil, &InvariantViolationError{Detail: "BSP recursion reached a polygon list with no unused polygon"}
	}

	pivot := cands[pivotIdx]
	pivot.used = true
	// The split plane is the pivot's surface plane flipped, so a node's front
	// side is the side behind the pivot face: the solid interior for outward
	// brush normals. Front children therefore end in solid leaves and back
	// children in empty ones.
	pivotNormal := pivot.poly.SurfacePlane.Normal
	plane := pivot.poly.SurfacePlane.Plane.Negated()

	var back, front []*candidatePolygon
	for _, c := range cands {
		if c == pivot {
			front = append(front, c)
			continue
		}
		switch c.poly.classify(plane, eps) {
		case Front, CoplanarFront:
			front = append(front, c)
		case Back, CoplanarBack:
			back = append(back, c)
		case Coplanar:
			if c.poly.SurfacePlane.Normal.DotV(pivotNormal) > 0 {
				front = append(front, c)
			} else {
				back = append(back, c)
			}
		case Spanning:
			bp, fp, err := c.poly.split(plane, eps)
			if err != nil {
				return nil, err
			}
			back = append(back, &candidatePolygon{poly: bp, used: c.used})
			front = append(front, &candidatePolygon{poly: fp, used: c.used})
		}
	}

	backChild, err := buildBackChild(back, eps)
	if err != nil {
		return nil, err
	}
	frontChild, err := buildFrontChild(front, eps)
	if err != nil {
		return nil, err
	}

	return internalNode(plane, backChild, frontChild), nil
}

func buildBackChild(back []*candidatePolygon, eps float64) (*BSPNode, error) {
	if allUsed(back) {
		return emptyLeaf(), nil
	}
	return buildTree(back, eps)
}

func buildFrontChild(front []*candidatePolygon, eps float64) (*BSPNode, error) {
	if allUsed(front) {
		polys := make([]*Polygon, len(front))
		for i, c := range front {
			polys[i] = c.poly
		}
		return solidLeaf(polys), nil
	}
	return buildTree(front, eps)
}

func allUsed(cands []*candidatePolygon) bool {
	if len(cands) == 0 {
		return true
	}
	for _, c := range cands {
		if !c.used {
			return false
		}
	}
	return true
}
