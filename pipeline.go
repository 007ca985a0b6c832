package mapforge

import (
	"image/color"
	"math/rand"
)

// PipelineOptions carries the knobs BuildPipeline runs with. The geometry
// core's split/intersection epsilons are fixed constants (spec.md sec.3);
// SideEpsilon is the one tolerance a caller plausibly wants to loosen when
// debugging a map with badly-aligned brushes, so it's the one exposed here.
type PipelineOptions struct {
	SideEpsilon float64
	ColorSeed   int64
	// Debug turns cell enumeration's coverage check (spec.md sec.9) into a
	// hard failure instead of a log line: any solid BSP leaf the cell pass
	// never reaches becomes an InvariantViolationError.
	Debug bool
}

func (o PipelineOptions) sideEps() float64 {
	if o.SideEpsilon == 0 {
		return SideEpsilon
	}
	return o.SideEpsilon
}

// RenderData is buildPipeline's output: a flat triangle vertex buffer ready
// for upload, the BSP tree for spatial queries, and the per-solid-leaf
// convex cells.
type RenderData struct {
	Vertices []Vertex
	BSPRoot  *BSPNode
	Cells    []Cell
}

// Vertex is one (position, color) pair in the triangulated vertex buffer.
type Vertex struct {
	Position Vector3
	Color    color.RGBA
}

// BuildPipeline runs the full map->renderable-geometry pipeline described in
// spec.md sec.6: parse, build a brush per brush block in the first entity,
// union them, flatten to polygons, build the BSP tree, enumerate cells, and
// fan-triangulate with a deterministic per-polygon color drawn from a
// seeded random source (never the global rand, so repeated runs of the
// same map with the same seed reproduce the same vertex buffer).
func BuildPipeline(mapText string, opts PipelineOptions) (*RenderData, error) {
	entities, err := ParseMap(mapText)
	if err != nil {
		return nil, wrapf(err, "parsing map")
	}
	if len(entities) == 0 {
		return nil, &InvariantViolationError{Detail: "map contains no entities"}
	}

	eps := opts.sideEps()

	var brushes []*Brush
	for bi, planes := range entities[0].Brushes {
		b, err := NewBrushFromPlanes(planes)
		if err != nil {
			return nil, wrapf(err, "building brush %d", bi)
		}
		brushes = append(brushes, b)
	}
	if len(brushes) == 0 {
		return nil, &InvariantViolationError{Detail: "first entity has no brushes"}
	}

	faces, err := UnionBrushes(brushes, eps)
	if err != nil {
		return nil, wrapf(err, "union of brushes")
	}

	rng := rand.New(rand.NewSource(opts.ColorSeed))
	polygons := make([]*Polygon, len(faces))
	for i, f := range faces {
		col := randomColor(rng)
		f.Col = col
		polygons[i] = f.ToPolygon()
	}

	root, err := BuildTree(polygons, eps)
	if err != nil {
		return nil, wrapf(err, "building BSP tree")
	}

	cells, err := GenerateCells(polygons, root, eps, opts.Debug)
	if err != nil {
		return nil, wrapf(err, "enumerating cells")
	}

	var vertices []Vertex
	for _, p := range polygons {
		for _, pt := range p.Triangulate() {
			vertices = append(vertices, Vertex{Position: pt, Color: p.Col})
		}
	}

	return &RenderData{Vertices: vertices, BSPRoot: root, Cells: cells}, nil
}

func randomColor(rng *rand.Rand) color.RGBA {
	return color.RGBA{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
}
