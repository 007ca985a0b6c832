package mapforge

import (
	"encoding/json"
	"log"
	"os"
)

// mylog is the package's diagnostic logger. The teacher's renderer code
// writes straight to the standard logger; the geometry core routes through
// this instead so a caller embedding the package can redirect it.
var mylog = log.New(os.Stderr, "mapforge: ", log.LstdFlags)

// jsonPlane and the two node shapes below are the "schema freely defined"
// debug dump from spec.md sec.6: {plane:{n:[x,y,z],d},back,front} for
// internal nodes, {solid:bool,faces:[[x,y,z]...]} for leaves.
type jsonPlane struct {
	N [3]float64 `json:"n"`
	D float64    `json:"d"`
}

type jsonNode struct {
	Plane *jsonPlane     `json:"plane,omitempty"`
	Back  *jsonNode      `json:"back,omitempty"`
	Front *jsonNode      `json:"front,omitempty"`
	Solid *bool          `json:"solid,omitempty"`
	Faces [][][3]float64 `json:"faces,omitempty"`
}

func toJSONNode(n *BSPNode) *jsonNode {
	if n == nil {
		return nil
	}
	if n.Leaf != nil {
		solid := n.Leaf.Solid
		faces := make([][][3]float64, len(n.Leaf.Polygons))
		for i, p := range n.Leaf.Polygons {
			pts := make([][3]float64, len(p.Points))
			for j, pt := range p.Points {
				pts[j] = [3]float64{pt.X, pt.Y, pt.Z}
			}
			faces[i] = pts
		}
		return &jsonNode{Solid: &solid, Faces: faces}
	}
	return &jsonNode{
		Plane: &jsonPlane{N: [3]float64{n.Internal.Plane.Normal.X, n.Internal.Plane.Normal.Y, n.Internal.Plane.Normal.Z}, D: n.Internal.Plane.D},
		Back:  toJSONNode(n.Internal.Back),
		Front: toJSONNode(n.Internal.Front),
	}
}

// WriteBSPTree writes a JSON dump of root to path, per spec.md sec.6's
// debug output: a JSON dump of the BSP structure.
func WriteBSPTree(path string, root *BSPNode) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapf(err, "creating debug dump %s", path)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toJSONNode(root)); err != nil {
		return wrapf(err, "encoding debug dump %s", path)
	}

	mylog.Printf("wrote BSP debug dump to %s", path)
	return nil
}
