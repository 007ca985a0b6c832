package mapforge

import (
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func readMapFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// nearPlaneZ and conversionFactor are the same projection constants the
// teacher's BSP painter used: points closer than nearPlaneZ to the camera
// are dropped rather than clipped, and conversionFactor/z is the pinhole
// perspective divide.
const (
	nearPlaneZ       = 25.0
	conversionFactor = 700.0
)

// World is the render front end: a camera plus the geometry produced by
// BuildPipeline. Painting walks the BSP tree back-to-front from the
// camera's position so farther polygons are drawn first and nearer ones
// overdraw them, the classic BSP painter's algorithm.
type World struct {
	camera *Camera
	data   *RenderData
}

func NewWorld(camera *Camera, data *RenderData) *World {
	return &World{camera: camera, data: data}
}

// Paint walks the BSP tree and rasterizes every solid leaf's boundary
// polygons in back-to-front order relative to the camera.
func (w *World) Paint(screen *ebiten.Image, linesOnly bool) {
	if w.data == nil || w.data.BSPRoot == nil {
		return
	}
	camPos := w.camera.GetPosition()
	w.paintNode(screen, w.data.BSPRoot, Vector3{X: camPos.X, Y: camPos.Y, Z: camPos.Z}, linesOnly)
}

func (w *World) paintNode(screen *ebiten.Image, node *BSPNode, camPos Vector3, linesOnly bool) {
	if node == nil {
		return
	}
	if node.Leaf != nil {
		if !node.Leaf.Solid {
			return
		}
		for _, poly := range node.Leaf.Polygons {
			w.paintPolygon(screen, poly, linesOnly)
		}
		return
	}

	in := node.Internal
	side := pointSide(camPos, in.Plane, SideEpsilon)

	if side == Back {
		w.paintNode(screen, in.Front, camPos, linesOnly)
		w.paintNode(screen, in.Back, camPos, linesOnly)
	} else {
		w.paintNode(screen, in.Back, camPos, linesOnly)
		w.paintNode(screen, in.Front, camPos, linesOnly)
	}
}

func (w *World) paintPolygon(screen *ebiten.Image, poly *Polygon, linesOnly bool) {
	camSpace := make([]Vector3, len(poly.Points))
	behind := 0
	for i, p := range poly.Points {
		camSpace[i] = w.toCameraSpace(p)
		if camSpace[i].Z < nearPlaneZ {
			behind++
		}
	}
	if behind > 0 {
		// Simple cull: drop any polygon with a vertex behind the near plane
		// rather than clipping it, trading a visible pop-out at the near
		// plane for a much simpler painter.
		return
	}

	xs := make([]float32, len(camSpace))
	ys := make([]float32, len(camSpace))
	for i, p := range camSpace {
		xs[i] = float32(conversionFactor*p.X/p.Z) + float32(screenWidth/2)
		ys[i] = float32(conversionFactor*p.Y/p.Z) + float32(screenHeight/2)
	}

	if linesOnly {
		outline := color.RGBA{R: 100, G: 100, B: 100, A: 255}
		drawPolygonOutline(screen, xs, ys, 1.0, outline)
		return
	}
	fillConvexPolygon(screen, xs, ys, poly.Col)
	drawPolygonOutline(screen, xs, ys, 1.0, color.RGBA{R: 20, G: 20, B: 20, A: 40})
}

func (w *World) toCameraSpace(p Vector3) Vector3 {
	m := w.camera.GetCameraMatrix()
	vx, vy, vz := p.X, p.Y, p.Z
	return Vector3{
		X: m.ThisMatrix[0][0]*vx + m.ThisMatrix[1][0]*vy + m.ThisMatrix[2][0]*vz + m.ThisMatrix[3][0],
		Y: m.ThisMatrix[0][1]*vx + m.ThisMatrix[1][1]*vy + m.ThisMatrix[2][1]*vz + m.ThisMatrix[3][1],
		Z: m.ThisMatrix[0][2]*vx + m.ThisMatrix[1][2]*vy + m.ThisMatrix[2][2]*vz + m.ThisMatrix[3][2],
	}
}

// Game is the ebiten.Game implementation: it owns the World and a fly
// camera driven by keyboard input.
type Game struct {
	world     *World
	camera    *Camera
	linesOnly bool
}

// NewGame parses mapPath, runs the geometry pipeline, and wires the result
// into a fresh Game ready for ebiten.RunGame.
func NewGame(mapPath string, opts PipelineOptions, linesOnly bool) (*Game, error) {
	text, err := readMapFile(mapPath)
	if err != nil {
		return nil, wrapf(err, "reading map file %s", mapPath)
	}

	data, err := BuildPipeline(text, opts)
	if err != nil {
		return nil, wrapf(err, "building pipeline for %s", mapPath)
	}

	cam := startCamera(data)
	g := &Game{
		world:     NewWorld(cam, data),
		camera:    cam,
		linesOnly: linesOnly,
	}

	mylog.Printf("loaded %s: %d triangulated vertices, %d cells", mapPath, len(data.Vertices), len(data.Cells))
	return g, nil
}

// startCamera sits back 500 units on -Z from the loaded geometry's vertex
// centroid and aims at it with NewCameraLookAt2, so the map is in frame on
// load instead of wherever the fixed (0,0,-500) facing +Z happens to land.
func startCamera(data *RenderData) *Camera {
	if len(data.Vertices) == 0 {
		return NewCamera(0, 0, -500, 0, 0, 0)
	}

	var sum Vector3
	for _, v := range data.Vertices {
		sum = sum.AddV(v.Position)
	}
	centroid := sum.Scaled(1 / float64(len(data.Vertices)))

	return NewCameraLookAt2(centroid.X, centroid.Y, centroid.Z-500, centroid.X, centroid.Y, centroid.Z)
}

const flySpeed = 6.0
const turnSpeed = 0.03

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.camera.AddZPosition(flySpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.camera.AddZPosition(-flySpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.camera.AddXPosition(-flySpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.camera.AddXPosition(flySpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		g.camera.AddYPosition(-flySpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		g.camera.AddYPosition(flySpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		g.camera.AddAngle(0, -turnSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		g.camera.AddAngle(0, turnSpeed, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		g.camera.AddAngle(-turnSpeed, 0, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		g.camera.AddAngle(turnSpeed, 0, 0)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 20, A: 255})
	g.world.Paint(screen, g.linesOnly)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// RenderData exposes the geometry the Game was built from, for callers that
// want to dump it (e.g. the BSP debug JSON) without re-running the pipeline.
func (g *Game) RenderData() *RenderData {
	return g.world.data
}
