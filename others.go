package mapforge

// --- Vector Math Helpers (using your Vector3 struct) ---

// Subtract returns a new Vector3 that is the difference of v1 and v2.
func Subtract(v1, v2 *Vector3) *Vector3 {
	return NewVector3(
		v1.X-v2.X,
		v1.Y-v2.Y,
		v1.Z-v2.Z,
	)
}

// Cross2 computes the Cross2 product of two vectors and returns a new Vector3.
func Cross2(v1, v2 *Vector3) *Vector3 {
	return NewVector3(
		v1.Y*v2.Z-v1.Z*v2.Y,
		v1.Z*v2.X-v1.X*v2.Z,
		v1.X*v2.Y-v1.Y*v2.X,
	)
}

// Dot computes the dot product of two vectors.
func Dot(v1, v2 *Vector3) float64 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}

// NewCameraLookAt2 places a camera at (x,y,z) aimed at (lookX,lookY,lookZ),
// building its view matrix with NewLookAtMatrix2 instead of the Euler-angle
// path NewCamera uses. startCamera (render.go) uses this to aim at a map's
// geometry on load instead of the fixed (0,0,-500) facing +Z.
func NewCameraLookAt2(x, y, z, lookX, lookY, lookZ float64) *Camera {
	eye := NewVector3(x, y, z)
	target := NewVector3(lookX, lookY, lookZ)
	up := NewVector3(0, 1, 0)

	return &Camera{
		camMatrixRev:   NewLookAtMatrix2(eye, target, up),
		cameraPosition: NewPoint3d(x, y, z),
		cameraAngle:    NewVector3(0, 0, 0),
	}
}

func NewLookAtMatrix2(eye, target, up *Vector3) *Matrix {
	// Right-handed local axes: z is forward (eye->target), x is right, y is
	// the orthogonal up — yAxisVec needs no normalization since x and z
	// already are unit and orthogonal.
	zAxisVec := Subtract(target, eye)
	zAxisVec.Normalize()

	xAxisVec := Cross2(up, zAxisVec)
	xAxisVec.Normalize()

	yAxisVec := Cross2(zAxisVec, xAxisVec)

	viewMatrix := IdentMatrix()
	m := viewMatrix.ThisMatrix

	// Each axis fills a column, so under TransformObj's convention
	// (out[c] = sum_r m[r][c]*in[r] + m[3][c]) output c is axis_c·p - axis_c·eye.
	m[0][0] = xAxisVec.X
	m[1][0] = xAxisVec.Y
	m[2][0] = xAxisVec.Z

	m[0][1] = yAxisVec.X
	m[1][1] = yAxisVec.Y
	m[2][1] = yAxisVec.Z

	m[0][2] = zAxisVec.X
	m[1][2] = zAxisVec.Y
	m[2][2] = zAxisVec.Z

	m[3][0] = -Dot(xAxisVec, eye)
	m[3][1] = -Dot(yAxisVec, eye)
	m[3][2] = -Dot(zAxisVec, eye)

	return viewMatrix
}
