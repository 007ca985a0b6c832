package mapforge

const (
	screenWidth  = 640
	screenHeight = 480
)
