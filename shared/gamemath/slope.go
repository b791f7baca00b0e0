package gamemath

// RestOnSurfaceY returns the center height that places a body of the given
// half height exactly on a surface at surfaceY.
func RestOnSurfaceY(surfaceY, halfHeight float64) float64 {
	return surfaceY + halfHeight
}
