// Package leveldata parses Tiled (.tmx) levels into plain 3D placement data.
// Levels are authored top-down: Tiled X maps to world X, Tiled Y maps to
// world Z, and each object's "elevation" property gives the world Y of its
// center. It has no dependencies on donburi or resolv.
package leveldata

import "github.com/go-gl/mathgl/mgl64"

// Level holds everything placed in a TMX level.
type Level struct {
	Name string

	// Min and Max bound the playable area on the XZ plane.
	Min, Max mgl64.Vec3

	PlayerSpawn mgl64.Vec3
	Platforms   []Box
	Rings       []mgl64.Vec3
	Enemies     []EnemySpawn
	Springs     []SpringSpawn
	Checkpoints []CheckpointSpawn
}

// Box is an axis-aligned solid volume.
type Box struct {
	Center mgl64.Vec3
	Half   mgl64.Vec3
}

// Top is the world Y of the box's upper face.
func (b Box) Top() float64 {
	return b.Center.Y() + b.Half.Y()
}

// EnemySpawn is a hazard placement. Bigger enemies are worth more points.
type EnemySpawn struct {
	Position mgl64.Vec3
	Size     float64
	Points   int
}

// SpringSpawn is a launch pad.
type SpringSpawn struct {
	Box
	Power float64
}

// CheckpointSpawn is a respawn marker.
type CheckpointSpawn struct {
	Box
	ID int
}
