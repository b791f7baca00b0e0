package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// resolvBody tags every object this package adds to the grid.
const resolvBody = "body"

type body struct {
	obj    *resolv.Object
	bounds Bounds
}

// Space is a Provider backed by a resolv grid. The grid covers the XZ ground
// plane and serves as a broadphase; candidates it returns are confirmed with
// exact 3D box tests.
type Space struct {
	space    *resolv.Space
	origin   mgl64.Vec3
	bodies   map[donburi.Entity]*body
	blockers []string
}

// NewSpace creates a grid spanning min..max on the XZ plane. Rays are only
// stopped by bodies carrying one of the blocker tags; with no blocker tags
// every body blocks.
func NewSpace(min, max mgl64.Vec3, cellSize int, blockers ...string) *Space {
	if cellSize < 1 {
		cellSize = 1
	}
	margin := float64(cellSize)
	w := int(math.Ceil(max.X()-min.X())) + 2*cellSize
	h := int(math.Ceil(max.Z()-min.Z())) + 2*cellSize
	return &Space{
		space:    resolv.NewSpace(w, h, cellSize, cellSize),
		origin:   mgl64.Vec3{min.X() - margin, 0, min.Z() - margin},
		bodies:   make(map[donburi.Entity]*body),
		blockers: blockers,
	}
}

// Add registers an entity's volume under the given tags. Adding an entity
// twice replaces its previous volume.
func (s *Space) Add(e donburi.Entity, b Bounds, tags ...string) {
	s.Remove(e)
	x, y, w, h := s.rect(b)
	obj := resolv.NewObject(x, y, w, h, append([]string{resolvBody}, tags...)...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = e
	s.space.Add(obj)
	s.bodies[e] = &body{obj: obj, bounds: b}
}

// Move updates the volume of a registered entity.
func (s *Space) Move(e donburi.Entity, b Bounds) {
	bd, ok := s.bodies[e]
	if !ok {
		return
	}
	x, y, w, h := s.rect(b)
	if w != bd.obj.W || h != bd.obj.H {
		bd.obj.W, bd.obj.H = w, h
		bd.obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	}
	bd.obj.X, bd.obj.Y = x, y
	bd.obj.Update()
	bd.bounds = b
}

// Remove unregisters an entity. Unknown entities are ignored.
func (s *Space) Remove(e donburi.Entity) {
	bd, ok := s.bodies[e]
	if !ok {
		return
	}
	s.space.Remove(bd.obj)
	delete(s.bodies, e)
}

// Bounds returns the registered volume of an entity.
func (s *Space) Bounds(e donburi.Entity) (Bounds, bool) {
	bd, ok := s.bodies[e]
	if !ok {
		return Bounds{}, false
	}
	return bd.bounds, true
}

// Len is the number of registered bodies.
func (s *Space) Len() int {
	return len(s.bodies)
}

// Intersects reports whether two volumes overlap.
func (s *Space) Intersects(a, b Bounds) bool {
	return a.Intersects(b)
}

// Overlapping returns the entities whose volume overlaps b. When tags are
// given only bodies carrying one of them are considered.
func (s *Space) Overlapping(b Bounds, tags ...string) []donburi.Entity {
	var out []donburi.Entity
	for _, bd := range s.candidates(b, tags...) {
		if s.Intersects(b, bd.bounds) {
			out = append(out, bd.obj.Data.(donburi.Entity))
		}
	}
	return out
}

// Raycast returns the closest blocking body along the ray.
func (s *Space) Raycast(origin, dir mgl64.Vec3, maxDist float64, ignore ...donburi.Entity) Hit {
	n := dir.Len()
	if n < 1e-9 || maxDist <= 0 {
		return Hit{}
	}
	dir = dir.Mul(1 / n)

	end := origin.Add(dir.Mul(maxDist))
	sweep := Bounds{
		Min: mgl64.Vec3{math.Min(origin.X(), end.X()), math.Min(origin.Y(), end.Y()), math.Min(origin.Z(), end.Z())},
		Max: mgl64.Vec3{math.Max(origin.X(), end.X()), math.Max(origin.Y(), end.Y()), math.Max(origin.Z(), end.Z())},
	}

	best := Hit{Distance: maxDist}
	for _, bd := range s.candidates(sweep, s.blockers...) {
		e := bd.obj.Data.(donburi.Entity)
		if ignored(e, ignore) {
			continue
		}
		hit, ok := bd.bounds.Raycast(origin, dir, maxDist)
		if !ok || hit.Distance > best.Distance {
			continue
		}
		if best.Hit && hit.Distance == best.Distance {
			continue
		}
		hit.Entity = e
		best = hit
	}
	return best
}

// candidates runs the resolv broadphase for the XZ footprint of b.
func (s *Space) candidates(b Bounds, tags ...string) []*body {
	if len(tags) == 0 {
		tags = []string{resolvBody}
	}
	x, y, w, h := s.rect(b)
	probe := resolv.NewObject(x, y, w, h)
	s.space.Add(probe)
	defer s.space.Remove(probe)

	check := probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	objs := check.ObjectsByTags(tags...)
	out := make([]*body, 0, len(objs))
	for _, obj := range objs {
		e, ok := obj.Data.(donburi.Entity)
		if !ok {
			continue
		}
		if bd, ok := s.bodies[e]; ok {
			out = append(out, bd)
		}
	}
	return out
}

// rect maps a 3D box to a resolv rectangle on the XZ plane. resolv works in
// whole units, so the footprint is padded by one unit on every side; a
// vertical ray or a sub-unit pickup still registers in its cell.
func (s *Space) rect(b Bounds) (x, y, w, h float64) {
	const pad = 1.0
	x = b.Min.X() - s.origin.X() - pad
	y = b.Min.Z() - s.origin.Z() - pad
	w = b.Max.X() - b.Min.X() + 2*pad
	h = b.Max.Z() - b.Min.Z() + 2*pad
	return x, y, w, h
}

func ignored(e donburi.Entity, ignore []donburi.Entity) bool {
	for _, i := range ignore {
		if i == e {
			return true
		}
	}
	return false
}
