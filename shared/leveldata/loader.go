package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// Object group names.
const (
	GroupPlatforms   = "Platforms"
	GroupRings       = "Rings"
	GroupEnemies     = "Enemies"
	GroupSprings     = "Springs"
	GroupCheckpoints = "Checkpoints"
	GroupPlayerSpawn = "PlayerSpawn"
)

// Defaults for properties a level object may leave out.
const (
	defaultPlatformHeight   = 1.0
	defaultSpringHeight     = 0.5
	defaultSpringPower      = 20.0
	defaultCheckpointHeight = 3.0
	defaultRingElevation    = 1.0
	defaultEnemySize        = 1.0
	defaultSpawnElevation   = 3.0
)

// Load parses a TMX file from fsys. It takes an fs.FS so callers can pass
// the embedded assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppu := floatProp(mapProperties(levelMap), "pixels_per_unit", 1)
	if ppu <= 0 {
		return nil, fmt.Errorf("level %s: pixels_per_unit must be positive, got %v", tmxPath, ppu)
	}

	level := &Level{
		Name: strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Max: mgl64.Vec3{
			float64(levelMap.Width*levelMap.TileWidth) / ppu,
			0,
			float64(levelMap.Height*levelMap.TileHeight) / ppu,
		},
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case GroupPlatforms:
				level.Platforms = append(level.Platforms, box(o, ppu, defaultPlatformHeight))
			case GroupRings:
				level.Rings = append(level.Rings, point(o, ppu, defaultRingElevation))
			case GroupEnemies:
				level.Enemies = append(level.Enemies, enemy(o, ppu))
			case GroupSprings:
				level.Springs = append(level.Springs, SpringSpawn{
					Box:   box(o, ppu, defaultSpringHeight),
					Power: floatProp(o.Properties, "power", defaultSpringPower),
				})
			case GroupCheckpoints:
				level.Checkpoints = append(level.Checkpoints, CheckpointSpawn{
					Box: box(o, ppu, defaultCheckpointHeight),
					ID:  o.Properties.GetInt("checkpointID"),
				})
			case GroupPlayerSpawn:
				if !spawnFound {
					level.PlayerSpawn = point(o, ppu, defaultSpawnElevation)
					spawnFound = true
				}
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("level %s: no %s object", tmxPath, GroupPlayerSpawn)
	}

	// Checkpoints are reached in ID order
	sort.SliceStable(level.Checkpoints, func(i, j int) bool {
		return level.Checkpoints[i].ID < level.Checkpoints[j].ID
	})

	return level, nil
}

// LoadAll discovers all .tmx files in levelsDir within fsys and returns them
// keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// box converts a rectangle object. The "height" property is the vertical
// size in world units.
func box(o *tiled.Object, ppu, defaultHeight float64) Box {
	h := floatProp(o.Properties, "height", defaultHeight)
	return Box{
		Center: mgl64.Vec3{
			(o.X + o.Width/2) / ppu,
			floatProp(o.Properties, "elevation", 0),
			(o.Y + o.Height/2) / ppu,
		},
		Half: mgl64.Vec3{o.Width / ppu / 2, h / 2, o.Height / ppu / 2},
	}
}

func point(o *tiled.Object, ppu, defaultElevation float64) mgl64.Vec3 {
	return mgl64.Vec3{o.X / ppu, floatProp(o.Properties, "elevation", defaultElevation), o.Y / ppu}
}

// enemy reads a point object. Enemies rest on the ground unless an
// elevation is given; without a "points" property the value follows size.
func enemy(o *tiled.Object, ppu float64) EnemySpawn {
	size := floatProp(o.Properties, "size", defaultEnemySize)
	points := o.Properties.GetInt("points")
	if points <= 0 {
		points = PointsForSize(size)
	}
	return EnemySpawn{
		Position: point(o, ppu, size/2),
		Size:     size,
		Points:   points,
	}
}

// PointsForSize is the score for defeating an enemy of the given size.
func PointsForSize(size float64) int {
	switch {
	case size < 1.25:
		return 10
	case size < 1.75:
		return 20
	default:
		return 30
	}
}

// mapProperties returns the map-level properties. A map without a
// <properties> element has none.
func mapProperties(m *tiled.Map) tiled.Properties {
	if m.Properties == nil {
		return nil
	}
	return *m.Properties
}

// floatProp reads a numeric property, falling back to def when it is missing
// or malformed.
func floatProp(p tiled.Properties, name string, def float64) float64 {
	s := p.GetString(name)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
