package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/ringrush/shared/inputscript"
	"github.com/automoto/ringrush/shared/leveldata"
)

// LevelsDir is the directory of .tmx files inside FS.
const LevelsDir = "levels"

// DefaultLevel is the level the runner starts when none is given.
const DefaultLevel = "greenhill"

// DefaultScript is the embedded input script the runner replays when none is
// given.
const DefaultScript = "scripts/demo.yaml"

var (
	//go:embed all:levels all:scripts
	assetFS embed.FS
)

// FS exposes the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// LoadLevels loads every embedded level.
func LoadLevels() (map[string]*leveldata.Level, []string, error) {
	return leveldata.LoadAll(assetFS, LevelsDir)
}

// LoadLevel loads one embedded level by stem name.
func LoadLevel(name string) (*leveldata.Level, error) {
	level, err := leveldata.Load(assetFS, fmt.Sprintf("%s/%s.tmx", LevelsDir, name))
	if err != nil {
		return nil, fmt.Errorf("embedded level %q: %w", name, err)
	}
	return level, nil
}

// LoadDefaultScript loads the embedded demo input script.
func LoadDefaultScript() (*inputscript.Script, error) {
	return inputscript.LoadFS(assetFS, DefaultScript)
}
