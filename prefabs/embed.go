package prefabs

import (
	"embed"
	"os"
	"path"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var PrefabsFS embed.FS

// Dir is where prefabs are looked up on disk before falling back to the
// embedded copies.
var Dir = "prefabs"

// Load reads a prefab by name. An existing file path wins, then Dir, then
// the embedded prefabs.
func Load(name string) ([]byte, error) {
	if name == "" {
		return nil, os.ErrNotExist
	}
	if data, err := os.ReadFile(name); err == nil {
		return data, nil
	}
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

// LoadScript reads a tengo script. An existing file path wins, otherwise the
// name is looked up under scripts/.
func LoadScript(name string) ([]byte, error) {
	if strings.HasSuffix(name, ".tengo") {
		if data, err := os.ReadFile(name); err == nil {
			return data, nil
		}
	}
	clean := cleanPrefabPath(name)
	if !strings.HasPrefix(clean, "scripts/") {
		clean = path.Join("scripts", clean)
	}
	if !strings.HasSuffix(clean, ".tengo") {
		clean += ".tengo"
	}
	return Load(clean)
}

func cleanPrefabPath(p string) string {
	s := filepath.ToSlash(p)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(Dir, filepath.FromSlash(clean))
}
