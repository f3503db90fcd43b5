package scenescript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Loader reads scene scripts from an assets directory and caches them
// by name.
type Loader struct {
	assetsPath  string
	scriptCache map[string]*Script
}

func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath:  assetsPath,
		scriptCache: make(map[string]*Script),
	}
}

// LoadScript reads <assets>/scripts/<name>.json, validates it, and
// fills in record defaults.
func (l *Loader) LoadScript(name string) (*Script, error) {
	if script, ok := l.scriptCache[name]; ok {
		return script, nil
	}

	path := filepath.Join(l.assetsPath, "scripts", name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read script file: %w", err)
	}

	var script Script
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("could not unmarshal script json: %w", err)
	}

	if err := Normalize(&script); err != nil {
		return nil, fmt.Errorf("script %q: %w", name, err)
	}

	l.scriptCache[name] = &script
	return &script, nil
}

// Normalize validates every record's mesh kind and applies defaults:
// zero scale becomes unit scale, missing color becomes opaque white,
// missing UV scale becomes (1,1).
func Normalize(script *Script) error {
	for i := range script.Records {
		rec := &script.Records[i]
		if !rec.Mesh.Valid() {
			return fmt.Errorf("record %d: unknown mesh kind %q", i, rec.Mesh)
		}
		if rec.Scale == [3]float32{} {
			rec.Scale = [3]float32{1, 1, 1}
		}
		if rec.Color == nil {
			rec.Color = &[4]float32{1, 1, 1, 1}
		}
		if rec.UVScale == nil {
			rec.UVScale = &[2]float32{1, 1}
		}
	}
	return nil
}
