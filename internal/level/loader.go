package level

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for room files that are neither YAML nor JSON.
var ErrUnknownFormat = errors.New("unknown level format")

const (
	noCollidePrefix = "nocollide."
	formulaPrefix   = "f."
	startType       = "start"
)

type Format int

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatFromPath picks the decoder from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// Load reads and builds the room at path.
func Load(path string) (*Room, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}

	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}

	room, err := Build(f)
	if err != nil {
		return nil, fmt.Errorf("build level %s: %w", path, err)
	}

	log.Printf("Level: loaded %s (%d brushes, %d things)", path, len(room.Colliders), len(room.Things))
	return room, nil
}

func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownFormat
	}
	return &f, nil
}

// Build turns a decoded file into a room.
//
// Meshes without geometry are skipped. A "nocollide." mesh is only drawn.
// A mesh whose name is a formula ("f.type(args)") or that has a "type"
// property is a thing placed at the mesh origin; type "start" sets the
// start position instead. Every other mesh becomes a collision brush.
func Build(f *File) (*Room, error) {
	room := &Room{Start: DefaultStart}

	for _, l := range f.Lights {
		room.Lights = append(room.Lights, Light{Pos: vec3(l.Position), Color: vec3(l.Color)})
	}

	for _, def := range f.Meshes {
		name := def.Name
		origin := vec3(def.Origin)

		vertices, faces := meshGeometry(def, origin)
		if len(vertices) == 0 {
			log.Printf("Level: WARNING: object %q has no vertices", name)
			continue
		}
		if err := checkFaces(name, vertices, faces); err != nil {
			return nil, err
		}

		mesh := Mesh{Name: name, Vertices: vertices, Faces: faces, Color: lookupColor(def.Color)}

		if strings.HasPrefix(name, noCollidePrefix) {
			room.Meshes = append(room.Meshes, mesh)
			continue
		}

		var typeName string
		config := Props{}

		if formula, ok := strings.CutPrefix(name, formulaPrefix); ok {
			var err error
			typeName, config, err = parseFormula(formula)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: %w", name, err)
			}
		}

		for k, v := range def.Properties {
			if k == "type" {
				typeName = v
			} else {
				config[k] = v
			}
		}

		if typeName != "" {
			if typeName == startType {
				room.Start = origin
			} else {
				room.Things = append(room.Things, Thing{Pos: origin, Type: typeName, Config: config})
			}
			continue
		}

		room.Colliders = append(room.Colliders, buildBrush(name, vertices, faces))
		room.Meshes = append(room.Meshes, mesh)
	}

	return room, nil
}

// meshGeometry returns world-space vertices and the face list.
func meshGeometry(def MeshDef, origin rl.Vector3) ([]rl.Vector3, [][3]int) {
	if len(def.Vertices) == 0 && def.Box != nil {
		return cuboid(rl.Vector3Add(origin, vec3(def.Box.Pos)), vec3(def.Box.Size))
	}

	vertices := make([]rl.Vector3, len(def.Vertices))
	for i, v := range def.Vertices {
		vertices[i] = rl.Vector3Add(origin, vec3(v))
	}
	return vertices, def.Faces
}
