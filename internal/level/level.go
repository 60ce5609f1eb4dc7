// Package level loads room files and turns their meshes into collision
// brushes, spawn points and render geometry.
package level

import (
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- file types ---

// File is the on-disk room document, stored as YAML or JSON.
type File struct {
	Meshes []MeshDef  `json:"meshes" yaml:"meshes"`
	Lights []LightDef `json:"lights,omitempty" yaml:"lights,omitempty"`
}

// MeshDef is one named object of the room. Vertices are relative to Origin.
// A mesh without vertices may give a Box instead, which expands to a closed
// cuboid.
type MeshDef struct {
	Name       string            `json:"name" yaml:"name"`
	Origin     [3]float32        `json:"origin,omitempty" yaml:"origin,omitempty"`
	Vertices   [][3]float32      `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Faces      [][3]int          `json:"faces,omitempty" yaml:"faces,omitempty"`
	Box        *BoxDef           `json:"box,omitempty" yaml:"box,omitempty"`
	Color      string            `json:"color,omitempty" yaml:"color,omitempty"`
	Properties map[string]string `json:"properties,omitempty" yaml:"properties,omitempty"`
}

type BoxDef struct {
	Pos  [3]float32 `json:"pos" yaml:"pos"`
	Size [3]float32 `json:"size" yaml:"size"`
}

type LightDef struct {
	Position [3]float32 `json:"position" yaml:"position"`
	Color    [3]float32 `json:"color" yaml:"color"`
}

// --- loaded room ---

// Thing is a spawn request for a gameplay entity.
type Thing struct {
	Pos    rl.Vector3
	Type   string
	Config Props
}

type Light struct {
	Pos   rl.Vector3
	Color rl.Vector3
}

// Mesh is render geometry in world space.
type Mesh struct {
	Name     string
	Vertices []rl.Vector3
	Faces    [][3]int
	Color    rl.Color
}

// Room is a loaded level: where the hero starts, what to spawn, and the
// static geometry.
type Room struct {
	Start     rl.Vector3
	Things    []Thing
	Colliders []physics.Convex
	Lights    []Light
	Meshes    []Mesh
}

// DefaultStart is used when a room has no "start" object.
var DefaultStart = rl.Vector3{X: 0, Y: 0, Z: 2}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"SkyBlue":   rl.SkyBlue,
	"Lime":      rl.Lime,
	"White":     rl.White,
	"LightGray": rl.LightGray,
	"Gray":      rl.Gray,
	"DarkGray":  rl.DarkGray,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"Maroon":    rl.Maroon,
	"Gold":      rl.Gold,
}

func lookupColor(name string) rl.Color {
	if c, ok := colorByName[name]; ok {
		return c
	}
	return rl.LightGray
}
