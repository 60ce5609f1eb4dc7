package render

import (
	"platformer/internal/engine"
	"platformer/internal/level"
	"platformer/internal/physics"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// face is one lit triangle of room geometry, ready to draw.
type face struct {
	a, b, c rl.Vector3
	color   rl.Color
	center  rl.Vector3
	radius  float32
}

// Renderer draws a room and the bodies in it. Lighting is computed once per
// face when the room is set, so drawing is a plain triangle loop.
type Renderer struct {
	LightDir rl.Vector3
	Ambient  float32

	faces  []face
	lights []level.Light

	// Drawn and Culled count faces of the last frame.
	Drawn  int
	Culled int
}

func NewRenderer() *Renderer {
	return &Renderer{
		LightDir: rl.Vector3Normalize(rl.Vector3{X: 0.35, Y: -0.35, Z: -1.0}),
		Ambient:  0.3,
	}
}

// SetRoom prepares the room's meshes for drawing.
func (r *Renderer) SetRoom(room *level.Room) {
	r.faces = r.faces[:0]
	r.lights = room.Lights
	for _, m := range room.Meshes {
		for _, f := range m.Faces {
			a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
			n := rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a))
			if rl.Vector3Length(n) == 0 {
				continue
			}
			n = rl.Vector3Normalize(n)

			center := rl.Vector3Scale(rl.Vector3Add(rl.Vector3Add(a, b), c), 1.0/3)
			radius := math32.Max(rl.Vector3Distance(center, a), math32.Max(rl.Vector3Distance(center, b), rl.Vector3Distance(center, c)))

			r.faces = append(r.faces, face{
				a: a, b: b, c: c,
				color:  r.shade(m.Color, n, center),
				center: center,
				radius: radius,
			})
		}
	}
}

// FaceCount returns the number of faces prepared by SetRoom.
func (r *Renderer) FaceCount() int {
	return len(r.faces)
}

// shade lights a face of the given base color: the sun, the ambient term
// and every point light of the room, each falling off with distance.
func (r *Renderer) shade(base rl.Color, normal, center rl.Vector3) rl.Color {
	sun := math32.Max(0, -rl.Vector3DotProduct(normal, r.LightDir))
	red := r.Ambient + sun*(1-r.Ambient)
	green, blue := red, red

	for _, l := range r.lights {
		toLight := rl.Vector3Subtract(l.Pos, center)
		dist := rl.Vector3Length(toLight)
		if dist == 0 {
			continue
		}
		lambert := math32.Max(0, rl.Vector3DotProduct(normal, rl.Vector3Scale(toLight, 1/dist)))
		falloff := lambert / (1 + 0.05*dist*dist)
		red += l.Color.X * falloff
		green += l.Color.Y * falloff
		blue += l.Color.Z * falloff
	}

	return rl.Color{
		R: scaleChannel(base.R, red),
		G: scaleChannel(base.G, green),
		B: scaleChannel(base.B, blue),
		A: base.A,
	}
}

func scaleChannel(c uint8, f float32) uint8 {
	return uint8(math32.Min(255, float32(c)*f))
}

// DrawRoom draws the room faces visible from camera. Must be called between
// BeginMode3D and EndMode3D.
func (r *Renderer) DrawRoom(camera rl.Camera3D, aspect float32) {
	frustum := ExtractFrustum(camera, aspect)
	r.Drawn, r.Culled = 0, 0
	for i := range r.faces {
		f := &r.faces[i]
		if !frustum.ContainsSphere(f.center, f.radius) {
			r.Culled++
			continue
		}
		rl.DrawTriangle3D(f.a, f.b, f.c, f.color)
		r.Drawn++
	}
}

// DrawBodies draws every body as a box. With debug on, non-solid trigger
// volumes are outlined too and every body gets its wires.
func (r *Renderer) DrawBodies(bodies []*physics.Body, debug bool) {
	for _, b := range bodies {
		center := b.Center()
		name := ""
		if e, ok := b.Owner.(engine.Entity); ok {
			name = e.Name()
		}
		if h, ok := b.Owner.(interface{ Hidden() bool }); ok && h.Hidden() {
			continue
		}

		color, visible := BodyColor(name)
		if visible {
			rl.DrawCubeV(center, b.Size, color)
		}
		if debug || visible {
			wire := rl.Black
			if !b.Solid {
				wire = rl.Green
			}
			rl.DrawCubeWiresV(center, b.Size, wire)
		}
	}
}

var bodyColors = map[string]rl.Color{
	"hero":            rl.SkyBlue,
	"moving_platform": rl.Brown,
	"spikes":          rl.Maroon,
	"switch":          rl.Orange,
	"door":            rl.DarkBrown,
	"auto_door":       rl.Beige,
	"bonus":           rl.Gold,
	"crate":           rl.Brown,
	"sign":            rl.DarkGreen,
	"finish":          rl.NewColor(0, 158, 47, 100),
}

// BodyColor returns the fill color for an entity name. Unknown entities
// and pure trigger volumes like detectors are not filled.
func BodyColor(name string) (rl.Color, bool) {
	c, ok := bodyColors[name]
	return c, ok
}

// Unload drops the prepared room.
func (r *Renderer) Unload() {
	r.faces = nil
	r.lights = nil
}
