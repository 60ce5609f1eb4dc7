package level

import (
	"fmt"
	"log"

	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// cuboid expands a box into eight corners and twelve outward-facing
// triangles. Corner i has x, y, z bits 1, 2 and 4 of i.
func cuboid(pos, size rl.Vector3) ([]rl.Vector3, [][3]int) {
	vertices := make([]rl.Vector3, 8)
	for i := range vertices {
		v := pos
		if i&1 != 0 {
			v.X += size.X
		}
		if i&2 != 0 {
			v.Y += size.Y
		}
		if i&4 != 0 {
			v.Z += size.Z
		}
		vertices[i] = v
	}
	faces := [][3]int{
		{0, 4, 6}, {0, 6, 2}, // -x
		{1, 3, 7}, {1, 7, 5}, // +x
		{0, 1, 5}, {0, 5, 4}, // -y
		{2, 6, 7}, {2, 7, 3}, // +y
		{0, 2, 3}, {0, 3, 1}, // -z
		{4, 5, 7}, {4, 7, 6}, // +z
	}
	return vertices, faces
}

func faceNormal(a, b, c rl.Vector3) rl.Vector3 {
	return rl.Vector3Normalize(rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a)))
}

func checkFaces(name string, vertices []rl.Vector3, faces [][3]int) error {
	for i, f := range faces {
		for _, idx := range f {
			if idx < 0 || idx >= len(vertices) {
				return fmt.Errorf("mesh %q face %d: vertex index %d out of range", name, i, idx)
			}
		}
	}
	return nil
}

// buildBrush turns a closed mesh into a convex: one plane per face, plus
// bevel planes on sharp edges so that boxes sliding along the edge see a
// sensible normal. Degenerate faces are skipped.
func buildBrush(name string, vertices []rl.Vector3, faces [][3]int) physics.Convex {
	var brush physics.Convex

	for _, f := range faces {
		a, b, c := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		n := faceNormal(a, b, c)
		if rl.Vector3Length(n) == 0 {
			log.Printf("Level: mesh %q has a degenerate face %v", name, f)
			continue
		}
		brush.Planes = append(brush.Planes, physics.PlaneFromPoint(n, a))
	}

	bevelSharpEdges(name, vertices, faces, &brush)
	return brush
}

type edgeKey struct {
	v1, v2 rl.Vector3
}

func vecLess(a, b rl.Vector3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

func makeEdgeKey(a, b rl.Vector3) edgeKey {
	if vecLess(b, a) {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// bevelSharpEdges adds a plane along every edge whose two faces meet at 90
// degrees or sharper. Edges are keyed by vertex position, not index, so
// split vertices still share an edge.
func bevelSharpEdges(name string, vertices []rl.Vector3, faces [][3]int, brush *physics.Convex) {
	normals := make(map[edgeKey][]rl.Vector3)
	var order []edgeKey

	add := func(a, b, n rl.Vector3) {
		k := makeEdgeKey(a, b)
		if _, ok := normals[k]; !ok {
			order = append(order, k)
		}
		normals[k] = append(normals[k], n)
	}

	for _, f := range faces {
		a, b, c := vertices[f[0]], vertices[f[1]], vertices[f[2]]
		n := faceNormal(a, b, c)
		add(a, b, n)
		add(b, c, n)
		add(c, a, n)
	}

	bad := 0
	for _, k := range order {
		ns := normals[k]
		if len(ns) != 2 {
			bad++
			continue
		}
		if rl.Vector3DotProduct(ns[0], ns[1]) > 0 {
			continue
		}
		n := rl.Vector3Normalize(rl.Vector3Add(ns[0], ns[1]))
		if rl.Vector3Length(n) == 0 {
			// back-to-back faces
			continue
		}
		brush.Planes = append(brush.Planes, physics.PlaneFromPoint(n, k.v1))
	}

	if bad > 0 {
		log.Printf("Level: mesh %q has %d edges not shared by exactly two faces", name, bad)
	}
}
