// Stress test for the physics world: crates rain onto a floor while a row
// of moving platforms sweeps through them.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"platformer/internal/level"
	"platformer/internal/movement"
	"platformer/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const floorYAML = `
meshes:
  - name: floor
    box: {pos: [-100, -100, -1], size: [200, 200, 1]}
`

func main() {
	ticks := flag.Int("ticks", 2000, "ticks per run")
	flag.Parse()

	f, err := level.Decode([]byte(floorYAML), level.FormatYAML)
	if err != nil {
		panic(fmt.Sprintf("Failed to decode floor: %v", err))
	}
	room, err := level.Build(f)
	if err != nil {
		panic(fmt.Sprintf("Failed to build floor: %v", err))
	}

	testCounts := []int{10, 50, 100, 200, 500}
	for _, count := range testCounts {
		run(room, count, *ticks)
	}
}

func run(room *level.Room, count, ticks int) {
	edifice := level.NewEdifice(room.Colliders)
	world := physics.NewPhysicsWorld(edifice.Trace)
	rng := rand.New(rand.NewSource(42))

	// Spawn in a square, size scales with count to keep density reasonable
	spawnSize := float32(20.0) + float32(count)/10.0

	crates := make([]*physics.Body, count)
	for i := range crates {
		b := physics.NewBody()
		b.Solid = true
		b.Pos = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: 1 + rng.Float32()*10,
		}
		crates[i] = b
		world.AddBody(b)
	}

	platforms := make([]*physics.Body, count/10+1)
	for i := range platforms {
		p := physics.NewBody()
		p.Solid = true
		p.Pusher = true
		p.Size = rl.Vector3{X: 2, Y: 2, Z: 0.5}
		p.Pos = rl.Vector3{X: -spawnSize / 2, Y: float32(i)*3 - spawnSize/2, Z: 0.05}
		platforms[i] = p
		world.AddBody(p)
	}

	overlaps := 0
	for _, b := range crates {
		b.OnCollision = func(*physics.Body) { overlaps++ }
	}

	vel := make([]rl.Vector3, count)
	var moveTime, overlapTime time.Duration
	for tick := range ticks {
		start := time.Now()
		sweep := rl.Vector3{X: 0.01}
		if (tick/500)%2 == 1 {
			sweep.X = -0.01
		}
		for _, p := range platforms {
			world.MoveBody(p, sweep)
		}
		for i, b := range crates {
			vel[i].Z = max(vel[i].Z-0.00005, -0.02)
			blocked := movement.SlideMoveAxes(world, b, vel[i])
			if blocked.Z {
				vel[i].Z = 0
			}
		}
		moveTime += time.Since(start)

		start = time.Now()
		world.CheckForOverlaps()
		overlapTime += time.Since(start)
	}

	resting := 0
	for _, b := range crates {
		if movement.IsOnGround(world, b) {
			resting++
		}
	}

	perTick := func(d time.Duration) time.Duration { return (d / time.Duration(ticks)).Round(100 * time.Nanosecond) }
	fmt.Printf("%4d crates: move %8v/tick | overlaps %8v/tick | %6d contacts | %4d resting\n",
		count, perTick(moveTime), perTick(overlapTime), overlaps, resting)
}
