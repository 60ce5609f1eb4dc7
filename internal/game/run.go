package game

import (
	"log"
	"time"

	"platformer/internal/audio"
	"platformer/internal/camera"
	"platformer/internal/engine"
	"platformer/internal/level"
	"platformer/internal/physics"
	"platformer/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// maxTicksPerFrame bounds catch-up after a stall.
const maxTicksPerFrame = 250

// Run opens the window and plays the configured level until the window is
// closed.
func (g *Game) Run() error {
	cfg := g.Config

	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(cfg.Window.TargetFPS)
	rl.DisableCursor()
	render.SetupStyle()

	sounds := audio.NewBank(cfg.Audio)
	defer sounds.Close()
	sounds.Load(cfg.Audio.Dir, engine.AllCues)

	g.Sounds.AddListener(func(cue engine.Cue) {
		sounds.Play(cue, g.PlayerPosition())
	})
	g.Texts.AddListener(func(msg string) {
		log.Printf("Game: %s", msg)
	})

	var watcher *level.Watcher
	renderer := render.NewRenderer()
	defer renderer.Unload()

	if err := g.LoadLevel(cfg.Game.Level); err != nil {
		return err
	}
	renderer.SetRoom(g.Room)

	if cfg.Game.HotReload {
		w, err := level.NewWatcher(cfg.Game.Level)
		if err != nil {
			log.Printf("Game: WARNING: no hot reload: %v", err)
		} else {
			defer w.Close()
			watcher = w
		}
	}

	r := &runner{
		game:     g,
		camera:   camera.New(),
		renderer: renderer,
		sounds:   sounds,
		watcher:  watcher,
		tick:     time.Duration(cfg.Game.TickMs) * time.Millisecond,
		last:     time.Now(),
	}

	for !rl.WindowShouldClose() {
		r.Update()
		r.Draw()
	}
	return nil
}

// runner is the windowed side of a Game: it turns wall-clock frames into
// fixed ticks and draws the result.
type runner struct {
	game     *Game
	camera   *camera.ChaseCamera
	renderer *render.Renderer
	sounds   *audio.Bank
	watcher  *level.Watcher

	tick time.Duration
	last time.Time
	lag  time.Duration

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

func (r *runner) Update() {
	updateStart := time.Now()
	g := r.game

	c := ReadControl(r.camera)

	now := time.Now()
	r.lag += now.Sub(r.last)
	r.last = now

	ticks := 0
	for r.lag >= r.tick && ticks < maxTicksPerFrame {
		g.Tick(c)
		r.lag -= r.tick
		ticks++
	}
	if ticks == maxTicksPerFrame {
		r.lag = 0
	}

	if r.watcher != nil {
		select {
		case <-r.watcher.Changed:
			r.reload()
		default:
		}
	}

	if g.Finished() {
		if _, showing := g.CurrentText(); !showing {
			log.Printf("Game: restarting finished level")
			if err := g.Restart(); err != nil {
				log.Printf("Game: ERROR: restart: %v", err)
			}
		}
	}

	if g.Hero != nil {
		r.camera.Follow(g.Hero.GetBody(), g.World)
		cam := r.camera.GetRaylibCamera()
		r.sounds.SetListener(cam.Position, rl.Vector3Subtract(cam.Target, cam.Position), physics.Up)
	}
	r.sounds.Update()

	r.updateMs = float64(time.Since(updateStart).Microseconds()) / 1000.0
}

// reload swaps in the level file after it changed on disk. A broken file
// keeps the current room.
func (r *runner) reload() {
	path := r.game.Config.Game.Level
	room, err := level.Load(path)
	if err != nil {
		log.Printf("Game: ERROR: reload %s: %v", path, err)
		return
	}
	if err := r.game.LoadRoom(room); err != nil {
		log.Printf("Game: ERROR: reload %s: %v", path, err)
		return
	}
	r.renderer.SetRoom(room)
}

func (r *runner) Draw() {
	g := r.game
	cam := r.camera.GetRaylibCamera()
	aspect := float32(rl.GetScreenWidth()) / float32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.NewColor(20, 20, 30, 255))

	drawStart := time.Now()
	rl.BeginMode3D(cam)
	r.renderer.DrawRoom(cam, aspect)
	r.renderer.DrawBodies(g.World.Bodies(), g.Debug)
	rl.EndMode3D()
	r.drawMs = float64(time.Since(drawStart).Microseconds()) / 1000.0

	r.DrawUI()
	rl.EndDrawing()
}

func (r *runner) DrawUI() {
	g := r.game
	hud := render.HUD{Debug: g.Debug}
	if text, ok := g.CurrentText(); ok {
		hud.Text = text
	}
	if g.Hero != nil {
		hud.Health = g.Hero.Health()
		hud.Stats = render.Stats{
			Ticks:      g.Ticks(),
			Bodies:     g.World.BodyCount(),
			Entities:   g.Scene.Len(),
			OnGround:   g.Hero.OnGround(),
			Position:   g.Hero.Pos,
			Velocity:   g.Hero.Velocity(),
			FacesDrawn: r.renderer.Drawn,
			FacesTotal: r.renderer.FaceCount(),
			UpdateMs:   r.updateMs,
			DrawMs:     r.drawMs,
		}
	}
	render.DrawHUD(hud)
	if g.Debug {
		rl.DrawFPS(10, 60)
	}
}
