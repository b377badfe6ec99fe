package pluribus

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MaxTextLength is the longest string (in runes) the game will assemble.
const MaxTextLength = 12

// RunConfig configures a Game. Zero values fall back to sensible defaults.
type RunConfig struct {
	Title         string
	Width, Height int
	// Text is upper-cased and truncated to MaxTextLength runes.
	Text string
	// Scale multiplies the glyph size; values <= 0 mean 1.
	Scale float64
	Seed  uint64
	// ShowFPS draws an FPS and particle-count overlay.
	ShowFPS bool
	// Debug logs per-tick engine timings to stderr.
	Debug bool
	// Config is the live tuning store; nil uses DefaultConfig.
	Config *ConfigStore
	// Pointer overrides mouse/touch input, e.g. with a PointerScript.
	Pointer PointerSource
	// Rasterizer overrides the built-in Go Bold rasterizer.
	Rasterizer Rasterizer
	// Sink receives engine lifecycle events.
	Sink EventSink
	// ScreenshotDir is where Screenshot writes PNGs; "" means "screenshots".
	ScreenshotDir string
	// ExitWhen, if set, ends the game loop once it returns true.
	ExitWhen func() bool
	// OnTick, if set, is called after every engine tick.
	OnTick func()
}

// Game is an ebiten.Game that runs the engine once per Update and draws the
// resulting particles through a camera.
//
// Keys: Space pauses, R rebuilds with a new seed, P queues a screenshot.
type Game struct {
	engine   *Engine
	config   *ConfigStore
	cam      *Camera
	intro    *ZoomTween
	renderer *Renderer
	pointer  PointerSource
	overlay  *statsOverlay
	exitWhen func() bool
	onTick   func()

	text          string
	scale         float64
	width, height int
	seed          uint64
	forceRebuild  bool
	skippedSize   [2]int
	drawables     []Drawable

	// ScreenshotDir is the output directory for Screenshot.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewGame creates a Game from rc. The particle field is built on the first
// Update, once the window size is known.
func NewGame(rc RunConfig) *Game {
	if rc.Width <= 0 {
		rc.Width = 800
	}
	if rc.Height <= 0 {
		rc.Height = 600
	}
	if rc.Config == nil {
		rc.Config = NewConfigStore(DefaultConfig())
	}
	if rc.Rasterizer == nil {
		rc.Rasterizer = DefaultRasterizer()
	}
	if rc.ScreenshotDir == "" {
		rc.ScreenshotDir = "screenshots"
	}

	cam := NewCamera(Rect{Width: float64(rc.Width), Height: float64(rc.Height)})
	g := &Game{
		engine:        NewEngine(rc.Rasterizer, rc.Seed),
		config:        rc.Config,
		cam:           cam,
		renderer:      NewRenderer(cam),
		pointer:       rc.Pointer,
		exitWhen:      rc.ExitWhen,
		onTick:        rc.OnTick,
		width:         rc.Width,
		height:        rc.Height,
		seed:          rc.Seed,
		ScreenshotDir: rc.ScreenshotDir,
	}
	if g.pointer == nil {
		g.pointer = NewEbitenPointer(cam)
	}
	if rc.ShowFPS {
		g.overlay = newStatsOverlay()
	}
	g.engine.SetEventSink(rc.Sink)
	g.engine.SetDebugMode(rc.Debug)
	g.SetText(rc.Text)
	g.SetScale(rc.Scale)
	return g
}

// Engine returns the game's simulation engine.
func (g *Game) Engine() *Engine { return g.engine }

// Camera returns the game's camera.
func (g *Game) Camera() *Camera { return g.cam }

// Config returns the live configuration store.
func (g *Game) Config() *ConfigStore { return g.config }

// SetPointerSource replaces the pointer input, e.g. with a PointerScript.
func (g *Game) SetPointerSource(p PointerSource) { g.pointer = p }

// SetExitWhen sets a predicate that ends the game loop once it returns true.
func (g *Game) SetExitWhen(fn func() bool) { g.exitWhen = fn }

// SetText changes the assembled string. The field is rebuilt on the next Update.
func (g *Game) SetText(s string) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if r := []rune(s); len(r) > MaxTextLength {
		s = string(r[:MaxTextLength])
	}
	g.text = s
}

// SetScale changes the glyph scale. The field is rebuilt on the next Update.
func (g *Game) SetScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	g.scale = scale
}

// Update implements ebiten.Game. It takes one configuration snapshot and one
// pointer sample, rebuilds the field if its inputs changed, then ticks.
func (g *Game) Update() error {
	if g.exitWhen != nil && g.exitWhen() {
		return ebiten.Termination
	}
	g.handleKeys()

	cfg := g.config.Load()
	if err := g.maybeRebuild(cfg); err != nil {
		return err
	}

	dt := 1.0 / float64(ebiten.TPS())
	ptr := g.pointer.Pointer()
	g.drawables = g.engine.Tick(dt*1000, cfg, ptr)
	if g.onTick != nil {
		g.onTick()
	}

	if !cfg.Paused {
		if g.intro != nil {
			g.intro.Update(float32(dt))
		}
		g.cam.Update(float32(dt))
	}
	if g.overlay != nil {
		g.overlay.update(dt, g.engine.Stats(), g.renderer.Drawn())
	}
	return nil
}

// maybeRebuild rebuilds the field when its inputs changed. While the window
// has no area (e.g. minimized) the rebuild waits silently; any other canvas
// error is logged once per size.
func (g *Game) maybeRebuild(cfg Config) error {
	if !g.forceRebuild && !g.engine.NeedsRebuild(g.text, g.width, g.height, g.scale) {
		return nil
	}
	if g.width <= 0 || g.height <= 0 {
		return nil
	}
	err := g.rebuild(cfg)
	if err == nil || !errors.Is(err, ErrInvalidCanvas) {
		return err
	}
	if size := [2]int{g.width, g.height}; size != g.skippedSize {
		g.skippedSize = size
		_, _ = fmt.Fprintf(os.Stderr, "[pluribus] rebuild skipped: %v\n", err)
	}
	return nil
}

func (g *Game) rebuild(cfg Config) error {
	g.forceRebuild = false
	if err := g.engine.Rebuild(g.text, g.width, g.height, g.scale, cfg); err != nil {
		return err
	}
	g.cam.SetViewport(Rect{Width: float64(g.width), Height: float64(g.height)})
	g.intro = StartIntro(g.cam, g.engine.Origin(), cfg.SkipIntro)
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.config.Update(func(c *Config) { c.Paused = !c.Paused })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.seed++
		g.engine.Reseed(g.seed)
		g.forceRebuild = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.Screenshot("manual")
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.drawables)
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. A size change rebuilds the field on the
// next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Run opens a window and runs a Game built from rc until it is closed.
func Run(rc RunConfig) error {
	return RunGame(NewGame(rc), rc.Title)
}

// RunGame opens a window sized for g and runs it until it is closed or its
// exit predicate fires.
func RunGame(g *Game, title string) error {
	if title == "" {
		title = "pluribus"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
