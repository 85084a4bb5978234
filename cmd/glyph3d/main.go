// glyph3d - ASCII 3D model viewer
// Renders OBJ and GLB files as shaded characters in your terminal.
//
// Controls:
//
//	Arrows/hjkl/wasd - Orbit the camera
//	+/i              - Zoom in
//	-/o              - Zoom out
//	Tab              - Toggle HUD overlay
//	q/Esc            - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/log"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/taigrr/glyph3d/pkg/math3d"
	"github.com/taigrr/glyph3d/pkg/models"
	"github.com/taigrr/glyph3d/pkg/render"
)

var (
	useColor    = flag.Bool("color", false, "Color faces by material (reads .mtl / GLB materials)")
	staticLight = flag.Bool("light", false, "Pin the light in world space instead of following the camera")
	animate     = flag.Float64("animate", 0, "Auto-orbit speed in degrees per second (any key stops it)")
	zoom        = flag.Float64("zoom", render.DefaultZoom, "Initial zoom factor")
	flipFaces   = flag.Bool("flip", false, "Reverse face winding (for meshes with inward normals)")
	invertX     = flag.Bool("invert-x", false, "Mirror the model along the X axis")
	invertY     = flag.Bool("invert-y", false, "Mirror the model along the Y axis")
	invertZ     = flag.Bool("invert-z", false, "Mirror the model along the Z axis")
	targetFPS   = flag.Int("fps", 30, "Target frames per second")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "glyph3d - ASCII 3D model viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: glyph3d [options] <model.obj|model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Arrows/hjkl/wasd - Orbit the camera\n")
		fmt.Fprintf(os.Stderr, "  +/i, -/o         - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  Tab              - Toggle HUD\n")
		fmt.Fprintf(os.Stderr, "  q/Esc            - Quit\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

// loadMesh picks the loader by extension and applies the setup-phase
// transforms before any frame is drawn.
func loadMesh(path string) (*models.Mesh, error) {
	var (
		mesh *models.Mesh
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		mesh, err = models.LoadOBJ(path, *useColor)
	case ".glb", ".gltf":
		mesh, err = models.LoadGLB(path)
	default:
		return nil, fmt.Errorf("unsupported format %q (use .obj or .glb)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	mesh.Normalize()
	mesh.Scale(3)
	if *invertX {
		mesh.InvertX()
	}
	if *invertY {
		mesh.InvertY()
	}
	if *invertZ {
		mesh.InvertZ()
	}
	if *flipFaces {
		mesh.FlipFaces()
	}

	log.Info("loaded model",
		"file", filepath.Base(path),
		"vertices", mesh.VertexCount(),
		"triangles", mesh.TriangleCount(),
		"materials", mesh.MaterialCount(),
	)
	return mesh, nil
}

// spinAxis is one orbit axis with spring-decayed angular velocity: key
// presses add impulses, the critically damped spring takes the velocity
// back to zero without overshoot.
type spinAxis struct {
	vel, accel float64
	spring     harmonica.Spring
}

func newSpinAxis(fps int) *spinAxis {
	return &spinAxis{spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0)}
}

func (a *spinAxis) impulse(v float64) {
	a.vel += v
}

// step returns this frame's rotation delta and decays the velocity.
func (a *spinAxis) step() float64 {
	v := a.vel
	a.vel, a.accel = a.spring.Update(a.vel, a.accel, 0)
	return v
}

func run(modelPath string) error {
	mesh, err := loadMesh(modelPath)
	if err != nil {
		return err
	}

	var pal render.Palette
	if *useColor {
		pal = render.NewPalette(mesh.Materials)
	}

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	cleanup := func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	termRenderer := render.NewTerminalRenderer(term, width, height)
	buf := render.NewBuffer(termRenderer.BufferSize())

	camera := render.NewCamera(*zoom)
	light := render.NewLight(math3d.V3(-0.75, 1, 0.5), *staticLight)
	renderer := render.NewRenderer(camera, light)

	azimuth := newSpinAxis(*targetFPS)
	altitude := newSpinAxis(*targetFPS)

	// Constant auto-orbit rate per frame; the first key press hands control
	// back to the user.
	autoRate := math3d.Deg2Rad(*animate) / float64(*targetFPS)
	animating := autoRate != 0

	showHUD := true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				buf = render.NewBuffer(termRenderer.BufferSize())

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("q"), ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("left", "h", "a"):
					animating = false
					azimuth.impulse(render.AngleStep)
				case ev.MatchString("right", "l", "d"):
					animating = false
					azimuth.impulse(-render.AngleStep)
				case ev.MatchString("up", "k", "w"):
					animating = false
					altitude.impulse(render.AngleStep)
				case ev.MatchString("down", "j", "s"):
					animating = false
					altitude.impulse(-render.AngleStep)
				case ev.MatchString("+", "=", "i"):
					animating = false
					camera.ZoomIn()
				case ev.MatchString("-", "_", "o"):
					animating = false
					camera.ZoomOut()
				case ev.MatchString("tab"):
					showHUD = !showHUD
				}
			}
		}
	}()

	frameDuration := time.Second / time.Duration(*targetFPS)
	frames, fps := 0, 0.0
	fpsTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		start := time.Now()

		if animating {
			camera.RotateLeft(autoRate)
		}
		orbit(camera, azimuth.step(), altitude.step())

		buf.Clear()
		renderer.Render(mesh, buf)
		termRenderer.Render(buf, pal)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		frames++
		if elapsed := time.Since(fpsTime); elapsed >= time.Second {
			fps = float64(frames) / elapsed.Seconds()
			frames = 0
			fpsTime = time.Now()
		}
		drawHUD(showHUD, width, height, fps, mesh, camera)

		if elapsed := time.Since(start); elapsed < frameDuration {
			time.Sleep(frameDuration - elapsed)
		}
	}
}

// orbit applies one frame of signed rotation deltas to the camera.
func orbit(c *render.Camera, dAz, dAlt float64) {
	c.RotateLeft(dAz)
	if dAlt >= 0 {
		c.RotateUp(dAlt)
	} else {
		c.RotateDown(-dAlt)
	}
}

// drawHUD paints the overlay rows directly with ANSI sequences, on top of
// the flushed frame. Both rows are cleared first so toggling off works.
func drawHUD(show bool, width, height int, fps float64, mesh *models.Mesh, cam *render.Camera) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)
	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)
	if !show {
		return
	}

	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, fps, reset)

	title := fmt.Sprintf(" %s ", mesh.Name)
	titleCol := max((width-len(title))/2, 1)
	fmt.Print(moveTo(1, titleCol) + bold + bgBlack + fgWhite + title + reset)

	polyStr := fmt.Sprintf(" %d tris ", mesh.TriangleCount())
	fmt.Print(moveTo(1, max(width-len(polyStr), 1)) + bgBlack + fgCyan + polyStr + reset)

	status := fmt.Sprintf(" az %5.1f°  alt %5.1f°  zoom %.1f ",
		math3d.Rad2Deg(cam.Azimuth), math3d.Rad2Deg(cam.Altitude), cam.Zoom)
	fmt.Print(moveTo(height, 1) + bgBlack + fgWhite + status + reset)
}
