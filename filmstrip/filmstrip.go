// Package filmstrip is a reference rendering sink for choreo scenes: it
// reads each actor's live position, color and angle after a scene tick and
// draws them onto PNG frames. The core engine never depends on this package;
// it exists on the far side of the rendering boundary, the way a display
// surface would.
package filmstrip

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/teranos/choreo"
)

// Config defines the canvas a filmstrip draws onto.
type Config struct {
	Width      int        // Canvas width in pixels
	Height     int        // Canvas height in pixels
	ActorSize  int        // Edge length of the square drawn per actor
	Background color.RGBA // Background fill
	Foreground color.RGBA // Frame annotation color
	OutputDir  string     // Directory to save captured frames
}

// DefaultConfig is a reasonable canvas for demos and tests.
func DefaultConfig() Config {
	return Config{
		Width:      320,
		Height:     240,
		ActorSize:  8,
		Background: color.RGBA{0, 0, 0, 255},
		Foreground: color.RGBA{255, 255, 255, 255},
	}
}

// Filmstrip renders scene states to image frames and optionally captures
// them to disk as a numbered sequence.
type Filmstrip struct {
	config     Config
	frameCount int
}

// New creates a filmstrip. The output directory is created on demand.
func New(config Config) *Filmstrip {
	if config.OutputDir != "" {
		os.MkdirAll(config.OutputDir, 0755)
	}
	return &Filmstrip{config: config}
}

// Render draws every actor the scene manages at its current live state:
// a filled square at the actor's position with the actor's color, plus a
// heading line showing its angle. The frame is annotated with the scene
// time in the top-left corner.
func (f *Filmstrip) Render(scene *choreo.Scene) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.config.Width, f.config.Height))

	for y := 0; y < f.config.Height; y++ {
		for x := 0; x < f.config.Width; x++ {
			img.Set(x, y, f.config.Background)
		}
	}

	for _, actor := range scene.Actors() {
		f.drawActor(img, actor)
	}

	f.annotate(img, fmt.Sprintf("t=%.3fs", scene.Time()))
	return img
}

// Capture renders the scene and saves it as the next frame in the sequence,
// returning the file path.
func (f *Filmstrip) Capture(scene *choreo.Scene, label string) (string, error) {
	img := f.Render(scene)

	filename := fmt.Sprintf("%s/frame_%04d_%s.png", f.config.OutputDir, f.frameCount, label)
	out, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("filmstrip: %w", err)
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return "", fmt.Errorf("filmstrip: encode %s: %w", filename, err)
	}

	f.frameCount++
	return filename, nil
}

// drawActor paints one actor: its bounding square with the position as the
// top-left corner, then a heading line from the square's center.
func (f *Filmstrip) drawActor(img *image.RGBA, actor *choreo.Actor) {
	c := rgba(actor.Color)
	size := f.config.ActorSize
	left, top := int(actor.Position.X), int(actor.Position.Y)

	for y := top; y < top+size; y++ {
		for x := left; x < left+size; x++ {
			if image.Pt(x, y).In(img.Bounds()) {
				img.Set(x, y, c)
			}
		}
	}

	// Heading line, angle in degrees, screen y pointing down.
	rad := actor.Angle * math.Pi / 180
	cx, cy := float64(left+size/2), float64(top+size/2)
	for r := 0.0; r <= float64(size); r += 0.5 {
		x, y := int(cx+r*math.Cos(rad)), int(cy+r*math.Sin(rad))
		if image.Pt(x, y).In(img.Bounds()) {
			img.Set(x, y, f.config.Foreground)
		}
	}
}

// annotate draws a text label in the frame's top-left corner.
func (f *Filmstrip) annotate(img *image.RGBA, text string) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(f.config.Foreground),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(2 << 6), Y: fixed.Int26_6(13 << 6)},
	}
	drawer.DrawString(text)
}

// rgba converts an actor color to a drawable color, clamping out-of-range
// components the way a display would.
func rgba(c choreo.RGB) color.RGBA {
	col := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
	r, g, b := col.Clamped().RGB255()
	return color.RGBA{r, g, b, 255}
}
