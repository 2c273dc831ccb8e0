// Package viewer shows the gallery's figures in a window, one after the
// other. Dismissing a figure (key press or the window's close button) moves
// to the next; the window closes after the last.
package viewer

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/waf-visualization/internal/config"
	"github.com/iburimskiy/waf-visualization/internal/export"
	"github.com/iburimskiy/waf-visualization/internal/figure"
	"github.com/iburimskiy/waf-visualization/internal/gallery"
	"github.com/ncruces/zenity"
	"gopkg.in/src-d/go-billy.v4/osfs"
)

const statusHeight = 28

var dismissKeys = []ebiten.Key{
	ebiten.KeyEnter,
	ebiten.KeySpace,
	ebiten.KeyEscape,
	ebiten.KeyQ,
	ebiten.KeyN,
	ebiten.KeyArrowRight,
}

type viewer struct {
	out    io.Writer
	cursor *gallery.Cursor

	// current figure
	stage gallery.Stage
	fig   *figure.Figure
	frame image.Image
	img   *ebiten.Image

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	saved   string
	lastErr error
}

// Run announces, builds and shows every stage in order, blocking until the
// last figure is dismissed. A stage that fails to build stops the run.
func Run(stages []gallery.Stage, out io.Writer) error {
	v := &viewer{
		out:     out,
		cursor:  gallery.NewCursor(stages),
		prevKey: map[ebiten.Key]bool{},
	}
	more, err := v.advance()
	if err != nil || !more {
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetWindowTitle(v.fig.Title)

	if err := ebiten.RunGame(v); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// advance moves to the next stage. It reports false when none is left.
func (v *viewer) advance() (bool, error) {
	stage, ok := v.cursor.Next()
	if !ok {
		return false, nil
	}
	n, _ := v.cursor.Position()
	gallery.Announce(v.out, n, stage)

	fig, err := stage.Build()
	if err != nil {
		return false, fmt.Errorf("%s: %w", stage.Slug, err)
	}
	frame, err := fig.Render()
	if err != nil {
		return false, fmt.Errorf("%s: render: %w", stage.Slug, err)
	}

	if v.img != nil {
		v.img.Deallocate()
		v.img = nil
	}
	v.stage, v.fig, v.frame = stage, fig, frame
	v.saved, v.lastErr = "", nil
	return true, nil
}

func (v *viewer) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !v.prevKey[k]
		v.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyS) {
		if err := v.saveDialog(); err != nil {
			v.lastErr = err
		}
	}

	dismiss := ebiten.IsWindowBeingClosed()
	for _, k := range dismissKeys {
		if justPressed(k) {
			dismiss = true
		}
	}
	if !dismiss {
		return nil
	}

	more, err := v.advance()
	if err != nil {
		return err
	}
	if !more {
		return ebiten.Termination
	}
	ebiten.SetWindowTitle(v.fig.Title)
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	if v.img == nil && v.frame != nil {
		v.img = ebiten.NewImageFromImage(v.frame)
	}
	if v.img != nil {
		sb, ib := screen.Bounds(), v.img.Bounds()
		scale, dx, dy := fit(ib.Dx(), ib.Dy(), sb.Dx(), sb.Dy()-statusHeight)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(dx, dy+statusHeight)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(v.img, op)
	}

	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, w, statusHeight, color.RGBA{R: 20, G: 25, B: 35, A: 230}, false)
	n, total := v.cursor.Position()
	ebitenutil.DebugPrintAt(screen, statusLine(n, total, v.fig.Title, v.saved, v.lastErr), 8, 6)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// saveDialog asks for a destination and writes the current figure there.
// Canceling the dialog is not an error.
func (v *viewer) saveDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save figure"),
		zenity.Filename(export.Path(v.stage.Slug)),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	store := &export.Store{Filesystem: osfs.New(filepath.Dir(filename))}
	if err := store.Save(filepath.Base(filename), v.fig); err != nil {
		return err
	}
	v.saved = export.Path(filename)
	fmt.Fprintf(v.out, "Saved figure to %v\n", v.saved)
	return nil
}
