// Package export writes rendered figures as PNG files onto a billy
// filesystem.
//
// Each figure is encoded into a temporary file next to its destination and
// renamed into place, so a reader never observes a half-written image. A
// failed write removes the temporary file.
package export

import (
	"errors"
	"path"
	"strings"

	"github.com/iburimskiy/waf-visualization/internal/figure"
	"go.uber.org/multierr"
	billy "gopkg.in/src-d/go-billy.v4"
)

// ErrEmptyName indicates a save without a file name.
var ErrEmptyName = errors.New("export: empty file name")

// Store saves figures under a filesystem root.
type Store struct {
	// Filesystem is the directory figures are written to.
	Filesystem billy.Filesystem
}

// Path returns the name a figure saved as name ends up at: name with a
// ".png" extension added when missing.
func Path(name string) string {
	if strings.EqualFold(path.Ext(name), ".png") {
		return name
	}
	return name + ".png"
}

// Save renders fig and stores it as name (see Path).
func (s *Store) Save(name string, fig *figure.Figure) error {
	if name == "" {
		return ErrEmptyName
	}
	loc := Path(name)
	dir := path.Dir(loc)

	if err := s.Filesystem.MkdirAll(dir, 0755); err != nil {
		return err
	}

	temp, err := s.Filesystem.TempFile(dir, "."+path.Base(loc))
	if err != nil {
		return err
	}

	if err := fig.WritePNG(temp); err != nil {
		err = multierr.Append(err, temp.Close())
		return multierr.Append(err, s.Filesystem.Remove(temp.Name()))
	}
	if err := temp.Close(); err != nil {
		return multierr.Append(err, s.Filesystem.Remove(temp.Name()))
	}
	return s.Filesystem.Rename(temp.Name(), loc)
}
