package adapter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	m "github.com/mouse-blink/potential/internal/model"
)

// FieldExporter persists an evaluated field for external tools.
type FieldExporter interface {
	Export(field m.Field, out m.Path) error
}

// TextExporter writes one "x y u v psi" line per grid cell, with a blank
// line after every grid row so gnuplot can read the file as a surface.
type TextExporter struct{}

// NewTextExporter creates a TextExporter.
func NewTextExporter() *TextExporter {
	return &TextExporter{}
}

// Export implements FieldExporter.
func (e *TextExporter) Export(field m.Field, out m.Path) error {
	if dir := filepath.Dir(string(out)); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export %s: %w", out, err)
		}
	}

	f, err := os.Create(string(out))
	if err != nil {
		return fmt.Errorf("export %s: %w", out, err)
	}

	if err := e.Write(f, field); err != nil {
		_ = f.Close()
		return fmt.Errorf("export %s: %w", out, err)
	}

	return f.Close()
}

// Write streams the field to w.
func (e *TextExporter) Write(w io.Writer, field m.Field) error {
	if field.X == nil || field.U == nil || field.V == nil || field.Psi == nil {
		return ErrNothingToRender
	}

	bw := bufio.NewWriter(w)
	rows, cols := field.Dims()

	if _, err := fmt.Fprintf(bw, "# %d x %d grid\n# x y u v psi\n", rows, cols); err != nil {
		return err
	}

	buf := make([]byte, 0, 128)

	for i := range rows {
		for j := range cols {
			buf = buf[:0]
			for k, v := range []float64{
				field.X.At(i, j), field.Y.At(i, j),
				field.U.At(i, j), field.V.At(i, j),
				field.Psi.At(i, j),
			} {
				if k > 0 {
					buf = append(buf, ' ')
				}

				buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
			}

			buf = append(buf, '\n')

			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
