package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/dot/pkg/errors"
	"github.com/arthur-debert/dot/pkg/logging"
	"github.com/arthur-debert/dot/pkg/manifest"
	"github.com/arthur-debert/dot/pkg/output/styles"
)

// Output formats
const (
	FormatText = "text"
	FormatLong = "long"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// Color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Renderer writes command output to a writer.
type Renderer struct {
	writer  io.Writer
	noColor bool
}

// NewRenderer creates a Renderer for w. color is one of the Color modes.
func NewRenderer(w io.Writer, color string) *Renderer {
	noColor := !colorEnabled(w, color)

	log := logging.GetLogger("output.Renderer")
	log.Debug().
		Str("color", color).
		Bool("noColor", noColor).
		Msg("Creating renderer")

	if color == ColorAlways {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}

	return &Renderer{writer: w, noColor: noColor}
}

// colorEnabled resolves a color mode against the writer and environment.
func colorEnabled(w io.Writer, color string) bool {
	switch color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if termenv.EnvNoColor() {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (r *Renderer) style(name, s string) string {
	if r.noColor {
		return s
	}
	return styles.GetStyle(name).Render(s)
}

// RenderList writes the manifest's entries in the given format.
func (r *Renderer) RenderList(m *manifest.Manifest, format string) error {
	switch format {
	case "", FormatText:
		for _, name := range m.Names() {
			if _, err := fmt.Fprintln(r.writer, name); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
			}
		}
		return nil
	case FormatLong:
		return r.renderLong(m.Entries())
	case FormatYAML:
		return r.renderYAML(m.Entries())
	case FormatTOML:
		data, err := m.Marshal()
		if err != nil {
			return err
		}
		return r.write(data)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown output format %q", format)
	}
}

func (r *Renderer) renderLong(entries []manifest.Entry) error {
	width := 0
	for _, e := range entries {
		if w := lipgloss.Width(e.Name); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, e := range entries {
		pad := strings.Repeat(" ", width-lipgloss.Width(e.Name))
		fmt.Fprintf(&b, "%s%s  %s %s %s",
			r.style("Name", e.Name), pad,
			r.style("FilePath", e.OriginalPath),
			r.style("Muted", "->"),
			r.style("FilePath", e.StoredPath))
		if e.IsDirectory {
			b.WriteString(" " + r.style("Directory", "(dir)"))
		}
		b.WriteString("\n")
	}

	return r.write([]byte(b.String()))
}

func (r *Renderer) renderYAML(entries []manifest.Entry) error {
	enc := yaml.NewEncoder(r.writer)
	enc.SetIndent(2)
	if len(entries) == 0 {
		entries = []manifest.Entry{}
	}
	if err := enc.Encode(entries); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode yaml")
	}
	if err := enc.Close(); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
	}
	return nil
}

func (r *Renderer) write(data []byte) error {
	if _, err := r.writer.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
	}
	return nil
}

// RenderWarning writes a styled warning line.
func (r *Renderer) RenderWarning(msg string) {
	fmt.Fprintln(r.writer, r.style("Warning", msg))
}

// RenderSuccess writes a styled success line.
func (r *Renderer) RenderSuccess(msg string) {
	fmt.Fprintln(r.writer, r.style("Success", msg))
}

// FormatError renders err for the terminal the way the CLI reports failures.
func FormatError(w io.Writer, err error) string {
	msg := fmt.Sprintf("Error: %v", err)
	if !colorEnabled(w, ColorAuto) {
		return msg
	}
	return styles.GetStyle("Error").Render(msg)
}
