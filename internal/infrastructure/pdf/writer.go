package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/tu-usuario/proposal-pro/internal/domain/layout"
)

// Writer serializa un layout.Page a un archivo PDF de una sola página.
// La escritura es temp-then-rename: nunca queda visible un archivo a medias
// en lugar de un PDF anterior exitoso.
type Writer struct{}

// NewWriter construye el writer.
func NewWriter() *Writer { return &Writer{} }

// WritePage dibuja el stream de primitivas y publica el archivo en path.
func (w *Writer) WritePage(page *layout.Page, path string) error {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	tr := doc.UnicodeTranslatorFromDescriptor("")

	for _, prim := range page.Prims {
		switch p := prim.(type) {
		case layout.Text:
			drawText(doc, tr, p)
		case layout.Line:
			doc.SetDrawColor(0, 0, 0)
			doc.SetLineWidth(p.Width)
			doc.Line(p.X1, p.Y1, p.X2, p.Y2)
		case layout.FillRect:
			doc.SetFillColor(int(p.Color.R), int(p.Color.G), int(p.Color.B))
			doc.Rect(p.X, p.Y, p.W, p.H, "F")
		case layout.StrokeRect:
			doc.SetDrawColor(0, 0, 0)
			doc.SetLineWidth(p.Width)
			doc.Rect(p.X, p.Y, p.W, p.H, "D")
		case layout.Image:
			opts := gofpdf.ImageOptions{ImageType: p.Ref.Format, ReadDpi: true}
			doc.ImageOptions(p.Ref.Path, p.X, p.Y, p.W, p.H, false, opts, 0, "")
		}
	}

	if doc.Err() {
		return fmt.Errorf("pdf: dibujar página: %w", doc.Error())
	}
	return publish(doc, path)
}

func drawText(doc *gofpdf.Fpdf, tr func(string) string, p layout.Text) {
	var s string
	if p.S == layout.CheckGlyph {
		// Helvetica (cp1252) no tiene el glifo de check; ZapfDingbats sí
		// ("4" es la marca de verificación).
		doc.SetFont("ZapfDingbats", "", p.Size)
		s = "4"
	} else {
		style := ""
		if p.Bold {
			style = "B"
		}
		doc.SetFont("Helvetica", style, p.Size)
		s = tr(p.S)
	}
	doc.SetTextColor(int(p.Color.R), int(p.Color.G), int(p.Color.B))

	x := p.X
	if p.Align == layout.AlignRight {
		x -= doc.GetStringWidth(s)
	}
	doc.Text(x, p.Y, s)
}

// publish escribe a un temporal en el mismo directorio y renombra al destino.
func publish(doc *gofpdf.Fpdf, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("pdf: crear directorio %s: %w", dir, err)
	}
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := doc.OutputFileAndClose(tmp); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("pdf: escribir archivo: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("pdf: publicar archivo: %w", err)
	}
	return nil
}
