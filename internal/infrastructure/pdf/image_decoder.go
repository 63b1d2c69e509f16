package pdf

import (
	"fmt"
	"image"
	_ "image/jpeg" // registra el decoder JPEG
	_ "image/png"  // registra el decoder PNG
	"os"
	"strings"

	"github.com/tu-usuario/proposal-pro/internal/domain/layout"
)

// FileImageDecoder valida que el logo exista y sea decodificable antes de que
// el renderer lo coloque. gofpdf vuelve a leer el archivo al dibujar; aquí
// solo se responde "usable o no".
type FileImageDecoder struct{}

// NewFileImageDecoder construye el decoder.
func NewFileImageDecoder() *FileImageDecoder { return &FileImageDecoder{} }

// Decode abre y decodifica la imagen. Cualquier error (archivo ausente,
// formato corrupto o no soportado) se retorna para que el renderer degrade a
// "sin logo".
func (d *FileImageDecoder) Decode(path string) (layout.ImageRef, error) {
	f, err := os.Open(path)
	if err != nil {
		return layout.ImageRef{}, fmt.Errorf("pdf: abrir logo: %w", err)
	}
	defer f.Close()

	_, format, err := image.Decode(f)
	if err != nil {
		return layout.ImageRef{}, fmt.Errorf("pdf: decodificar logo: %w", err)
	}
	switch format {
	case "png", "jpeg":
		return layout.ImageRef{Path: path, Format: strings.ToUpper(format)}, nil
	default:
		return layout.ImageRef{}, fmt.Errorf("pdf: formato de logo no soportado: %s", format)
	}
}
