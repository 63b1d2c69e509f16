// Package layout es el motor de maquetación: convierte una factura y el
// perfil del negocio en un stream ordenado de primitivas de dibujo sobre una
// única página carta. El stream es el único output; no retiene recursos y el
// page-writer lo consume y lo descarta.
package layout

// Dimensiones de página: US Letter a 72 unidades por pulgada.
const (
	PageWidth    = 612.0
	PageHeight   = 792.0
	Margin       = 36.0
	ContentWidth = PageWidth - 2*Margin // 540
)

// CheckGlyph es la marca dibujada dentro de los checkboxes de tipo de documento.
const CheckGlyph = "✓"

// Color RGB de 8 bits por canal.
type Color struct {
	R, G, B uint8
}

var (
	ColorBlack = Color{0, 0, 0}
	ColorWhite = Color{255, 255, 255}
	ColorGray  = Color{136, 136, 136}

	colorPartyBar = Color{50, 50, 50}
	colorTableBar = Color{80, 80, 80}
	colorRowShade = Color{245, 245, 245}
)

// Align alineación horizontal de un run de texto respecto a su X.
type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Primitive es una instrucción atómica de dibujo. Variantes: Text, Line,
// FillRect, StrokeRect, Image.
type Primitive interface {
	primitive()
}

// Text es un run de texto con baseline en (X, Y).
type Text struct {
	X, Y  float64
	S     string
	Size  float64
	Bold  bool
	Color Color
	Align Align
}

// Line es un segmento trazado de (X1,Y1) a (X2,Y2).
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

// FillRect es un rectángulo relleno sin borde.
type FillRect struct {
	X, Y, W, H float64
	Color      Color
}

// StrokeRect es un rectángulo solo con borde.
type StrokeRect struct {
	X, Y, W, H float64
	Width      float64
}

// Image coloca una imagen ya validada por el decoder.
type Image struct {
	X, Y, W, H float64
	Ref        ImageRef
}

func (Text) primitive()       {}
func (Line) primitive()       {}
func (FillRect) primitive()   {}
func (StrokeRect) primitive() {}
func (Image) primitive()      {}

// ImageRef referencia opaca a una imagen decodificable. El renderer solo la
// transporta; el page-writer vuelve a leer el archivo.
type ImageRef struct {
	Path   string
	Format string // "PNG" | "JPEG"
}

// Page es el resultado de un render: una página con su stream de primitivas.
type Page struct {
	Width  float64
	Height float64
	Prims  []Primitive
}

// Measure es la capacidad de medición de texto inyectada por el host:
// (texto, tamaño, negrita) -> ancho en unidades de documento.
type Measure func(s string, size float64, bold bool) float64

// ImageDecoder valida y resuelve la imagen del logo. Cualquier error degrada
// a "sin logo", nunca se propaga.
type ImageDecoder interface {
	Decode(path string) (ImageRef, error)
}
