package layout

import (
	"fmt"

	"github.com/tu-usuario/proposal-pro/internal/domain/entity"
	"github.com/tu-usuario/proposal-pro/internal/domain/money"
	"github.com/tu-usuario/proposal-pro/internal/domain/textlayout"
)

// Textos fijos del formulario de propuesta de contratista.
const (
	fallbackBusinessName = "Your Business Name"
	introText            = "We hereby propose to furnish the materials and perform the labor necessary for the completion of:"
	continueNote         = "(CONTINUE ON THE BACK)"
	guaranteeText        = "All material is guaranteed to be as specified, and the above to be performed " +
		"in accordance with the drawings and specifications submitted for the above work, " +
		"and completed in a substantial workmanlike manner of the sum of"
	disclaimerFence = "Not responsible for location of fence when survey is not provided by customer. " +
		"Not responsible for flat repair or underground cables, pipes."
	disclaimerAlteration = "Any alteration or deviation from the above specifications involving extra costs will be executed only " +
		"upon written order, and will become an extra charge and above the estimate. " +
		"All agreements contingent upon strikes, accidents, or delays beyond our control."
	acceptanceText = "The above prices, specifications and conditions are satisfactory and are hereby accepted. " +
		"You are authorized to do the work as specified. " +
		"Payments will be made as outlined above. Prices and product availability are subject to change."
	lateFeeNotice = "Please note there is a 15% late fee added to the balance if not paid within 5 days from the completion of work"
	validNotice   = "VALID FOR 30 DAYS"
)

// Renderer maqueta una factura sobre una página fija. No falla: cada campo
// tiene default seguro, truncado u omisión; la única superficie de error del
// pipeline completo es el page-writer.
type Renderer struct {
	measure Measure
	decoder ImageDecoder
}

// NewRenderer construye el renderer con el medidor de texto y el decoder de
// imágenes del host.
func NewRenderer(measure Measure, decoder ImageDecoder) *Renderer {
	return &Renderer{measure: measure, decoder: decoder}
}

// Render ejecuta el pipeline de secciones en orden fijo sobre una página
// carta y devuelve el stream de primitivas. Es un cómputo puro y síncrono
// sobre un snapshot inmutable: seguro en cualquier goroutine.
func (r *Renderer) Render(inv *entity.Invoice, profile *entity.BusinessProfile) *Page {
	c := &canvas{r: r, page: &Page{Width: PageWidth, Height: PageHeight}}
	if profile == nil {
		profile = &entity.BusinessProfile{}
	}

	y := Margin

	// 1. Encabezado del negocio
	y = c.drawHeader(profile, y)

	// 2. Fecha + checkboxes de tipo de documento
	y = c.drawDateAndCheckboxes(inv.ProposalDate, inv.DocumentKind, y)

	// 3. "PROPOSAL SUBMITTED TO" / "WORK TO BE PERFORMED AT" a dos columnas
	y = c.drawClientJobSection(inv, y)

	// 4. Descripción del trabajo + tabla de líneas
	y = c.drawWorkArea(inv, y)

	// 5. Monto en palabras y términos
	y = c.drawAmountTerms(inv, y)

	// 6. Firmas y forma de pago
	y = c.drawSignatureSection(y)

	// 7. Pie: descargos, aceptación y avisos
	c.drawFooterSection(y)

	return c.page
}

// ── canvas: acumulador de primitivas ──────────────────────────────────────────

type canvas struct {
	r    *Renderer
	page *Page
}

func (c *canvas) emit(p Primitive) { c.page.Prims = append(c.page.Prims, p) }

func (c *canvas) text(x, y float64, s string, size float64, bold bool) {
	c.emit(Text{X: x, Y: y, S: s, Size: size, Bold: bold, Color: ColorBlack})
}

func (c *canvas) textColor(x, y float64, s string, size float64, bold bool, col Color) {
	c.emit(Text{X: x, Y: y, S: s, Size: size, Bold: bold, Color: col})
}

func (c *canvas) textRight(x, y float64, s string, size float64, bold bool) {
	c.emit(Text{X: x, Y: y, S: s, Size: size, Bold: bold, Color: ColorBlack, Align: AlignRight})
}

// textCentered centra midiendo, igual que el resto del layout.
func (c *canvas) textCentered(y float64, s string, size float64, bold bool) {
	x := PageWidth/2 - c.width(s, size, bold)/2
	c.text(x, y, s, size, bold)
}

func (c *canvas) line(x1, y1, x2, y2, w float64) {
	c.emit(Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: w})
}

func (c *canvas) fillRect(x, y, w, h float64, col Color) {
	c.emit(FillRect{X: x, Y: y, W: w, H: h, Color: col})
}

func (c *canvas) strokeRect(x, y, w, h, lineW float64) {
	c.emit(StrokeRect{X: x, Y: y, W: w, H: h, Width: lineW})
}

func (c *canvas) width(s string, size float64, bold bool) float64 {
	return c.r.measure(s, size, bold)
}

func (c *canvas) wrap(s string, size float64, bold bool, maxW float64) []string {
	return textlayout.Wrap(s, func(t string) float64 {
		return c.r.measure(t, size, bold)
	}, maxW)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// drawHeader: logo a la izquierda, nombre del negocio centrado, líneas de
// contacto centradas (las vacías se omiten sin dejar hueco) y regla inferior.
func (c *canvas) drawHeader(profile *entity.BusinessProfile, y float64) float64 {
	if profile.LogoPath != "" && c.r.decoder != nil {
		// Cualquier fallo de decodificación degrada a "sin logo".
		if ref, err := c.r.decoder.Decode(profile.LogoPath); err == nil {
			c.emit(Image{X: Margin, Y: y, W: 56, H: 56, Ref: ref})
		}
	}

	name := profile.BusinessName
	if name == "" {
		name = fallbackBusinessName
	}
	c.textCentered(y+16, name, 14, true)

	subY := y + 28
	for _, contact := range []string{profile.Email, profile.Phone, profile.Address} {
		if contact == "" {
			continue
		}
		c.textCentered(subY, contact, 8.5, false)
		subY += 11
	}

	bottom := subY + 4
	if floor := y + 65; floor > bottom {
		bottom = floor
	}
	c.line(Margin, bottom, PageWidth-Margin, bottom, 1)
	return bottom + 6
}

// drawDateAndCheckboxes: campo de fecha subrayado y los dos checkboxes
// excluyentes, CONTRACT arriba de PROPOSAL; exactamente uno queda marcado.
func (c *canvas) drawDateAndCheckboxes(date, kind string, y float64) float64 {
	dateX := Margin + 60
	c.text(dateX, y+10, "DATE:", 8.5, true)
	c.text(dateX+36, y+10, date, 9, false)
	c.line(dateX+32, y+11, dateX+132, y+11, 0.5)

	cbX := PageWidth - Margin - 100
	c.drawCheckbox(cbX, y, kind == entity.KindContract, "CONTRACT")
	c.drawCheckbox(cbX, y+14, kind == entity.KindProposal, "PROPOSAL")

	return y + 30
}

func (c *canvas) drawCheckbox(x, y float64, checked bool, label string) {
	const boxSize = 8.0
	c.strokeRect(x, y+1, boxSize, boxSize, 0.75)
	if checked {
		c.text(x+1, y+boxSize-0.5, CheckGlyph, 9, true)
	}
	c.text(x+boxSize+3, y+boxSize-1, label, 8, false)
}

// drawClientJobSection: dos columnas enmarcadas con barra de título oscura y
// tres filas etiqueta/valor cada una. Los valores largos se truncan a 35
// caracteres para proteger el ancho de columna (simplificación deliberada).
func (c *canvas) drawClientJobSection(inv *entity.Invoice, y float64) float64 {
	colW := ContentWidth/2 - 2
	x1 := Margin
	x2 := Margin + colW + 4
	const (
		headerH = 13.0
		rowH    = 16.0
	)
	boxH := headerH + rowH*3 + 4

	c.fillRect(x1, y, colW, headerH, colorPartyBar)
	c.fillRect(x2, y, colW, headerH, colorPartyBar)
	c.textColor(x1+2, y+9, "PROPOSAL SUBMITTED TO:", 7, true, ColorWhite)
	c.textColor(x2+2, y+9, "WORK TO BE PERFORMED AT:", 7, true, ColorWhite)

	c.strokeRect(x1, y, colW, boxH, 0.75)
	c.strokeRect(x2, y, colW, boxH, 0.75)

	type fieldRow struct{ label, value string }
	col1 := []fieldRow{
		{"NAME", inv.ClientName},
		{"ADDRESS", inv.ClientAddress},
		{"PHONE NO.", inv.ClientPhone},
	}
	col2 := []fieldRow{
		{"ADDRESS", inv.JobAddress},
		{"DATE OF PLANS", inv.DatePlans},
		{"ARCHITECT", inv.Architect},
	}

	ry := y + headerH + 1
	for i := 0; i < 3; i++ {
		lineY := ry + rowH
		c.text(x1+2, ry+8, col1[i].label, 7.5, true)
		c.line(x1, lineY, x1+colW, lineY, 0.4)
		if col1[i].value != "" {
			c.text(x1+2, ry+15, truncateRunes(col1[i].value, 35), 8.5, false)
		}
		c.text(x2+2, ry+8, col2[i].label, 7.5, true)
		c.line(x2, lineY, x2+colW, lineY, 0.4)
		if col2[i].value != "" {
			c.text(x2+2, ry+15, truncateRunes(col2[i].value, 35), 8.5, false)
		}
		ry += rowH
	}

	return y + boxH + 8
}

// drawWorkArea: frase introductoria, caja de descripción que crece con el
// texto (única sección de altura dependiente de datos: todo lo de abajo se
// desplaza con ella) y la tabla compacta de líneas si existen.
func (c *canvas) drawWorkArea(inv *entity.Invoice, y float64) float64 {
	c.text(Margin, y+10, introText, 8.5, false)
	y += 16

	descLines := c.wrap(inv.WorkDescription, 8.5, false, ContentWidth-4)
	descBoxH := float64(len(descLines))*12 + 8
	if descBoxH < 40 {
		descBoxH = 40
	}
	c.strokeRect(Margin, y, ContentWidth, descBoxH, 0.75)
	ly := y + 12
	for _, line := range descLines {
		c.text(Margin+3, ly, line, 8.5, false)
		ly += 12
	}

	// Nota fija anclada a la esquina inferior derecha de la caja; constante
	// cosmética del formulario, no una señal real de paginación.
	noteX := PageWidth - Margin - c.width(continueNote, 7, false)
	c.textColor(noteX, y+descBoxH-4, continueNote, 7, false, ColorGray)

	y += descBoxH + 6

	if len(inv.Items) > 0 {
		y = c.drawLineItemsCompact(inv.Items, y)
	}
	return y
}

// drawLineItemsCompact: tabla de cuatro columnas con barra de título oscura,
// filas alternas sombreadas, divisores verticales y borde exterior ajustado a
// las filas dibujadas. Sin paginación: todas las líneas caen en la página.
func (c *canvas) drawLineItemsCompact(items []entity.LineItem, y0 float64) float64 {
	colDesc := Margin
	colQty := Margin + 300
	colPrice := Margin + 360
	colTotal := Margin + 440
	const (
		rowH    = 14.0
		headerH = 13.0
	)

	c.fillRect(Margin, y0, ContentWidth, headerH, colorTableBar)
	c.textColor(colDesc+2, y0+9, "DESCRIPTION", 7.5, true, ColorWhite)
	c.textColor(colQty+2, y0+9, "QTY", 7.5, true, ColorWhite)
	c.textColor(colPrice+2, y0+9, "UNIT PRICE", 7.5, true, ColorWhite)
	c.textColor(colTotal+2, y0+9, "TOTAL", 7.5, true, ColorWhite)

	y := y0 + headerH
	for i, item := range items {
		if i%2 == 1 {
			c.fillRect(Margin, y, ContentWidth, rowH, colorRowShade)
		}
		c.text(colDesc+2, y+9, truncateRunes(item.Description, 46), 8, false)
		c.text(colQty+2, y+9, item.Quantity.StringFixed(2), 8, false)
		c.text(colPrice+2, y+9, money.FormatCents(item.UnitPrice), 8, false)
		c.text(colTotal+2, y+9, money.FormatCents(item.LineTotal), 8, false)
		y += rowH
	}

	c.strokeRect(Margin, y0, ContentWidth, y-y0, 0.75)
	for _, x := range []float64{colQty, colPrice, colTotal} {
		c.line(x, y0, x, y, 0.4)
	}
	return y + 6
}

// drawAmountTerms: párrafo de garantía, monto total en palabras con el
// numérico entre paréntesis, bloque Subtotal/Tax/TOTAL alineado a la derecha
// y línea de forma de pago. El impuesto mostrado se recalcula de
// subtotal + porcentaje (el registro no guarda el monto de impuesto).
func (c *canvas) drawAmountTerms(inv *entity.Invoice, y0 float64) float64 {
	y := y0 + 8
	totalStr := money.FormatCents(inv.Total)
	taxAmt := money.TaxAmount(inv.Subtotal, inv.TaxPercent)
	totX := PageWidth - Margin - 160

	for _, line := range c.wrap(guaranteeText, 8, false, ContentWidth) {
		y += 11
		c.text(Margin, y, line, 8, false)
	}
	y += 8

	dollarLine := fmt.Sprintf("%s Dollars (%s)", money.AmountInWords(inv.Total), totalStr)
	for _, line := range c.wrap(dollarLine, 8, false, ContentWidth) {
		y += 11
		c.text(Margin, y, line, 8, false)
	}
	y += 6

	c.text(totX, y, "Subtotal:", 8, false)
	c.textRight(PageWidth-Margin, y, money.FormatCents(inv.Subtotal), 8, false)
	y += 12

	c.text(totX, y, fmt.Sprintf("Tax (%.1f%%):", inv.TaxPercent), 8, false)
	c.textRight(PageWidth-Margin, y, money.FormatCents(taxAmt), 8, false)
	y += 12

	c.text(totX, y, "TOTAL:", 8.5, true)
	c.textRight(PageWidth-Margin, y, totalStr, 8.5, true)
	y += 14

	c.text(Margin, y, "With payments to be made as follows:", 8, false)
	y += 12
	c.line(Margin, y, PageWidth-Margin, y, 0.5)
	y += 12
	c.text(Margin, y, "Respectively submitted", 8, false)
	y += 16

	return y
}

// drawSignatureSection: subrayados de firma/fecha y la fila
// Cash / Check # / Deposit / Balance con espaciados fijos por etiqueta.
func (c *canvas) drawSignatureSection(y float64) float64 {
	const underlineLen = 90.0
	const gap = 12.0

	underline := func(label string, x, yy float64) {
		c.text(x, yy, label, 8, false)
		lx := x + c.width(label, 8, false) + 2
		c.line(lx, yy, lx+underlineLen, yy, 0.5)
	}

	underline("Signature", Margin, y)
	underline("Date", Margin+underlineLen+c.width("Signature", 8, false)+gap+10, y)
	y += 18

	cx := Margin
	payments := []struct {
		label   string
		spacing float64
	}{
		{"Cash", 60}, {"Check #", 80}, {"Deposit", 80}, {"Balance", 80},
	}
	for _, p := range payments {
		underline(p.label, cx, y)
		cx += c.width(p.label, 8, false) + p.spacing + 4
	}
	y += 20

	return y
}

// drawFooterSection: descargos, bloque de aceptación, aviso de mora en
// negrita y "VALID FOR 30 DAYS". Deja de emitir líneas cuando el cursor
// pasaría el margen inferior (recorte silencioso: límite conocido de la
// página única).
func (c *canvas) drawFooterSection(y float64) {
	bottomLimit := PageHeight - 10

	drawWrapped := func(text string, size float64, bold bool) {
		for _, line := range c.wrap(text, size, bold, ContentWidth) {
			if y+9 > bottomLimit {
				return
			}
			c.text(Margin, y, line, size, bold)
			y += 9
		}
	}

	c.line(Margin, y, PageWidth-Margin, y, 0.5)
	y += 8

	drawWrapped(disclaimerFence, 7, false)
	y += 2
	drawWrapped(disclaimerAlteration, 7, false)

	y += 6
	c.line(Margin, y, PageWidth-Margin, y, 0.5)
	y += 8

	drawWrapped(acceptanceText, 7, false)
	y += 6

	if y > bottomLimit {
		return
	}

	// Fila doble de firma/fecha para la aceptación del cliente.
	c.text(Margin, y, "Signature", 8, false)
	c.line(Margin+58, y, Margin+150, y, 0.5)
	c.text(Margin+160, y, "Date", 8, false)
	c.line(Margin+178, y, Margin+250, y, 0.5)
	c.text(Margin+270, y, "Signature", 8, false)
	c.line(Margin+328, y, Margin+420, y, 0.5)
	c.text(Margin+430, y, "Date", 8, false)
	c.line(Margin+448, y, Margin+504, y, 0.5)
	y += 16

	if y > bottomLimit {
		return
	}

	// Aviso de mora: centrado si cabe, si no envuelto a la izquierda.
	lateX := PageWidth/2 - c.width(lateFeeNotice, 8.5, true)/2
	if lateX > Margin {
		c.text(lateX, y, lateFeeNotice, 8.5, true)
	} else {
		for _, line := range c.wrap(lateFeeNotice, 8.5, true, ContentWidth) {
			c.text(Margin, y, line, 8.5, true)
			y += 11
		}
		y -= 11
	}
	y += 14

	if y > bottomLimit {
		return
	}
	c.textCentered(y, validNotice, 11, true)
}

// truncateRunes corta s a max runas (no bytes, para no partir UTF-8).
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
