package layout

import (
	"fmt"
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]`)

// FileName construye un nombre de archivo legible tipo "Pat_L_invoice_7.pdf":
// primer token del nombre del cliente saneado, más "_<inicial del apellido>"
// si hay segundo token. Sin tokens se usa el literal "invoice".
func FileName(clientName string, id int64) string {
	parts := strings.Fields(clientName)
	var prefix string
	switch {
	case len(parts) == 0:
		prefix = "invoice"
	case len(parts) == 1:
		prefix = sanitizeName(parts[0])
	default:
		last := []rune(parts[len(parts)-1])
		prefix = sanitizeName(parts[0]) + "_" + strings.ToUpper(string(last[0]))
	}
	return fmt.Sprintf("%s_invoice_%d.pdf", prefix, id)
}

func sanitizeName(s string) string {
	return nonAlnum.ReplaceAllString(s, "")
}
