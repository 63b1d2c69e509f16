package proposal

import "github.com/tu-usuario/proposal-pro/internal/domain/layout"

// PageWriter serializa el stream de primitivas a un archivo de documento de
// una página. Es la única superficie de fallo del pipeline de render; debe
// ser idempotente por invocación (siempre escribe un archivo fresco) y nunca
// dejar visible un archivo a medias.
type PageWriter interface {
	WritePage(page *layout.Page, path string) error
}
