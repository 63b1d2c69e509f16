package entity

// BusinessProfile son los datos del negocio que encabezan cada documento.
// Fila única en DB (el sistema es single-tenant).
type BusinessProfile struct {
	BusinessName string
	Address      string
	Phone        string
	Email        string
	LogoPath     string // ruta local a la imagen del logo; vacío = sin logo
}
