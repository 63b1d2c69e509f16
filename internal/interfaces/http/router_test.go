package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/proposal-pro/internal/application/auth"
	"github.com/tu-usuario/proposal-pro/internal/application/proposal"
	"github.com/tu-usuario/proposal-pro/internal/domain/entity"
	"github.com/tu-usuario/proposal-pro/internal/domain/layout"
	apphttp "github.com/tu-usuario/proposal-pro/internal/interfaces/http"
	"github.com/tu-usuario/proposal-pro/pkg/config"
	"github.com/tu-usuario/proposal-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para montar el router completo
// ──────────────────────────────────────────────────────────────────────────────

type memInvoices struct {
	byID   map[int64]*entity.Invoice
	nextID int64
}

func newMemInvoices() *memInvoices {
	return &memInvoices{byID: map[int64]*entity.Invoice{}, nextID: 1}
}

func (r *memInvoices) Create(inv *entity.Invoice) error {
	inv.ID = r.nextID
	r.nextID++
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *memInvoices) GetByID(id int64) (*entity.Invoice, error) {
	inv, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *memInvoices) ListAll() ([]*entity.Invoice, error) {
	out := make([]*entity.Invoice, 0, len(r.byID))
	for id := r.nextID - 1; id >= 1; id-- {
		if inv, ok := r.byID[id]; ok {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memInvoices) Update(inv *entity.Invoice) error {
	cp := *inv
	r.byID[inv.ID] = &cp
	return nil
}

func (r *memInvoices) Delete(id int64) error {
	delete(r.byID, id)
	return nil
}

func (r *memInvoices) GetItemsByInvoiceID(invoiceID int64) ([]entity.LineItem, error) {
	inv, ok := r.byID[invoiceID]
	if !ok {
		return nil, nil
	}
	return inv.Items, nil
}

func (r *memInvoices) SetPDFPath(id int64, path string) error {
	if inv, ok := r.byID[id]; ok {
		inv.PDFPath = path
	}
	return nil
}

type memProfiles struct{ p *entity.BusinessProfile }

func (r *memProfiles) Get() (*entity.BusinessProfile, error) { return r.p, nil }
func (r *memProfiles) Save(p *entity.BusinessProfile) error {
	cp := *p
	r.p = &cp
	return nil
}

type memUsers struct{ byEmail map[string]*entity.User }

func (r *memUsers) Create(u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *memUsers) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type nopWriter struct{}

func (nopWriter) WritePage(*layout.Page, string) error { return nil }

func routerMeasure(s string, size float64, bold bool) float64 {
	return float64(len([]rune(s))) * size * 0.5
}

// buildRouterApp monta la aplicación completa con repositorios en memoria y
// un invoice pre-sembrado con ID 1.
func buildRouterApp(t *testing.T) (*fiber.App, *memInvoices) {
	t.Helper()
	log := logger.New(logger.Config{Env: "test", Level: "error"})
	invoices := newMemInvoices()
	require.NoError(t, invoices.Create(&entity.Invoice{
		ClientName:   "Pat Lopez",
		DocumentKind: entity.KindProposal,
		CreatedAt:    time.Now(),
	}))

	profiles := &memProfiles{}
	renderer := layout.NewRenderer(routerMeasure, nil)
	proposalUC := proposal.NewUseCase(invoices, profiles, log)
	pdfUC := proposal.NewPDFUseCase(invoices, profiles, renderer, nopWriter{}, t.TempDir(), log)
	authUC := auth.NewUseCase(&memUsers{byEmail: map[string]*entity.User{}}, config.JWTConfig{
		Secret:     testJWTSecret,
		Expiration: testExpMin,
		Issuer:     testIssuer,
	}, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProposalUC: proposalUC,
		PDFUC:      pdfUC,
		AuthUC:     authUC,
		JWTSecret:  testJWTSecret,
	})
	return app, invoices
}

func doRouterRequest(t *testing.T, app *fiber.App, method, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización por rol en las rutas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_DeleteRequiereRolAdmin(t *testing.T) {
	app, invoices := buildRouterApp(t)

	resp := doRouterRequest(t, app, http.MethodDelete, "/api/invoices/1", tokenForRole(t, entity.RoleOffice))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"office no debe poder borrar facturas")
	_, exists := invoices.byID[1]
	assert.True(t, exists, "la factura sigue existiendo tras el 403")
}

func TestRouter_DeleteConAdminFunciona(t *testing.T) {
	app, invoices := buildRouterApp(t)

	resp := doRouterRequest(t, app, http.MethodDelete, "/api/invoices/1", tokenForRole(t, entity.RoleAdmin))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	_, exists := invoices.byID[1]
	assert.False(t, exists, "admin sí borra la factura")
}

func TestRouter_LecturaNoExigeRolAdmin(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := doRouterRequest(t, app, http.MethodGet, "/api/invoices/1", tokenForRole(t, entity.RoleOffice))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"las rutas de lectura solo exigen token válido")
}

func TestRouter_RutasProtegidasSinToken(t *testing.T) {
	app, _ := buildRouterApp(t)

	resp := doRouterRequest(t, app, http.MethodGet, "/api/invoices/", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
