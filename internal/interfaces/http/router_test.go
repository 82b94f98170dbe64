package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodega-titos/consola/internal/application/auth"
	"github.com/bodega-titos/consola/internal/application/dto"
	"github.com/bodega-titos/consola/internal/application/listing"
	"github.com/bodega-titos/consola/internal/application/reporting"
	"github.com/bodega-titos/consola/internal/application/session"
	"github.com/bodega-titos/consola/internal/domain/entity"
	"github.com/bodega-titos/consola/internal/infrastructure/backend"
	"github.com/bodega-titos/consola/internal/infrastructure/memory"
	"github.com/bodega-titos/consola/internal/infrastructure/pdf"
	apphttp "github.com/bodega-titos/consola/internal/interfaces/http"
	"github.com/bodega-titos/consola/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Backend falso
// ──────────────────────────────────────────────────────────────────────────────

type fakeBackend struct {
	mu             sync.Mutex
	tokens         map[string]entity.Empleado
	passwords      map[string]string
	categorias     []entity.Categoria
	productos      []entity.Producto
	empleados      []entity.Empleado
	ventas         []entity.Venta
	creadas        []entity.Venta
	categoriasFail bool
	productosFail  bool
}

var (
	ana = entity.Empleado{ID: 1, Username: "aTito", Nombre: "Ana", Apellido: "Tito",
		Roles: []entity.Rol{{ID: 2, Nombre: "VENDEDOR"}, {ID: 1, Nombre: "ADMIN"}}}
	luis = entity.Empleado{ID: 2, Username: "lRamos", Nombre: "Luis", Apellido: "Ramos",
		Roles: []entity.Rol{{ID: 2, Nombre: "VENDEDOR"}}}
	gaseosa = entity.Producto{ID: 7, Nombre: "Gaseosa", Cantidad: 20,
		Categoria: entity.Categoria{ID: 1, Nombre: "Bebidas"},
		PrecioDia: decimal.RequireFromString("2.00"), PrecioNoche: decimal.RequireFromString("3.00")}
)

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		tokens:     map[string]entity.Empleado{},
		passwords:  map[string]string{"aTito": "Clave#123", "lRamos": "Clave#456"},
		categorias: []entity.Categoria{{ID: 1, Nombre: "Bebidas"}, {ID: 2, Nombre: "Abarrotes"}},
		productos:  []entity.Producto{gaseosa},
		empleados:  []entity.Empleado{ana, luis},
	}
}

func (f *fakeBackend) revoke(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.tokens, token)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeBackend) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /authenticate", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		u, p := r.URL.Query().Get("username"), r.URL.Query().Get("password")
		if f.passwords[u] == "" || f.passwords[u] != p {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var emp entity.Empleado
		for _, e := range f.empleados {
			if e.Username == u {
				emp = e
			}
		}
		token := "tok-" + u + "-" + time.Now().Format("150405.000000000")
		f.tokens[token] = emp
		writeJSON(w, http.StatusOK, map[string]interface{}{"token": token, "empleado": emp})
	})

	authed := func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			f.mu.Lock()
			_, ok := f.tokens[strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")]
			f.mu.Unlock()
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			h(w, r)
		}
	}

	mux.HandleFunc("GET /api/categorias", authed(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.categoriasFail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, f.categorias)
	}))
	mux.HandleFunc("GET /api/productos", authed(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.productosFail {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, f.productos)
	}))
	mux.HandleFunc("GET /api/productos/{id}", authed(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, p := range f.productos {
			if r.PathValue("id") == strconv.FormatInt(p.ID, 10) {
				writeJSON(w, http.StatusOK, p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	mux.HandleFunc("GET /api/empleados", authed(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.empleados)
	}))
	mux.HandleFunc("GET /api/roles", authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []entity.Rol{{ID: 1, Nombre: "ADMIN"}, {ID: 2, Nombre: "VENDEDOR"}})
	}))
	mux.HandleFunc("GET /api/ventas", authed(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, http.StatusOK, f.ventas)
	}))
	mux.HandleFunc("POST /api/ventas", authed(func(w http.ResponseWriter, r *http.Request) {
		var v entity.Venta
		if err := json.NewDecoder(r.Body).Decode(&v); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		v.ID = int64(len(f.ventas) + 1)
		f.ventas = append(f.ventas, v)
		f.creadas = append(f.creadas, v)
		writeJSON(w, http.StatusCreated, v)
	}))
	return mux
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "test-secret-key-for-unit-tests"

type testEnv struct {
	app       *fiber.App
	backend   *fakeBackend
	store     *session.Store
	snapshots *listing.Snapshots
}

type envOpts struct {
	csrf bool
	hora int // hora de la tienda para la tarifa
}

func newEnv(t *testing.T, opts envOpts) *testEnv {
	t.Helper()
	fb := newFakeBackend()
	srv := httptest.NewServer(fb.handler())
	t.Cleanup(srv.Close)

	client, err := backend.NewClient(srv.URL, 5*time.Second, nil)
	require.NoError(t, err)

	lima := time.FixedZone("America/Lima", -5*60*60)
	hora := opts.hora
	if hora == 0 {
		hora = 10
	}
	now := func() time.Time { return time.Date(2024, 3, 15, hora, 30, 0, 0, lima) }

	store := session.NewStore(memory.NewSessionKV(), time.Hour, nil)
	snapshots := listing.NewSnapshots(time.Hour)
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Tienda:    "Bodega Titos",
		AuthUC:    auth.NewAuthUseCase(client, store, nil),
		Services:  client,
		ReportUC:  reporting.NewReportUseCase(pdf.NewMarotoReportGenerator(), "Bodega Titos", lima),
		Snapshots: snapshots,
		Location:  lima,
		Now:       now,
		Session:   apphttp.SessionConfig{Secret: testSecret, Issuer: "consola-test", TTL: time.Hour},
		CSRF:      opts.csrf,
	})
	return &testEnv{app: app, backend: fb, store: store, snapshots: snapshots}
}

func (e *testEnv) do(t *testing.T, method, target string, form url.Values, cookie *http.Cookie) *http.Response {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie && c.Value != "" {
			return c
		}
	}
	return nil
}

func (e *testEnv) login(t *testing.T, username, password string) *http.Cookie {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/login", url.Values{"username": {username}, "password": {password}}, nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/inicio", resp.Header.Get("Location"))
	c := sessionCookie(resp)
	require.NotNil(t, c, "el login debe emitir la cookie de sesión")
	return c
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

// ──────────────────────────────────────────────────────────────────────────────
// Autenticación
// ──────────────────────────────────────────────────────────────────────────────

func TestSinSesion_GetMuestraLogin(t *testing.T) {
	env := newEnv(t, envOpts{})
	for _, path := range []string{"/", "/ventas", "/empleados", "/no-existe"} {
		resp := env.do(t, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		assert.Contains(t, readBody(t, resp), `action="/login"`, path)
	}
}

func TestSinSesion_APIRetorna401(t *testing.T) {
	env := newEnv(t, envOpts{})
	resp := env.do(t, http.MethodGet, "/api/sesion", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "UNAUTHORIZED")
}

func TestSinSesion_PostRedirigeALaRaiz(t *testing.T) {
	env := newEnv(t, envOpts{})
	resp := env.do(t, http.MethodPost, "/categorias", url.Values{"nombre": {"Lacteos"}}, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	env := newEnv(t, envOpts{})
	resp := env.do(t, http.MethodPost, "/login", url.Values{"username": {"aTito"}, "password": {"mala"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, sessionCookie(resp))
	assert.Contains(t, readBody(t, resp), "Usuario o contraseña incorrectos.")
}

func TestLogin_AdminVeMenuCompleto(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")

	resp := env.do(t, http.MethodGet, "/inicio", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Bienvenido, Ana")
	for _, href := range []string{`href="/productos"`, `href="/ventas"`, `href="/empleados"`, `href="/categorias"`} {
		assert.Contains(t, body, href)
	}
}

func TestLogin_GuardaPrincipalConToken(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")

	resp := env.do(t, http.MethodGet, "/api/sesion", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.SesionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	assert.Equal(t, "aTito", out.Username)
	assert.Equal(t, "ADMIN", out.Rol, "ADMIN gana aunque no sea el primer rol de la lista")
	assert.Len(t, out.Rutas, 5)
}

func TestRaizYRutaDesconocida_RedirigenAlInicio(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")
	for _, path := range []string{"/", "/no-existe", "/categorias/1/otra-cosa"} {
		resp := env.do(t, http.MethodGet, path, nil, cookie)
		resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/inicio", resp.Header.Get("Location"), path)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Autorización por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestVendedor_RedirigidoDesdeRutasPrivilegiadas(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "lRamos", "Clave#456")

	for _, path := range []string{"/empleados", "/productos", "/categorias", "/ventas/reporte.pdf"} {
		resp := env.do(t, http.MethodGet, path, nil, cookie)
		resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode, path)
		assert.Equal(t, "/inicio", resp.Header.Get("Location"), path)
	}

	resp := env.do(t, http.MethodGet, "/inicio", nil, cookie)
	body := readBody(t, resp)
	assert.Contains(t, body, `href="/ventas"`)
	assert.NotContains(t, body, `href="/empleados"`)
	assert.NotContains(t, body, `href="/categorias"`)
}

func TestVendedor_PuedeAbrirVentas(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "lRamos", "Clave#456")
	resp := env.do(t, http.MethodGet, "/ventas", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "Agregar Venta")
	assert.NotContains(t, body, "reporte.pdf", "el reporte solo se ofrece a ADMIN")
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_DobleLogoutEsIdempotente(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")

	for i := 0; i < 2; i++ {
		resp := env.do(t, http.MethodPost, "/logout", nil, cookie)
		resp.Body.Close()
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/", resp.Header.Get("Location"))
	}

	resp := env.do(t, http.MethodGet, "/inicio", nil, cookie)
	assert.Contains(t, readBody(t, resp), `action="/login"`, "la cookie anterior ya no tiene principal")
}

func TestLogout_SinSesion(t *testing.T) {
	env := newEnv(t, envOpts{})
	resp := env.do(t, http.MethodPost, "/logout", nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// 401 del backend: cierre de sesión implícito
// ──────────────────────────────────────────────────────────────────────────────

func TestBackend401_CierraLaSesion(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")

	env.backend.mu.Lock()
	tokens := make([]string, 0, len(env.backend.tokens))
	for tok := range env.backend.tokens {
		tokens = append(tokens, tok)
	}
	env.backend.mu.Unlock()
	for _, tok := range tokens {
		env.backend.revoke(tok)
	}

	resp := env.do(t, http.MethodGet, "/categorias", nil, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/?expirada=1", resp.Header.Get("Location"))

	resp = env.do(t, http.MethodGet, "/inicio", nil, cookie)
	assert.Contains(t, readBody(t, resp), `action="/login"`)

	resp = env.do(t, http.MethodGet, "/?expirada=1", nil, nil)
	assert.Contains(t, readBody(t, resp), "Su sesión expiró")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tablas
// ──────────────────────────────────────────────────────────────────────────────

func TestCategorias_FiltroYOrden(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")

	resp := env.do(t, http.MethodGet, "/categorias?q=beb", nil, cookie)
	body := readBody(t, resp)
	assert.Contains(t, body, "Bebidas")
	assert.NotContains(t, body, "Abarrotes")

	resp = env.do(t, http.MethodGet, "/categorias?orden=nombre&dir=asc", nil, cookie)
	body = readBody(t, resp)
	assert.Less(t, strings.Index(body, "Abarrotes"), strings.Index(body, "Bebidas"))

	env.backend.mu.Lock()
	assert.Equal(t, "Bebidas", env.backend.categorias[0].Nombre, "el orden se aplica sobre una copia")
	env.backend.mu.Unlock()
}

func TestCategorias_RefrescoFallidoMuestraListaAnterior(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")

	resp := env.do(t, http.MethodGet, "/categorias", nil, cookie)
	resp.Body.Close()

	env.backend.mu.Lock()
	env.backend.categoriasFail = true
	env.backend.mu.Unlock()

	resp = env.do(t, http.MethodGet, "/categorias", nil, cookie)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "últimos datos cargados")
	assert.Contains(t, body, "Abarrotes")
}

func TestCategorias_ValidacionMuestraErrores(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")

	resp := env.do(t, http.MethodPost, "/categorias", url.Values{"nombre": {"ab"}}, cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "al menos 3 caracteres")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas y tarifa
// ──────────────────────────────────────────────────────────────────────────────

func cotizar(t *testing.T, env *testEnv, cookie *http.Cookie) dto.CotizacionResponse {
	t.Helper()
	resp := env.do(t, http.MethodGet, "/api/ventas/cotizacion?producto=7&cantidad=15", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.CotizacionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	return out
}

func TestCotizacion_TarifaNoche(t *testing.T) {
	env := newEnv(t, envOpts{hora: 23})
	cookie := env.login(t, "lRamos", "Clave#456")
	out := cotizar(t, env, cookie)
	assert.Equal(t, "noche", out.Tarifa)
	assert.Equal(t, "45.00", out.Total.String())
	assert.Equal(t, "3.00", out.PrecioUnitario.String())
}

func TestCotizacion_TarifaDia(t *testing.T) {
	env := newEnv(t, envOpts{hora: 10})
	cookie := env.login(t, "lRamos", "Clave#456")
	out := cotizar(t, env, cookie)
	assert.Equal(t, "dia", out.Tarifa)
	assert.Equal(t, "30.00", out.Total.String())
	assert.Equal(t, 20, out.Stock)
}

func TestCotizacion_ParametrosInvalidos(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "lRamos", "Clave#456")
	resp := env.do(t, http.MethodGet, "/api/ventas/cotizacion?producto=7&cantidad=0", nil, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/ventas/cotizacion?producto=99&cantidad=1", nil, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func ventaForm(cantidad string) url.Values {
	return url.Values{
		"empleado":       {""},
		"nombre_cliente": {"Maria Lopez"},
		"producto":       {"7"},
		"cantidad":       {cantidad},
		"metodo_pago":    {"efectivo"},
	}
}

func TestVenta_TotalRecalculadoAlGuardar(t *testing.T) {
	env := newEnv(t, envOpts{hora: 23})
	cookie := env.login(t, "lRamos", "Clave#456")

	form := ventaForm("15")
	form.Set("total", "1.00") // ignorado
	resp := env.do(t, http.MethodPost, "/ventas", form, cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/ventas", resp.Header.Get("Location"))

	env.backend.mu.Lock()
	defer env.backend.mu.Unlock()
	require.Len(t, env.backend.creadas, 1)
	v := env.backend.creadas[0]
	assert.True(t, v.Total.Equal(decimal.RequireFromString("45")), v.Total.String())
	assert.Equal(t, int64(2), v.Empleado.ID, "sin vendedor elegido se usa el principal")
	assert.Empty(t, v.Empleado.Token, "la copia del vendedor no lleva token")
	assert.Equal(t, "efectivo", v.MetodoPago)
}

func TestVenta_StockInsuficiente(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "lRamos", "Clave#456")

	resp := env.do(t, http.MethodPost, "/ventas", ventaForm("21"), cookie)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "sobrepasar el stock disponible")

	env.backend.mu.Lock()
	assert.Empty(t, env.backend.creadas)
	env.backend.mu.Unlock()
}

func TestVenta_FlashTrasGuardar(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "lRamos", "Clave#456")

	resp := env.do(t, http.MethodPost, "/ventas", ventaForm("2"), cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	var flash *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "bodega_flash" {
			flash = c
		}
	}
	require.NotNil(t, flash)

	req := httptest.NewRequest(http.MethodGet, "/ventas", nil)
	req.AddCookie(cookie)
	req.AddCookie(flash)
	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)
	assert.Contains(t, readBody(t, resp), "Venta guardada correctamente.")
}

func TestReporte_AdminDescargaPDF(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")

	resp := env.do(t, http.MethodGet, "/ventas/reporte.pdf", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body := readBody(t, resp)
	assert.True(t, strings.HasPrefix(body, "%PDF"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Sugerencia de username
// ──────────────────────────────────────────────────────────────────────────────

func TestSugerencia(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")

	get := func(q url.Values) dto.SugerenciaResponse {
		resp := env.do(t, http.MethodGet, "/api/empleados/sugerencia?"+q.Encode(), nil, cookie)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var out dto.SugerenciaResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
		resp.Body.Close()
		return out
	}

	out := get(url.Values{"nombre": {"Juan"}, "apellido": {"perez garcia"}})
	assert.Equal(t, "jPerez", out.Value)
	assert.False(t, out.Manual)

	out = get(url.Values{"nombre": {"Juan"}, "apellido": {"Perez"}, "username": {"juanito"}, "manual": {"true"}})
	assert.Equal(t, "juanito", out.Value, "tras editar a mano no se vuelve a sugerir")
	assert.True(t, out.Manual)
}

// ──────────────────────────────────────────────────────────────────────────────
// CSRF
// ──────────────────────────────────────────────────────────────────────────────

func TestCSRF_PostSinTokenRechazado(t *testing.T) {
	env := newEnv(t, envOpts{csrf: true})
	resp := env.do(t, http.MethodPost, "/login", url.Values{"username": {"aTito"}, "password": {"Clave#123"}}, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCSRF_LoginIncluyeToken(t *testing.T) {
	env := newEnv(t, envOpts{csrf: true})
	resp := env.do(t, http.MethodGet, "/", nil, nil)
	assert.Contains(t, readBody(t, resp), `name="_csrf"`)
}

func TestSessionStore_SeLimpiaEnLogout(t *testing.T) {
	env := newEnv(t, envOpts{})
	resp := env.do(t, http.MethodPost, "/login", url.Values{"username": {"aTito"}, "password": {"Clave#123"}}, nil)
	resp.Body.Close()
	cookie := sessionCookie(resp)
	require.NotNil(t, cookie)

	resp = env.do(t, http.MethodPost, "/logout", nil, cookie)
	resp.Body.Close()

	// Tras el logout la cookie ya no resuelve a ningún principal.
	resp = env.do(t, http.MethodGet, "/api/sesion", nil, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVenta_SinStockActualNoSeGuarda(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "lRamos", "Clave#456")

	// Primera carga: la lista de productos queda guardada con stock 20.
	resp := env.do(t, http.MethodGet, "/ventas", nil, cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env.backend.mu.Lock()
	env.backend.productosFail = true
	env.backend.mu.Unlock()

	resp = env.do(t, http.MethodPost, "/ventas", ventaForm("5"), cookie)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	body := readBody(t, resp)
	assert.Contains(t, body, "No se pudo verificar el stock actual.")
	assert.Contains(t, body, "Gaseosa", "la lista guardada se sigue mostrando")

	env.backend.mu.Lock()
	assert.Empty(t, env.backend.creadas, "no se envía una venta validada contra stock viejo")
	env.backend.mu.Unlock()
}

func TestSesionVencida_DescartaListasGuardadas(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")
	sid, err := jwt.Parse(testSecret, cookie.Value)
	require.NoError(t, err)

	resp := env.do(t, http.MethodGet, "/categorias", nil, cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, env.snapshots.Len())

	// El almacén vence la sesión sin pasar por logout.
	require.NoError(t, env.store.Clear(context.Background(), sid))

	resp = env.do(t, http.MethodGet, "/categorias", nil, cookie)
	assert.Contains(t, readBody(t, resp), `action="/login"`)
	assert.Equal(t, 0, env.snapshots.Len())

	fail := func(context.Context) ([]entity.Categoria, error) { return nil, assert.AnError }
	r := listing.Refresh(context.Background(), env.snapshots, sid, "categorias", fail)
	assert.False(t, r.Stale)
	assert.Nil(t, r.Rows)
}

func TestEmpleados_UsernameManualExplicito(t *testing.T) {
	env := newEnv(t, envOpts{})
	cookie := env.login(t, "aTito", "Clave#123")

	resp := env.do(t, http.MethodGet, "/empleados", nil, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), `name="username_manual" value="false"`)
}
