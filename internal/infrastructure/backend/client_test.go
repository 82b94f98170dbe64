package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bodega-titos/consola/internal/application/ports"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/entity"
	"github.com/bodega-titos/consola/internal/infrastructure/backend"
)

type recorded struct {
	method string
	path   string
	query  string
	auth   string
	body   map[string]interface{}
}

func newServer(t *testing.T, status int, response string, rec *recorded) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rec != nil {
			rec.method = r.Method
			rec.path = r.URL.Path
			rec.query = r.URL.RawQuery
			rec.auth = r.Header.Get("Authorization")
			raw, _ := io.ReadAll(r.Body)
			if len(raw) > 0 {
				_ = json.Unmarshal(raw, &rec.body)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)

	c, err := backend.NewClient(srv.URL, 5*time.Second, nil)
	require.NoError(t, err)
	return c
}

func TestNewClient_URLInvalida(t *testing.T) {
	_, err := backend.NewClient("localhost", time.Second, nil)
	assert.Error(t, err)
}

func TestAuthenticate_EnviaCredencialesEnQuery(t *testing.T) {
	rec := &recorded{}
	c := newServer(t, http.StatusOK, `{"token":"abc","empleado":{"id":3,"nombre":"Ana","roles":[{"id":1,"nombre":"ADMIN"}]}}`, rec)

	token, emp, err := c.Authenticate(context.Background(), "aruiz", "S3creta@")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
	assert.Equal(t, int64(3), emp.ID)
	assert.True(t, emp.HasRole(entity.RoleAdmin))

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/authenticate", rec.path)
	assert.Contains(t, rec.query, "username=aruiz")
	assert.Contains(t, rec.query, "password=S3creta%40")
	assert.Empty(t, rec.auth)
}

func TestAuthenticate_Rechazado(t *testing.T) {
	c := newServer(t, http.StatusUnauthorized, `{"error":"bad"}`, nil)
	_, _, err := c.Authenticate(context.Background(), "x", "y")
	var ae *domain.AuthenticationError
	require.True(t, errors.As(err, &ae))
}

func TestAuthenticate_SinToken(t *testing.T) {
	c := newServer(t, http.StatusOK, `{"empleado":{"id":1}}`, nil)
	_, _, err := c.Authenticate(context.Background(), "x", "y")
	var ae *domain.AuthenticationError
	require.True(t, errors.As(err, &ae))
}

func TestForToken_EnviaBearerSinTocarClienteBase(t *testing.T) {
	rec := &recorded{}
	c := newServer(t, http.StatusOK, `[{"id":1,"nombre":"Bebidas"}]`, rec)

	cats, err := c.ForToken("tok-a").Categorias.List(context.Background())
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "Bebidas", cats[0].Nombre)
	assert.Equal(t, "Bearer tok-a", rec.auth)
	assert.Equal(t, "/api/categorias", rec.path)

	_, err = backend.NewCategoriaService(c).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, rec.auth, "el cliente base no lleva token")
}

func TestCrud_VerbosYRutas(t *testing.T) {
	ctx := context.Background()
	rec := &recorded{}
	c := newServer(t, http.StatusOK, `{"id":9,"nombre":"Snacks"}`, rec)
	svc := c.ForToken("tok").Categorias

	_, err := svc.GetByID(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "GET /api/categorias/9", rec.method+" "+rec.path)

	_, err = svc.Create(ctx, entity.Categoria{Nombre: "Snacks"})
	require.NoError(t, err)
	assert.Equal(t, "POST /api/categorias", rec.method+" "+rec.path)
	assert.Equal(t, "Snacks", rec.body["nombre"])

	_, err = svc.Update(ctx, 9, entity.Categoria{Nombre: "Snacks"})
	require.NoError(t, err)
	assert.Equal(t, "PUT /api/categorias/9", rec.method+" "+rec.path)

	require.NoError(t, svc.Delete(ctx, 9))
	assert.Equal(t, "DELETE /api/categorias/9", rec.method+" "+rec.path)
}

func TestRequestFailed_ConStatus(t *testing.T) {
	c := newServer(t, http.StatusUnauthorized, `expired`, nil)
	_, err := c.ForToken("viejo").Productos.List(context.Background())

	var rf *domain.RequestFailed
	require.True(t, errors.As(err, &rf))
	assert.Equal(t, http.StatusUnauthorized, rf.Status)
	assert.Equal(t, "/api/productos", rf.Path)
	assert.True(t, domain.IsSessionExpired(err))
}

func TestRequestFailed_SinRespuesta(t *testing.T) {
	c, err := backend.NewClient("http://127.0.0.1:1", time.Second, nil)
	require.NoError(t, err)

	_, err = c.ForToken("t").Ventas.List(context.Background())
	var rf *domain.RequestFailed
	require.True(t, errors.As(err, &rf))
	assert.Equal(t, 0, rf.Status)
	assert.False(t, domain.IsSessionExpired(err))
}

func TestProducto_PreciosComoNumeros(t *testing.T) {
	rec := &recorded{}
	c := newServer(t, http.StatusOK, `{"id":1}`, rec)

	_, err := c.ForToken("t").Productos.Create(context.Background(), entity.Producto{
		Nombre:      "Inca Kola",
		PrecioDia:   decimal.RequireFromString("3.50"),
		PrecioNoche: decimal.RequireFromString("4.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3.5, rec.body["precio_dia"])
	assert.Equal(t, 4.0, rec.body["precio_noche"])
}

func TestVenta_TotalYPreciosComoNumeros(t *testing.T) {
	rec := &recorded{}
	c := newServer(t, http.StatusOK, `{"id":9,"total":"45.00"}`, rec)

	out, err := c.ForToken("t").Ventas.Update(context.Background(), 9, entity.Venta{
		ID:            9,
		NombreCliente: "Maria Lopez",
		Empleado:      entity.Empleado{ID: 2, Username: "lRamos"},
		Producto: entity.Producto{ID: 7, Nombre: "Gaseosa",
			PrecioDia: decimal.RequireFromString("2.00"), PrecioNoche: decimal.RequireFromString("3.00")},
		Cantidad:   15,
		Total:      decimal.RequireFromString("45.00"),
		MetodoPago: entity.PagoEfectivo,
	})
	require.NoError(t, err)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("45")), "la respuesta acepta el total como string")

	assert.Equal(t, 45.0, rec.body["total"])
	assert.Equal(t, "Maria Lopez", rec.body["nombreCliente"])
	assert.Equal(t, 15.0, rec.body["cantidad"])
	prod, ok := rec.body["producto"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 2.0, prod["precio_dia"])
	assert.Equal(t, 3.0, prod["precio_noche"])
	assert.Equal(t, "Gaseosa", prod["nombre"])
	emp, ok := rec.body["empleado"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "lRamos", emp["username"])

	assert.False(t, decimal.MarshalJSONWithoutQuotes, "el cliente no cambia el formato global de decimal")
}

func TestEmpleado_RolYPasswordOpcional(t *testing.T) {
	ctx := context.Background()
	rec := &recorded{}
	c := newServer(t, http.StatusOK, `{"id":4}`, rec)
	svc := c.ForToken("t").Empleados

	in := ports.EmpleadoInput{Empleado: entity.Empleado{Username: "jperez", Nombre: "Juan"}}
	_, err := svc.Update(ctx, 4, in)
	require.NoError(t, err)
	assert.Equal(t, "PUT /api/empleados/4", rec.method+" "+rec.path)
	_, hasPassword := rec.body["password"]
	assert.False(t, hasPassword, "password vacío no se envía")
	roles := rec.body["roles"].([]interface{})
	require.Len(t, roles, 1)
	assert.Equal(t, float64(entity.RoleVendedorID), roles[0].(map[string]interface{})["id"])

	in.Password = "Nueva123@"
	in.RolID = entity.RoleAdminID
	_, err = svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "Nueva123@", rec.body["password"])
	roles = rec.body["roles"].([]interface{})
	assert.Equal(t, float64(entity.RoleAdminID), roles[0].(map[string]interface{})["id"])
}

func TestList_VacioDevuelveSliceVacio(t *testing.T) {
	c := newServer(t, http.StatusOK, `null`, nil)
	roles, err := c.ForToken("t").Roles.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, roles)
	assert.Empty(t, roles)
}
