// Package backend implementa los servicios de entidad contra el API REST de la bodega.
// Usa net/http de la stdlib, igual que los demás adaptadores HTTP salientes.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bodega-titos/consola/internal/application/ports"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/pkg/logger"
)

// Rutas de los recursos REST.
const (
	pathAuthenticate = "/authenticate"
	pathCategorias   = "/api/categorias"
	pathEmpleados    = "/api/empleados"
	pathRoles        = "/api/roles"
	pathProductos    = "/api/productos"
	pathVentas       = "/api/ventas"
)

const maxBodyBytes = 1 << 20

var _ ports.ServiceFactory = (*Client)(nil)

// Client configuración de petición hacia el backend. El valor base no lleva token;
// WithToken devuelve una copia ligada a una sesión, nunca modifica el original.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      string
	log        *logger.Logger
}

// NewClient construye el cliente base.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("backend: URL inválida: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("backend: URL sin esquema o host: %q", baseURL)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Component("backend"),
	}, nil
}

// WithToken copia del cliente que envía Authorization: Bearer <token>.
func (c *Client) WithToken(token string) *Client {
	cp := *c
	cp.token = token
	return &cp
}

// ForToken servicios de entidad para la sesión dueña del token.
func (c *Client) ForToken(token string) ports.Services {
	scoped := c.WithToken(token)
	return ports.Services{
		Categorias: NewCategoriaService(scoped),
		Empleados:  NewEmpleadoService(scoped),
		Roles:      NewRolService(scoped),
		Productos:  NewProductoService(scoped),
		Ventas:     NewVentaService(scoped),
	}
}

// do ejecuta la petición; cualquier fallo de red o status no-2xx es *domain.RequestFailed.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out interface{}) error {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("backend: serializar %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("backend: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		rf := &domain.RequestFailed{Method: method, Path: path, Err: err}
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Msg("backend sin respuesta")
		return rf
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &domain.RequestFailed{Method: method, Path: path, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("backend respondió con error")
		return &domain.RequestFailed{Method: method, Path: path, Status: resp.StatusCode, Body: truncate(string(raw), 512)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.RequestFailed{Method: method, Path: path, Status: resp.StatusCode, Err: fmt.Errorf("deserializar respuesta: %w", err)}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// crud operaciones comunes de un recurso REST: GET colección, GET item, POST, PUT, DELETE.
type crud[T any] struct {
	c    *Client
	path string
}

func (r crud[T]) itemPath(id int64) string {
	return fmt.Sprintf("%s/%d", r.path, id)
}

// List GET colección.
func (r crud[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.c.do(ctx, http.MethodGet, r.path, nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// GetByID GET item.
func (r crud[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodGet, r.itemPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r crud[T]) create(ctx context.Context, in interface{}) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPost, r.path, nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r crud[T]) update(ctx context.Context, id int64, in interface{}) (*T, error) {
	var out T
	if err := r.c.do(ctx, http.MethodPut, r.itemPath(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete DELETE item.
func (r crud[T]) Delete(ctx context.Context, id int64) error {
	return r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, nil)
}
