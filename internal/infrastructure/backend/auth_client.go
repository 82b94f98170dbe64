package backend

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/bodega-titos/consola/internal/application/ports"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/entity"
)

var _ ports.Authenticator = (*Client)(nil)

type authenticateResponse struct {
	Token    string           `json:"token"`
	Empleado *entity.Empleado `json:"empleado"`
}

// Authenticate POST /authenticate con username y password como parámetros de query.
// Cualquier rechazo del backend o respuesta sin token/empleado es *domain.AuthenticationError.
func (c *Client) Authenticate(ctx context.Context, username, password string) (string, *entity.Empleado, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("password", password)

	var out authenticateResponse
	if err := c.do(ctx, http.MethodPost, pathAuthenticate, q, nil, &out); err != nil {
		var rf *domain.RequestFailed
		if errors.As(err, &rf) && rf.Status != 0 {
			return "", nil, &domain.AuthenticationError{Reason: "credenciales rechazadas", Err: err}
		}
		return "", nil, &domain.AuthenticationError{Reason: "error de comunicación con el servidor", Err: err}
	}
	if out.Token == "" || out.Empleado == nil {
		return "", nil, &domain.AuthenticationError{Reason: "no se recibió un token válido o empleado en la respuesta"}
	}
	return out.Token, out.Empleado, nil
}
