package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/bodega-titos/consola/internal/application/ports"
	"github.com/bodega-titos/consola/internal/domain"
	"github.com/bodega-titos/consola/internal/domain/entity"
	"github.com/bodega-titos/consola/pkg/logger"
)

// SessionStore persistencia del principal por id de sesión.
type SessionStore interface {
	Load(ctx context.Context, sid string) (*entity.Empleado, error)
	Save(ctx context.Context, sid string, e *entity.Empleado) error
	Clear(ctx context.Context, sid string) error
}

// AuthUseCase casos de uso de autenticación: login, logout y principal actual.
type AuthUseCase struct {
	authenticator ports.Authenticator
	store         SessionStore
	log           *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(authenticator ports.Authenticator, store SessionStore, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{authenticator: authenticator, store: store, log: log.Component("auth")}
}

// Login intercambia credenciales por un principal y lo guarda en la sesión sid.
// Devuelve *domain.AuthenticationError si el backend rechaza o responde sin token, empleado o roles.
func (uc *AuthUseCase) Login(ctx context.Context, sid, username, password string) (*entity.Empleado, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, &domain.AuthenticationError{Reason: "usuario y contraseña son obligatorios"}
	}

	token, empleado, err := uc.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		var ae *domain.AuthenticationError
		if !errors.As(err, &ae) {
			err = &domain.AuthenticationError{Reason: "error al autenticar", Err: err}
		}
		uc.log.Info().Str("username", username).Err(err).Msg("login rechazado")
		return nil, err
	}
	if token == "" || empleado == nil {
		return nil, &domain.AuthenticationError{Reason: "no se recibió un token válido o empleado en la respuesta"}
	}
	if len(empleado.Roles) == 0 {
		return nil, &domain.AuthenticationError{Reason: "el empleado no tiene roles asignados"}
	}

	principal := *empleado
	principal.Username = username
	principal.Token = token
	principal.Password = ""

	if err := uc.store.Save(ctx, sid, &principal); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", username).Int64("empleado_id", principal.ID).Msg("login correcto")
	return &principal, nil
}

// Logout borra el principal de la sesión. Es seguro llamarlo sin sesión activa.
func (uc *AuthUseCase) Logout(ctx context.Context, sid string) error {
	return uc.store.Clear(ctx, sid)
}

// Current principal de la sesión o nil si no hay login.
func (uc *AuthUseCase) Current(ctx context.Context, sid string) (*entity.Empleado, error) {
	return uc.store.Load(ctx, sid)
}
