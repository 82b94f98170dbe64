package domain_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bodega-titos/consola/internal/domain"
)

func TestRequestFailed_StatusComoErrorDeDominio(t *testing.T) {
	cases := []struct {
		status int
		target error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrForbidden},
		{http.StatusNotFound, domain.ErrNotFound},
		{http.StatusConflict, domain.ErrDuplicate},
		{http.StatusBadRequest, domain.ErrInvalidInput},
		{http.StatusUnprocessableEntity, domain.ErrInvalidInput},
	}
	for _, tc := range cases {
		err := fmt.Errorf("guardar: %w", &domain.RequestFailed{Method: "PUT", Path: "/api/ventas/1", Status: tc.status})
		assert.True(t, errors.Is(err, tc.target), "status %d", tc.status)
	}

	rf := &domain.RequestFailed{Method: "GET", Path: "/api/ventas", Status: http.StatusInternalServerError}
	for _, target := range []error{domain.ErrUnauthorized, domain.ErrForbidden, domain.ErrNotFound, domain.ErrDuplicate, domain.ErrInvalidInput} {
		assert.False(t, errors.Is(rf, target))
	}
}

func TestIsSessionExpired(t *testing.T) {
	assert.True(t, domain.IsSessionExpired(&domain.RequestFailed{Status: http.StatusUnauthorized}))
	assert.True(t, domain.IsSessionExpired(fmt.Errorf("listar: %w", &domain.RequestFailed{Status: http.StatusUnauthorized})))
	assert.False(t, domain.IsSessionExpired(&domain.RequestFailed{Status: http.StatusForbidden}))
	assert.False(t, domain.IsSessionExpired(errors.New("otro")))
	assert.False(t, domain.IsSessionExpired(nil))
}
