// Package migrations expone los scripts SQL de goose embebidos en el binario.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
