package entity

// Sesion envoltorio transitorio de la petición: el principal actual o ninguno.
type Sesion struct {
	ID       string
	Empleado *Empleado
}

// Autenticada indica si hay un principal cargado.
func (s Sesion) Autenticada() bool {
	return s.Empleado != nil
}
