package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// ErrInvalidConfiguration: la configuración hace indefinido el despeje de
	// precio (suma de porcentajes operativos >= 100, o margen deseado >= 100).
	ErrInvalidConfiguration = errors.New("configuración inválida: el precio no es calculable")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrDuplicate            = errors.New("recurso duplicado")
)
