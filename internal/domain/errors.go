package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Los casos de uso los devuelven tal cual para que la capa de presentación
// distinga "corrige tu entrada" de "inténtalo más tarde" sin comparar strings.
var (
	// Validación: la operación se rechaza antes de cualquier escritura.
	ErrInvalidQuantity = errors.New("cantidad inválida: debe ser mayor que cero")
	ErrInvalidPrice    = errors.New("precio inválido: debe ser mayor que cero")
	ErrInvalidAmount   = errors.New("monto inválido: debe ser mayor que cero")
	ErrInvalidInput    = errors.New("entrada inválida")

	// Referencial: el nombre no resuelve o ya existe.
	ErrUnknownAgent        = errors.New("agente no registrado")
	ErrUnknownProduct      = errors.New("producto no registrado")
	ErrDuplicateAgent      = errors.New("ya existe un agente con ese nombre")
	ErrDuplicateProduct    = errors.New("ya existe un producto con ese nombre")
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrSessionAlreadyBound = errors.New("el agente ya está vinculado a otra sesión")

	// Infraestructura: el almacenamiento no responde; reintentar más tarde.
	ErrStorageUnavailable = errors.New("almacenamiento temporalmente no disponible")
)

var sentinels = []error{
	ErrInvalidQuantity, ErrInvalidPrice, ErrInvalidAmount, ErrInvalidInput,
	ErrUnknownAgent, ErrUnknownProduct, ErrDuplicateAgent, ErrDuplicateProduct,
	ErrNotFound, ErrSessionAlreadyBound, ErrStorageUnavailable,
}

// IsDomain reporta si err es (o envuelve) un error de dominio conocido.
// Lo que no lo sea se trata como fallo de infraestructura.
func IsDomain(err error) bool {
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return true
		}
	}
	return false
}
