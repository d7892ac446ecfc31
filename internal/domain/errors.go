package domain

import "errors"

// Errores de dominio (sin dependencias externas). Tres familias:
// autorización (quién), precondición (estado equivocado) y validación (entrada).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	// Autorización
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrNotRequestor       = errors.New("solo el solicitante puede operar este borrador")
	ErrNotCurrentApprover = errors.New("no es el turno de este aprobador")

	// Precondición
	ErrMovementDiscarded  = errors.New("no se puede modificar un movimiento descartado")
	ErrNoPreviousVersion  = errors.New("no hay versión anterior a la cual revertir")
	ErrAlreadySubmitted   = errors.New("la solicitud ya fue enviada")
	ErrOnlyDraftDeletable = errors.New("solo se pueden eliminar borradores")
	ErrWrongState         = errors.New("transición no permitida desde el estado actual")

	// Validación
	ErrNoLines            = errors.New("agregue al menos una línea con cantidad")
	ErrAttachmentRequired = errors.New("adjunto requerido antes de contabilizar")
	ErrPONumberRequired   = errors.New("seleccione el número de PO")
	ErrAdjustmentNote     = errors.New("el ajuste es solo inter-bodega: agregue nota")
)
