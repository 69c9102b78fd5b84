package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidSheet      = errors.New("hoja de ventas sin columnas requeridas")
	ErrSheetParse        = errors.New("no se pudo leer el archivo de Excel")
)
