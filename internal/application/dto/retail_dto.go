package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RetailSheetRowResponse fila leída de la hoja (vista previa).
type RetailSheetRowResponse struct {
	RowIndex    int             `json:"row_index"`
	Code        string          `json:"code"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	ActualSales *int            `json:"actual_sales,omitempty"`
	AppliedAt   *time.Time      `json:"applied_at,omitempty"`
}

// RetailPreviewResponse resultado de la vista previa de una hoja.
type RetailPreviewResponse struct {
	Rows  []RetailSheetRowResponse `json:"rows"`
	Count int                      `json:"count"`
}

// RetailUploadResponse resultado de importar una hoja de ventas.
type RetailUploadResponse struct {
	Success         bool     `json:"success"`
	Message         string   `json:"message"`
	ProcessedCount  int      `json:"processed_count"`
	SkippedProducts []string `json:"skipped_products"`
	SkippedCount    int      `json:"skipped_count"`
	Warning         string   `json:"warning,omitempty"`
}

// RetailListQuery filtros del listado. SoldDate tiene prioridad sobre el rango;
// sin fechas se listan los últimos 30 días.
type RetailListQuery struct {
	SoldDate  *time.Time
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// RetailResponse venta registrada.
type RetailResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"company_id"`
	ProductID   string          `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	SoldDate    string          `json:"sold_date"`
	Quantity    decimal.Decimal `json:"quantity"`
	ActualSales *int            `json:"actual_sales,omitempty"`
	AppliedAt   *time.Time      `json:"applied_at,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// RetailListResponse lista paginada de ventas.
type RetailListResponse struct {
	Items []RetailResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
