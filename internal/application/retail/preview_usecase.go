package retail

import (
	"context"
	"io"

	"github.com/jhoicas/inventario-retail/internal/application/dto"
	"github.com/jhoicas/inventario-retail/internal/domain/entity"
)

// PreviewUseCase lee una hoja de ventas sin persistir nada.
type PreviewUseCase struct {
	parser SheetParser
}

// NewPreviewUseCase construye el caso de uso.
func NewPreviewUseCase(parser SheetParser) *PreviewUseCase {
	return &PreviewUseCase{parser: parser}
}

// Preview devuelve las filas válidas de la hoja.
func (uc *PreviewUseCase) Preview(ctx context.Context, r io.Reader) (*dto.RetailPreviewResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := uc.parser.Parse(r)
	if err != nil {
		return nil, err
	}
	out := &dto.RetailPreviewResponse{Rows: make([]dto.RetailSheetRowResponse, 0, len(rows)), Count: len(rows)}
	for _, row := range rows {
		out.Rows = append(out.Rows, toSheetRowResponse(row))
	}
	return out, nil
}

func toSheetRowResponse(r entity.RetailSheetRow) dto.RetailSheetRowResponse {
	return dto.RetailSheetRowResponse{
		RowIndex:    r.RowIndex,
		Code:        r.Code,
		ProductName: r.ProductName,
		Quantity:    r.Quantity,
		ActualSales: r.ActualSales,
		AppliedAt:   r.AppliedAt,
	}
}
