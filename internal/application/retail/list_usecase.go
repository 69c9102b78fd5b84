package retail

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/inventario-retail/internal/application/dto"
	"github.com/jhoicas/inventario-retail/internal/domain"
	"github.com/jhoicas/inventario-retail/internal/domain/entity"
	"github.com/jhoicas/inventario-retail/internal/domain/repository"
)

const (
	defaultLimit      = 20
	maxLimit          = 100
	defaultWindowDays = 30
)

// ListUseCase consulta ventas registradas.
type ListUseCase struct {
	repo repository.RetailRepository
	loc  *time.Location
	now  func() time.Time
}

// NewListUseCase construye el caso de uso.
func NewListUseCase(repo repository.RetailRepository, loc *time.Location) *ListUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &ListUseCase{repo: repo, loc: loc, now: time.Now}
}

// WithClock reemplaza el reloj (tests).
func (uc *ListUseCase) WithClock(now func() time.Time) *ListUseCase {
	uc.now = now
	return uc
}

// List lista ventas por día, por rango o de los últimos 30 días.
func (uc *ListUseCase) List(ctx context.Context, companyID string, q dto.RetailListQuery) (*dto.RetailListResponse, error) {
	companyID, err := normalizeCompanyID(companyID)
	if err != nil {
		return nil, err
	}

	if q.Offset < 0 {
		return nil, fmt.Errorf("%w: offset debe ser >= 0", domain.ErrInvalidInput)
	}

	f := repository.RetailFilter{CompanyID: companyID, Limit: q.Limit, Offset: q.Offset}
	switch {
	case q.SoldDate != nil:
		f.From, f.To = truncateDay(*q.SoldDate), truncateDay(*q.SoldDate)
	case q.StartDate != nil && q.EndDate != nil:
		if q.EndDate.Before(*q.StartDate) {
			return nil, domain.ErrInvalidInput
		}
		f.From, f.To = truncateDay(*q.StartDate), truncateDay(*q.EndDate)
	default:
		today := truncateDay(uc.now().In(uc.loc))
		f.From, f.To = today.AddDate(0, 0, -defaultWindowDays), today
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	items, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := &dto.RetailListResponse{
		Items: make([]dto.RetailResponse, 0, len(items)),
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset, Total: total},
	}
	for _, r := range items {
		out.Items = append(out.Items, toRetailResponse(r))
	}
	return out, nil
}

func toRetailResponse(r *entity.Retail) dto.RetailResponse {
	return dto.RetailResponse{
		ID:          r.ID,
		CompanyID:   r.CompanyID,
		ProductID:   r.ProductID,
		ProductCode: r.ProductCode,
		ProductName: r.ProductName,
		SoldDate:    r.SoldDate.Format(time.DateOnly),
		Quantity:    r.Quantity,
		ActualSales: r.ActualSales,
		AppliedAt:   r.AppliedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
