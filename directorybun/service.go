package directorybun

import (
	"context"
	"fmt"
	"strconv"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"

	"github.com/goliatone/go-order-entry-cache/directory"
)

// displayTime is how the back office renders row timestamps.
const displayTime = "02/01/2006 15:04"

// Repositories groups the read repositories the service queries.
type Repositories struct {
	Clients  repository.Repository[*ClientRecord]
	Products repository.Repository[*ProductRecord]
	Sales    repository.Repository[*SaleRecord]
	Repairs  repository.Repository[*RepairRecord]
}

// Service reads the directory out of the back-office database through
// go-repository-bun repositories.
type Service struct {
	repos Repositories
}

// New wires the service over the given repositories.
func New(repos Repositories) *Service {
	return &Service{repos: repos}
}

var _ directory.Service = (*Service)(nil)

// ListEntities implements directory.Service.
func (s *Service) ListEntities(ctx context.Context, kind directory.EntityKind, filter directory.EntityFilter) ([]directory.Entity, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	switch kind {
	case directory.EntityClient:
		records, _, err := s.repos.Clients.List(ctx, clientCriteria(filter)...)
		if err != nil {
			return nil, err
		}
		entities := make([]directory.Entity, 0, len(records))
		for _, r := range records {
			entities = append(entities, clientEntity(r))
		}
		return entities, nil

	case directory.EntityProduct:
		records, _, err := s.repos.Products.List(ctx, productCriteria(filter)...)
		if err != nil {
			return nil, err
		}
		entities := make([]directory.Entity, 0, len(records))
		for _, r := range records {
			entities = append(entities, productEntity(r))
		}
		return entities, nil
	}

	return nil, fmt.Errorf("unknown entity kind %q", kind)
}

// ListOrders implements directory.Service.
func (s *Service) ListOrders(ctx context.Context, kind directory.OrderKind, filter directory.OrderFilter) ([]directory.OrderRow, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	switch kind {
	case directory.OrderSale:
		records, _, err := s.repos.Sales.List(ctx, saleCriteria(filter)...)
		if err != nil {
			return nil, err
		}
		rows := make([]directory.OrderRow, 0, len(records))
		for _, r := range records {
			rows = append(rows, saleRow(r))
		}
		return rows, nil

	case directory.OrderRepair:
		records, _, err := s.repos.Repairs.List(ctx, repairCriteria(filter)...)
		if err != nil {
			return nil, err
		}
		rows := make([]directory.OrderRow, 0, len(records))
		for _, r := range records {
			rows = append(rows, repairRow(r))
		}
		return rows, nil
	}

	return nil, fmt.Errorf("unknown order kind %q", kind)
}

// GetOrderDetail implements directory.Service.
func (s *Service) GetOrderDetail(ctx context.Context, kind directory.OrderKind, id int64) (directory.OrderDetail, error) {
	switch kind {
	case directory.OrderSale:
		record, err := s.repos.Sales.GetByID(ctx, strconv.FormatInt(id, 10), withSaleDetail())
		if err != nil {
			return directory.OrderDetail{}, err
		}
		return saleDetail(record), nil

	case directory.OrderRepair:
		record, err := s.repos.Repairs.GetByID(ctx, strconv.FormatInt(id, 10), withClient())
		if err != nil {
			return directory.OrderDetail{}, err
		}
		return repairDetail(record), nil
	}

	return directory.OrderDetail{}, fmt.Errorf("unknown order kind %q", kind)
}

// --- criteria builders ---

func clientCriteria(filter directory.EntityFilter) []repository.SelectCriteria {
	criteria := []repository.SelectCriteria{
		func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("c.name ASC").Limit(filter.Limit())
		},
	}
	if filter.Search != "" {
		criteria = append(criteria, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("c.name ILIKE ?", "%"+filter.Search+"%")
		})
	}
	return criteria
}

func productCriteria(filter directory.EntityFilter) []repository.SelectCriteria {
	criteria := []repository.SelectCriteria{
		func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("p.name ASC").Limit(filter.Limit())
		},
	}
	if filter.Search != "" {
		criteria = append(criteria, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("(p.name ILIKE ? OR p.sku ILIKE ?)", "%"+filter.Search+"%", "%"+filter.Search+"%")
		})
	}
	if filter.LowStock {
		criteria = append(criteria, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("p.stock <= p.min_stock")
		})
	}
	return criteria
}

func saleCriteria(filter directory.OrderFilter) []repository.SelectCriteria {
	criteria := []repository.SelectCriteria{
		func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Relation("Client").OrderExpr("s.id DESC")
		},
	}
	if !filter.All {
		criteria = append(criteria, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("DATE(s.sold_at) = ?", filter.Date)
		})
	}
	return criteria
}

func repairCriteria(filter directory.OrderFilter) []repository.SelectCriteria {
	criteria := []repository.SelectCriteria{
		func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Relation("Client").OrderExpr("r.id DESC")
		},
	}
	if !filter.All {
		criteria = append(criteria, func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("DATE(r.created_at) = ?", filter.Date)
		})
	}
	return criteria
}

func withClient() repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Relation("Client")
	}
}

func withSaleDetail() repository.SelectCriteria {
	return func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.Relation("Client").Relation("Items").Relation("Items.Product")
	}
}

// --- record mapping ---

func clientEntity(r *ClientRecord) directory.Entity {
	return directory.Entity{
		ID:   r.ID,
		Kind: directory.EntityClient,
		Name: r.Name,
	}
}

func productEntity(r *ProductRecord) directory.Entity {
	e := directory.Entity{
		ID:   r.ID,
		Kind: directory.EntityProduct,
		Name: r.Name,
		SKU:  r.SKU,
	}
	if r.SalePrice != nil {
		e.SalePrice = directory.AmountPtr(directory.Amount(*r.SalePrice))
	}
	return e
}

func saleRow(r *SaleRecord) directory.OrderRow {
	row := directory.OrderRow{
		ID:        r.ID,
		Status:    r.Status,
		Total:     directory.AmountPtr(directory.Amount(r.Total)),
		CreatedAt: r.CreatedAt.Format(displayTime),
	}
	if r.Client != nil {
		row.Client = r.Client.Name
	}
	return row
}

func repairRow(r *RepairRecord) directory.OrderRow {
	row := directory.OrderRow{
		ID:        r.ID,
		Device:    r.Device,
		Status:    r.Status,
		CreatedAt: r.CreatedAt.Format(displayTime),
	}
	if r.Price != nil {
		row.Total = directory.AmountPtr(directory.Amount(*r.Price))
	}
	if r.Client != nil {
		row.Client = r.Client.Name
	}
	return row
}

func saleDetail(r *SaleRecord) directory.OrderDetail {
	detail := directory.OrderDetail{
		ID:     r.ID,
		Status: r.Status,
		Date:   r.SoldAt.Format("2006-01-02"),
		Total:  directory.Amount(r.Total),
	}
	if r.Client != nil {
		detail.Client = r.Client.Name
	}
	for _, item := range r.Items {
		di := directory.OrderDetailItem{
			Qty:       item.Qty,
			UnitPrice: directory.Amount(item.UnitPrice),
			Subtotal:  directory.Amount(item.UnitPrice).MulQty(item.Qty),
		}
		if item.Product != nil {
			di.Product = item.Product.Name
			di.SKU = item.Product.SKU
		}
		detail.Items = append(detail.Items, di)
	}
	return detail
}

func repairDetail(r *RepairRecord) directory.OrderDetail {
	detail := directory.OrderDetail{
		ID:     r.ID,
		Status: r.Status,
		Date:   r.CreatedAt.Format("2006-01-02"),
	}
	if r.Client != nil {
		detail.Client = r.Client.Name
	}
	if r.Price != nil {
		detail.Total = directory.Amount(*r.Price)
	}
	detail.Items = []directory.OrderDetailItem{{
		Product:   r.Device,
		Qty:       1,
		UnitPrice: detail.Total,
		Subtotal:  detail.Total,
	}}
	return detail
}
