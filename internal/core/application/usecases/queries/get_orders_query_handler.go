package queries

import (
	"context"
	"time"

	"eats/internal/core/application/access"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/principal"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler lists orders straight from the database, scoped to
// the requesting principal's role. The scoping happens in SQL so a principal
// can never page through somebody else's orders.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing. Clients see the orders they placed, drivers
// the orders they claimed, owners every order placed at their restaurants.
// Results are sorted by creation time, newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	role := query.Principal().Role()
	if !access.Allowed(access.GetOrders, role) {
		return nil, errs.NewPermissionDeniedError(string(access.GetOrders))
	}

	var scope string
	switch role {
	case principal.Client:
		scope = "o.customer_id = ?"
	case principal.Delivery:
		scope = "o.driver_id = ?"
	case principal.Owner:
		scope = "r.owner_id = ?"
	}

	sql := `
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.driver_id,
			o.status,
			o.total,
			o.created_at
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE ` + scope
	args := []any{query.Principal().ID().Bytes()}

	if query.Status() != nil {
		sql += " AND o.status = ?"
		args = append(args, int(*query.Status()))
	}
	sql += " ORDER BY o.created_at DESC, o.id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("get orders", err)
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			customer  uuid.UUID
			rest      uuid.UUID
			driver    uuid.NullUUID
			status    int
			total     int64
			createdAt time.Time
		)
		if err = rows.Scan(&id, &customer, &rest, &driver, &status, &total, &createdAt); err != nil {
			return nil, errs.NewStorageUnavailableError("get orders", err)
		}

		var resp GetOrdersQueryResponse
		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.CustomerID, err = kernel.UUIDFromBytes(customer[:]); err != nil {
			return nil, err
		}
		if resp.RestaurantID, err = kernel.UUIDFromBytes(rest[:]); err != nil {
			return nil, err
		}
		if driver.Valid {
			driverID, idErr := kernel.UUIDFromBytes(driver.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			resp.DriverID = &driverID
		}
		resp.Status = order.Status(status)
		resp.Total = total
		resp.CreatedAt = createdAt

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageUnavailableError("get orders", err)
	}

	return orders, nil
}
