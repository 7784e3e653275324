package queries

import (
	"context"
	"encoding/json"
	"time"

	"eats/internal/core/application/access"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/services"
	"eats/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order with its items straight from the
// database and enforces party visibility: the customer, the assigned driver
// and the restaurant owner see the order, everyone else gets a permission
// error regardless of whether the order exists.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB, policy services.AccessPolicy) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: policy}
}

// Handle executes the query. Returns errs.ObjectNotFoundError for unknown
// orders and errs.PermissionDeniedError for principals that are not a party.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if !access.Allowed(access.GetOrder, query.Principal().Role()) {
		return GetOrderQueryResponse{}, errs.NewPermissionDeniedError(string(access.GetOrder))
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.driver_id,
			o.status,
			o.total,
			o.created_at,
			r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, errs.NewStorageUnavailableError("get order", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, errs.NewStorageUnavailableError("get order", err)
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	var (
		resp      GetOrderQueryResponse
		id        uuid.UUID
		customer  uuid.UUID
		rest      uuid.UUID
		driver    uuid.NullUUID
		status    int
		total     int64
		createdAt time.Time
		owner     uuid.UUID
	)
	if err = rows.Scan(&id, &customer, &rest, &driver, &status, &total, &createdAt, &owner); err != nil {
		return GetOrderQueryResponse{}, errs.NewStorageUnavailableError("get order", err)
	}
	_ = rows.Close()

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.CustomerID, err = kernel.UUIDFromBytes(customer[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.RestaurantID, err = kernel.UUIDFromBytes(rest[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if driver.Valid {
		driverID, idErr := kernel.UUIDFromBytes(driver.UUID[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.DriverID = &driverID
	}
	resp.Status = order.Status(status)
	resp.Total = total
	resp.CreatedAt = createdAt

	ownerID, err := kernel.UUIDFromBytes(owner[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderAccess := services.OrderAccess{
		CustomerID: resp.CustomerID,
		DriverID:   resp.DriverID,
		OwnerID:    ownerID,
	}
	if !h.policy.CanView(query.Principal(), orderAccess) {
		return GetOrderQueryResponse{}, errs.NewPermissionDeniedError(string(access.GetOrder))
	}

	if resp.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetOrderQueryHandler) loadItems(ctx context.Context, orderID kernel.UUID) ([]GetOrderItemResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT dish_id, price, selections
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("get order items", err)
	}
	defer rows.Close()

	items := make([]GetOrderItemResponse, 0)
	for rows.Next() {
		var (
			dishID     uuid.UUID
			price      int64
			selections []byte
		)
		if err = rows.Scan(&dishID, &price, &selections); err != nil {
			return nil, errs.NewStorageUnavailableError("get order items", err)
		}

		var item GetOrderItemResponse
		if item.DishID, err = kernel.UUIDFromBytes(dishID[:]); err != nil {
			return nil, err
		}
		item.Price = price

		if len(selections) > 0 {
			if err = json.Unmarshal(selections, &item.Selections); err != nil {
				return nil, errs.NewStorageUnavailableError("get order items", err)
			}
		}

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageUnavailableError("get order items", err)
	}

	return items, nil
}
