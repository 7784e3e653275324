package http

import (
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func selectionsFromRequest(selections *[]servers.ItemSelection) []order.ItemOption {
	if selections == nil {
		return nil
	}

	options := make([]order.ItemOption, 0, len(*selections))
	for _, sel := range *selections {
		opt := order.ItemOption{Name: sel.Name}
		if sel.Choice != nil {
			opt.Choice = *sel.Choice
		}
		options = append(options, opt)
	}
	return options
}

func selectionsResponse(options []order.ItemOption) *[]servers.ItemSelection {
	if len(options) == 0 {
		return nil
	}

	selections := make([]servers.ItemSelection, len(options))
	for i, opt := range options {
		selections[i] = servers.ItemSelection{Name: opt.Name}
		if opt.Choice != "" {
			choice := opt.Choice
			selections[i].Choice = &choice
		}
	}
	return &selections
}

func driverIDResponse(driverID *kernel.UUID) *openapi_types.UUID {
	if driverID == nil {
		return nil
	}
	id := driverID.Bytes()
	return &id
}

func orderFromListing(row queries.GetOrdersQueryResponse) servers.Order {
	return servers.Order{
		Id:           row.ID.Bytes(),
		CustomerId:   row.CustomerID.Bytes(),
		RestaurantId: row.RestaurantID.Bytes(),
		DriverId:     driverIDResponse(row.DriverID),
		Status:       servers.OrderStatus(row.Status.String()),
		Total:        row.Total,
		CreatedAt:    row.CreatedAt,
	}
}

func orderFromDetail(detail queries.GetOrderQueryResponse) servers.Order {
	return servers.Order{
		Id:           detail.ID.Bytes(),
		CustomerId:   detail.CustomerID.Bytes(),
		RestaurantId: detail.RestaurantID.Bytes(),
		DriverId:     driverIDResponse(detail.DriverID),
		Status:       servers.OrderStatus(detail.Status.String()),
		Total:        detail.Total,
		CreatedAt:    detail.CreatedAt,
	}
}

func orderDetailResponse(detail queries.GetOrderQueryResponse) servers.OrderDetail {
	items := make([]servers.OrderItem, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = servers.OrderItem{
			DishId:     item.DishID.Bytes(),
			Price:      item.Price,
			Selections: selectionsResponse(item.Selections),
		}
	}

	return servers.OrderDetail{
		Id:           detail.ID.Bytes(),
		CustomerId:   detail.CustomerID.Bytes(),
		RestaurantId: detail.RestaurantID.Bytes(),
		DriverId:     driverIDResponse(detail.DriverID),
		Status:       servers.OrderStatus(detail.Status.String()),
		Total:        detail.Total,
		CreatedAt:    detail.CreatedAt,
		Items:        items,
	}
}

// orderSnapshot renders the streamed representation of an order at the moment
// an event was published.
func orderSnapshot(o *order.Order) servers.Order {
	return servers.Order{
		Id:           o.ID().Bytes(),
		CustomerId:   o.CustomerID().Bytes(),
		RestaurantId: o.RestaurantID().Bytes(),
		DriverId:     driverIDResponse(o.Driver()),
		Status:       servers.OrderStatus(o.Status().String()),
		Total:        o.Total(),
		CreatedAt:    o.CreatedAt(),
	}
}
