// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. This package implements the repository pattern for the
// order aggregate, handling the conversion between domain entities and
// database representations.
package orderrepo

import (
	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Orders reference the trip they were placed on; the reference stays NULL
// while the order is unplaced and is never cleared afterwards.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TripID            *uuid.UUID `gorm:"type:uuid;index"`
	DestinationCity   string
	DestinationStreet string
	Status            int       `gorm:"index"`
	Items             []ItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line. Space per unit is denormalized from the
// product at ordering time, so later product changes never alter an order's
// space demand.
type ItemDTO struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	ProductID    uuid.UUID `gorm:"type:uuid"`
	Quantity     int
	UnitPrice    float64
	SpacePerUnit float64 `gorm:"type:numeric(12,4)"`
}

// TableName specifies the database table name for order line items.
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var tripID *uuid.UUID
	if id := aggregate.Trip(); id != nil {
		raw := id.Bytes()
		tripID = &raw
	}

	items := aggregate.Items()
	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:      aggregate.ID().Bytes(),
			ProductID:    item.ProductID().Bytes(),
			Quantity:     item.Quantity(),
			UnitPrice:    item.UnitPrice(),
			SpacePerUnit: item.SpacePerUnit().Units(),
		})
	}

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		TripID:            tripID,
		DestinationCity:   aggregate.DestinationCity(),
		DestinationStreet: aggregate.DestinationStreet(),
		Status:            int(aggregate.Status()),
		Items:             itemDTOs,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, trip assignment and
// line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var tripID *kernel.UUID
	if dto.TripID != nil {
		tID, tripErr := kernel.UUIDFromBytes((*dto.TripID)[:])
		if tripErr != nil {
			return nil, tripErr
		}

		tripID = &tID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}

		spacePerUnit, spaceErr := kernel.NewSpace(itemDTO.SpacePerUnit)
		if spaceErr != nil {
			return nil, spaceErr
		}

		item, itemErr := order.NewItem(productID, itemDTO.Quantity, itemDTO.UnitPrice, spacePerUnit)
		if itemErr != nil {
			return nil, itemErr
		}

		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.DestinationCity,
		dto.DestinationStreet,
		order.Status(dto.Status),
		tripID,
		items,
	)
}
