// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"shopadmin/internal/core/domain/model/kernel"
	"shopadmin/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and shipper for the admin list views and the stale-order
// job.
type OrderDTO struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CustomerName       string           `gorm:"type:varchar(255);not null"`
	StatusID           int              `gorm:"type:int;not null;index"`
	ShipperID          *uuid.UUID       `gorm:"type:uuid;index"`
	PaymentMethodID    int              `gorm:"type:int;not null"`
	PaymentMethod      PaymentMethodDTO `gorm:"foreignKey:PaymentMethodID"`
	PaymentStatus      string           `gorm:"type:varchar(16);not null"`
	CancellationReason *string          `gorm:"type:text"`
	CreatedAt          time.Time        `gorm:"not null;index"`
	Items              []ItemDTO        `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one order line.
type ItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity   int       `gorm:"type:int;not null"`
	PriceCents int64     `gorm:"type:bigint;not null"`
}

// TableName specifies the database table name for order line entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// PaymentMethodDTO mirrors the seeded payment_methods reference table.
// The repository never writes this table; rows come from migrations.
type PaymentMethodDTO struct {
	ID   int    `gorm:"type:int;primaryKey"`
	Name string `gorm:"type:varchar(64);not null"`
}

// TableName specifies the database table name for payment methods.
func (PaymentMethodDTO) TableName() string {
	return "payment_methods"
}

// fromDomain converts an order domain aggregate to its database representation.
// The PaymentMethod association is left zero valued and omitted on writes.
func fromDomain(aggregate *order.Order) OrderDTO {
	var shipperID *uuid.UUID
	if id := aggregate.Shipper(); id != nil {
		raw := id.Bytes()
		shipperID = &raw
	}

	orderID := aggregate.ID().Bytes()
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, ItemDTO{
			OrderID:    orderID,
			ProductID:  item.ProductID().Bytes(),
			Quantity:   item.Quantity(),
			PriceCents: item.PriceCents(),
		})
	}

	return OrderDTO{
		ID:                 orderID,
		CustomerName:       aggregate.CustomerName(),
		StatusID:           int(aggregate.Status()),
		ShipperID:          shipperID,
		PaymentMethodID:    aggregate.PaymentMethod().ID(),
		PaymentStatus:      string(aggregate.PaymentStatus()),
		CancellationReason: aggregate.CancellationReason(),
		CreatedAt:          aggregate.CreatedAt(),
		Items:              items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Requires the Items and PaymentMethod associations to be preloaded.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var shipperID *kernel.UUID
	if dto.ShipperID != nil {
		sID, shipperErr := kernel.UUIDFromBytes((*dto.ShipperID)[:])
		if shipperErr != nil {
			return nil, shipperErr
		}
		shipperID = &sID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(itemDto.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		item, itemErr := order.NewItem(productID, itemDto.Quantity, itemDto.PriceCents)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	method, err := order.NewPaymentMethod(dto.PaymentMethod.ID, dto.PaymentMethod.Name)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.CustomerName,
		items,
		order.Status(dto.StatusID),
		shipperID,
		method,
		order.PaymentStatus(dto.PaymentStatus),
		dto.CancellationReason,
		dto.CreatedAt,
	)
}
