package order

import (
	"errors"
	"fmt"

	"kandypack/internal/core/domain/model/kernel"
	"kandypack/internal/pkg/errs"
	"kandypack/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object representing one order line: a product reference,
// the ordered quantity, the unit price, and the space one unit consumes on a
// train (inherited from the product).
type Item struct {
	productID    kernel.UUID
	quantity     int
	unitPrice    float64
	spacePerUnit kernel.Space

	guard guard.ConstructorGuard
}

// NewItem creates an order line with validation.
// Quantity must be positive; unit price must not be negative. A zero
// space-per-unit is allowed; such lines simply contribute no train space.
func NewItem(productID kernel.UUID, quantity int, unitPrice float64, spacePerUnit kernel.Space) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	item.spacePerUnit = spacePerUnit
	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// SpacePerUnit returns the train space one unit consumes.
func (i Item) SpacePerUnit() kernel.Space {
	return i.spacePerUnit
}

// Space returns the total train space this line consumes
// (quantity × space-per-unit).
func (i Item) Space() (kernel.Space, error) {
	return i.spacePerUnit.Times(i.quantity)
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%v is negative", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}
