package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one dish of an order with the quantity requested.
type Line struct { //nolint:recvcheck //using for validation
	dishName string
	quantity int
	guard    guard.ConstructorGuard
}

func NewLine(dishName string, quantity int) (Line, error) {
	l := Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setDishName(dishName),
		l.setQuantity(quantity),
	); err != nil {
		return Line{}, err
	}

	return l, nil
}

// NewLines pairs dish names with quantities position by position. Both sequences
// must have the same length.
func NewLines(dishNames []string, quantities []int) ([]Line, error) {
	if len(dishNames) != len(quantities) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"order lines are invalid",
			fmt.Errorf("%d dish names but %d quantities", len(dishNames), len(quantities)),
		)
	}

	lines := make([]Line, 0, len(dishNames))
	for i, name := range dishNames {
		line, err := NewLine(name, quantities[i])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}

	return lines, nil
}

func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l Line) DishName() string {
	return l.dishName
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l *Line) setDishName(dishName string) error {
	if err := kernel.ValidateName("dish name", dishName); err != nil {
		return err
	}
	l.dishName = dishName
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}
