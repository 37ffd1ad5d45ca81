package rating

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/ddd"
	"fooddelivery/internal/pkg/errs"
)

const (
	MinValue = 0
	MaxValue = 5

	AddedEventName = "rating.added"
)

var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

type Rating struct {
	id            kernel.UUID
	restaurant    string
	value         int
	isConstructed bool

	ddd.EventRecorder
}

// AddedEvent is raised when a rating is accepted.
type AddedEvent struct {
	ddd.BaseEvent
	Restaurant string `json:"restaurant"`
	Value      int    `json:"value"`
}

// ValidateValue reports a ValueIsOutOfRangeError unless MinValue <= value <= MaxValue.
func ValidateValue(value int) error {
	if value >= MinValue && value <= MaxValue {
		return nil
	}
	return errs.NewValueIsOutOfRangeError("rating value", value, MinValue, MaxValue)
}

// NewRating creates a rating with a fresh id and records a rating.added event.
func NewRating(restaurant string, value int) (*Rating, error) {
	r := &Rating{
		id:            kernel.NewUUID(),
		isConstructed: true,
	}

	if err := errors.Join(
		r.setRestaurant(restaurant),
		r.setValue(value),
	); err != nil {
		return nil, err
	}

	r.RaiseDomainEvent(AddedEvent{
		BaseEvent:  ddd.NewBaseEvent(AddedEventName, r.id.String()),
		Restaurant: r.restaurant,
		Value:      r.value,
	})
	return r, nil
}

// RestoreRating rebuilds a stored rating without recording events.
func RestoreRating(id kernel.UUID, restaurant string, value int) (*Rating, error) {
	r := &Rating{
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setRestaurant(restaurant),
		r.setValue(value),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

func (r *Rating) ID() kernel.UUID {
	return r.id
}

func (r *Rating) Restaurant() string {
	return r.restaurant
}

func (r *Rating) Value() int {
	return r.value
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setRestaurant(restaurant string) error {
	if err := kernel.ValidateName("restaurant", restaurant); err != nil {
		return err
	}
	r.restaurant = restaurant
	return nil
}

func (r *Rating) setValue(value int) error {
	if err := ValidateValue(value); err != nil {
		return err
	}
	r.value = value
	return nil
}
