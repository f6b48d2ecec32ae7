package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/core/domain/model/kernel"
	"github.com/Sepitoooo19/Lab3-TBD-sub000/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrInvalidTransition is returned when a requested status change is not
	// permitted by the lifecycle table. The order is left unmodified.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrNotAuthorized is returned when the acting dealer is not the dealer
	// assigned to the order. The order is left unmodified.
	ErrNotAuthorized = errors.New("actor is not authorized for this order")

	// ErrAssignRequired is returned when a direct Pending to InProgress
	// transition is requested; that move is only reachable through dispatch
	// assignment, which sets the dealer atomically with the status.
	ErrAssignRequired = errors.New("order must be dispatched via assignment, not a direct status change")

	// ErrUrgentNotAllowed is returned when marking an order urgent in a
	// status that does not admit the flag.
	ErrUrgentNotAllowed = errors.New("urgent flag can only be set on pending or in-progress orders")
)

// Actor identifies who is requesting an order mutation: the assigned dealer
// or an administrative override. Identity resolution happens at the boundary;
// the aggregate only checks the resolved identity against its own state.
type Actor struct {
	dealerID kernel.UUID
	admin    bool
}

// NewDealerActor creates an actor for the dealer with the given id.
func NewDealerActor(dealerID kernel.UUID) Actor {
	return Actor{dealerID: dealerID}
}

// NewAdminActor creates an administrative actor that bypasses dealer
// ownership checks.
func NewAdminActor() Actor {
	return Actor{admin: true}
}

// IsAdmin reports whether the actor carries the administrative override.
func (a Actor) IsAdmin() bool {
	return a.admin
}

// DealerID returns the acting dealer's id. It is the zero UUID for
// administrative actors.
func (a Actor) DealerID() kernel.UUID {
	return a.dealerID
}

// Order represents a delivery order in the marketplace. It is the aggregate
// root that manages the order lifecycle from placement through dispatch to
// delivery or failure.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and client
//   - dealerID is set if and only if the status admits a dealer (Status.ValidateCanHaveDealer)
//   - deliveryDate is set if and only if the status is Delivered
//   - The urgent flag is only raised while Pending or InProgress
//   - Status transitions follow the lifecycle table in Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id             kernel.UUID
	clientID       kernel.UUID
	dealerID       *kernel.UUID
	status         Status
	urgent         bool
	orderDate      time.Time
	deliveryDate   *time.Time
	estimatedRoute *kernel.LineString
	totalPrice     float64

	// persistedStatus is the status last observed in storage. Repositories
	// use it as the expected prior value for guarded status updates.
	persistedStatus Status
	isConstructed   bool
}

// NewOrder creates a new Order in Pending status with no dealer assigned.
//
// Parameters:
//   - id: Unique identifier for the order
//   - clientID: The placing client's identifier
//   - orderDate: When the order was placed
//   - totalPrice: Total price of the ordered products (must not be negative)
//
// Returns a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, clientID kernel.UUID, orderDate time.Time, totalPrice float64) (*Order, error) {
	order := &Order{
		status:          Pending,
		persistedStatus: Pending,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setOrderDate(orderDate),
		order.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it accepts any valid lifecycle state and verifies the
// cross-field invariants (dealer presence, delivery date, urgency) before
// returning, so a corrupted row cannot materialize as a live aggregate.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	dealerID *kernel.UUID,
	status Status,
	urgent bool,
	orderDate time.Time,
	deliveryDate *time.Time,
	estimatedRoute *kernel.LineString,
	totalPrice float64,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setOrderDate(orderDate),
		order.setTotalPrice(totalPrice),
		status.Validate(),
		status.ValidateCanHaveDealer(dealerID != nil),
	); err != nil {
		return nil, err
	}

	if dealerID != nil {
		if err := dealerID.Validate(); err != nil {
			return nil, err
		}
		dID := *dealerID
		order.dealerID = &dID
	}

	if (deliveryDate != nil) != (status == Delivered) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"delivery date",
			fmt.Errorf("delivery date must be set exactly when status is %s, status is %s", Delivered, status),
		)
	}
	if deliveryDate != nil {
		d := *deliveryDate
		order.deliveryDate = &d
	}

	if urgent && !status.AllowsUrgentFlag() {
		return nil, ErrUrgentNotAllowed
	}
	order.urgent = urgent
	order.status = status
	order.persistedStatus = status

	if estimatedRoute != nil {
		if err := estimatedRoute.Validate(); err != nil {
			return nil, err
		}
		route := *estimatedRoute
		order.estimatedRoute = &route
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the placing client's identifier.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Dealer returns the assigned dealer's ID.
// Returns nil if no dealer is assigned.
func (o *Order) Dealer() *kernel.UUID {
	return o.dealerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PersistedStatus returns the status the aggregate carried when it was last
// read from or written to storage. Transitions change Status but leave this
// value untouched until the write succeeds, giving repositories an expected
// prior status for compare-and-swap updates.
func (o *Order) PersistedStatus() Status {
	return o.persistedStatus
}

// MarkPersisted records that the aggregate's current state has been written
// to storage. Repositories call it after a successful insert or update.
func (o *Order) MarkPersisted() {
	o.persistedStatus = o.status
}

// IsUrgent reports whether the urgent priority flag is raised.
func (o *Order) IsUrgent() bool {
	return o.urgent
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// DeliveryDate returns when the order was delivered.
// Returns nil unless the status is Delivered.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// EstimatedRoute returns the planned delivery route, if one was computed.
func (o *Order) EstimatedRoute() *kernel.LineString {
	return o.estimatedRoute
}

// TotalPrice returns the total price of the ordered products.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// ValidateAssign checks whether the order can currently be dispatched.
func (o *Order) ValidateAssign() error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.status.ValidateAssign()
}

// Assign dispatches the order to a dealer: sets the dealer id and moves the
// status from Pending to InProgress in one step. This is the only path into
// InProgress; the enclosing transaction is responsible for ensuring the
// dealer carries no other active order.
func (o *Order) Assign(dealerID kernel.UUID) error {
	if err := dealerID.Validate(); err != nil {
		return err
	}

	if err := o.ValidateAssign(); err != nil {
		return err
	}

	o.status = InProgress
	o.dealerID = &dealerID
	return nil
}

// Transition requests a change to the target status on behalf of the actor.
//
// Rules (the order is left unmodified on any failure):
//   - Re-requesting the current status is an idempotent no-op success.
//   - Pending to InProgress is rejected with ErrAssignRequired; use Assign.
//   - InProgress to Delivered requires the acting dealer to be the assigned
//     dealer; an admin cannot confirm delivery on the dealer's behalf. It
//     stamps deliveryDate with the given timestamp.
//   - InProgress to Failed requires the assigned dealer or an admin override;
//     it clears deliveryDate.
//   - Pending to Failed is permitted for any actor (order never dispatched).
//   - Every other request fails with ErrInvalidTransition.
func (o *Order) Transition(target Status, actor Actor, timestamp time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	if target == o.status {
		return nil
	}

	if !o.status.CanTransitionTo(target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.status, target)
	}

	if o.status == Pending && target == InProgress {
		return ErrAssignRequired
	}

	if o.status == InProgress {
		if err := o.authorize(actor, target); err != nil {
			return err
		}
	}

	o.status = target
	if target == Delivered {
		stamp := timestamp
		o.deliveryDate = &stamp
	} else {
		o.deliveryDate = nil
	}

	if o.status.IsTerminal() {
		o.urgent = false
	}

	return nil
}

// MarkUrgent raises the urgent priority flag. The flag does not change the
// base lifecycle state and can only be raised while Pending or InProgress.
func (o *Order) MarkUrgent() error {
	if err := o.Validate(); err != nil {
		return err
	}

	if !o.status.AllowsUrgentFlag() {
		return ErrUrgentNotAllowed
	}

	o.urgent = true
	return nil
}

// SetEstimatedRoute attaches a computed delivery route to the order.
func (o *Order) SetEstimatedRoute(route kernel.LineString) error {
	if err := errors.Join(o.Validate(), route.Validate()); err != nil {
		return err
	}

	o.estimatedRoute = &route
	return nil
}

// authorize verifies the actor may complete an in-progress order. Delivery
// confirmation must come from the assigned dealer; the administrative
// override only covers failing an order.
func (o *Order) authorize(actor Actor, target Status) error {
	if actor.IsAdmin() {
		if target == Failed {
			return nil
		}
		return ErrNotAuthorized
	}
	if o.dealerID == nil || !o.dealerID.IsEqual(actor.DealerID()) {
		return ErrNotAuthorized
	}
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setClientID validates and sets the placing client.
func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

// setOrderDate validates and sets the placement timestamp.
func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = orderDate
	return nil
}

// setTotalPrice validates and sets the order's total price.
func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"total price is invalid", fmt.Errorf("%g is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}
