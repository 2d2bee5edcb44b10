package services

import (
	"errors"

	"github.com/muhammadnuman-eng/shawarmabackend/entity"
	"gorm.io/gorm"
)

// legal status edges. delivered and cancelled are terminal; cancellation is
// reachable from every non-terminal state except out_for_delivery.
var orderTransitions = map[string][]string{
	entity.OrderPending:        {entity.OrderConfirmed, entity.OrderCancelled},
	entity.OrderConfirmed:      {entity.OrderPreparing, entity.OrderCancelled},
	entity.OrderPreparing:      {entity.OrderReady, entity.OrderCancelled},
	entity.OrderReady:          {entity.OrderOutForDelivery, entity.OrderCancelled},
	entity.OrderOutForDelivery: {entity.OrderDelivered},
	entity.OrderDelivered:      {},
	entity.OrderCancelled:      {},
}

func canTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition is the operational entry point for status changes. The status
// write is a compare-and-swap so two concurrent transitions cannot race
// past each other; a lost swap reads as an invalid transition.
func (s *OrderService) Transition(orderID uint, newStatus, message string) error {
	if _, ok := orderTransitions[newStatus]; !ok {
		return ErrInvalidTransition
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetOrder(orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		if !canTransition(order.Status, newStatus) {
			return ErrInvalidTransition
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, order.ID, order.Status, newStatus)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}

		if message == "" {
			message = "Order status updated to " + newStatus
		}
		return s.Repo.CreateTracking(tx, &entity.OrderTracking{
			OrderID: order.ID,
			Status:  newStatus,
			Message: message,
		})
	})
}

// Cancel is the user-facing cancellation: ownership-scoped and blocked once
// the order is delivered, cancelled, or already out for delivery.
func (s *OrderService) Cancel(orderID, userID uint, reason string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		order, err := s.Repo.GetOrderForUser(userID, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		switch order.Status {
		case entity.OrderDelivered, entity.OrderCancelled, entity.OrderOutForDelivery:
			return ErrOrderNotCancellable
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, order.ID, order.Status, entity.OrderCancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotCancellable
		}

		return s.Repo.CreateTracking(tx, &entity.OrderTracking{
			OrderID: order.ID,
			Status:  entity.OrderCancelled,
			Message: "Order cancelled: " + reason,
		})
	})
}
