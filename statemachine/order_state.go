package statemachine

import (
	"errors"

	"restaurant-orders-api/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "admin" or "payment"
}

// validTransitions is the authoritative state machine definition.
// The ledger is one-directional: Pending moves to Completed, either by an
// admin status flip or by the payment recorder's bulk flip. Nothing moves
// back.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusCompleted, Actor: "admin"},
	{From: models.StatusPending, To: models.StatusCompleted, Actor: "payment"},
}

type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// AlreadyThere reports whether the requested move is a no-op. Re-completing
// a Completed row is allowed everywhere it appears, so callers treat it as
// success without writing.
func AlreadyThere(from, to models.OrderStatus) bool {
	return from == to
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			" is not allowed for actor '" + actor + "'",
	)
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
