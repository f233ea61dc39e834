package statemachine_test

import (
	"testing"

	"restaurant-orders-api/models"
	"restaurant-orders-api/statemachine"
)

func TestPendingCompletesForBothActors(t *testing.T) {
	for _, actor := range []string{"admin", "payment"} {
		if err := statemachine.CanTransition(models.StatusPending, models.StatusCompleted, actor); err != nil {
			t.Errorf("Pending -> Completed should be allowed for %s: %v", actor, err)
		}
	}
}

func TestCompletedIsTerminal(t *testing.T) {
	if err := statemachine.CanTransition(models.StatusCompleted, models.StatusPending, "admin"); err == nil {
		t.Error("Completed -> Pending must not be allowed")
	}
	if nexts := statemachine.ValidTransitionsFrom(models.StatusCompleted); len(nexts) != 0 {
		t.Errorf("Completed should have no outgoing transitions, got %v", nexts)
	}
}

func TestUnknownActorRejected(t *testing.T) {
	if err := statemachine.CanTransition(models.StatusPending, models.StatusCompleted, "customer"); err == nil {
		t.Error("customers cannot flip order status directly")
	}
}

func TestAlreadyThere(t *testing.T) {
	if !statemachine.AlreadyThere(models.StatusCompleted, models.StatusCompleted) {
		t.Error("re-completing a completed order is a no-op, not an error")
	}
	if statemachine.AlreadyThere(models.StatusPending, models.StatusCompleted) {
		t.Error("Pending is not already Completed")
	}
}
