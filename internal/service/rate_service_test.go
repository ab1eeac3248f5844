package service

import (
	"errors"
	"testing"

	"clinic-management-backend/internal/repository"
)

func TestRateSet_InsertsThenUpdates(t *testing.T) {
	store := newStubRateStore()
	svc := NewRateService(store)

	first, err := svc.Set(1, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.RatePerHour != 150 {
		t.Errorf("want 150, got %.2f", first.RatePerHour)
	}

	second, err := svc.Set(1, 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.RatePerHour != 200 {
		t.Errorf("want 200, got %.2f", second.RatePerHour)
	}
	if len(store.rates) != 1 {
		t.Errorf("upsert must keep one row per doctor, got %d", len(store.rates))
	}
	if second.ID != first.ID {
		t.Errorf("update must reuse the existing row, got id %d then %d", first.ID, second.ID)
	}
}

func TestRateSet_RejectsNonPositive(t *testing.T) {
	svc := NewRateService(newStubRateStore())

	for _, rate := range []float64{0, -10} {
		if _, err := svc.Set(1, rate); err == nil {
			t.Errorf("rate %.0f must be rejected", rate)
		}
	}
}

func TestRateGet_NotFoundPassesThrough(t *testing.T) {
	svc := NewRateService(newStubRateStore())

	_, err := svc.Get(1)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}
