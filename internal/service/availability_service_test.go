package service

import (
	"testing"
)

func TestAvailabilitySet_InsertsNewDay(t *testing.T) {
	store := newStubAvailabilityStore()
	svc := NewAvailabilityService(store)

	row, err := svc.Set(1, AvailabilityInput{DayOfWeek: 0, StartTime: "09:00", EndTime: "17:00", IsAvailable: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.DoctorID != 1 || row.DayOfWeek != 0 {
		t.Errorf("unexpected row: %+v", row)
	}
	if len(store.rows) != 1 {
		t.Errorf("want 1 stored row, got %d", len(store.rows))
	}
}

func TestAvailabilitySet_UpdatesExistingRowInPlace(t *testing.T) {
	store := newStubAvailabilityStore()
	store.put(1, 0, "09:00", "17:00", true)
	svc := NewAvailabilityService(store)

	row, err := svc.Set(1, AvailabilityInput{DayOfWeek: 0, StartTime: "10:00", EndTime: "14:00", IsAvailable: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row.StartTime != "10:00" || row.EndTime != "14:00" || row.IsAvailable {
		t.Errorf("row not updated: %+v", row)
	}
	if len(store.rows) != 1 {
		t.Errorf("upsert must not create a second (doctor, day) row, got %d", len(store.rows))
	}
}

func TestAvailabilitySet_MondayIsDayZero(t *testing.T) {
	store := newStubAvailabilityStore()
	svc := NewAvailabilityService(store)

	if _, err := svc.Set(1, AvailabilityInput{DayOfWeek: 0, StartTime: "09:00", EndTime: "17:00", IsAvailable: true}); err != nil {
		t.Fatalf("day 0 must be accepted: %v", err)
	}
	if _, err := svc.Set(1, AvailabilityInput{DayOfWeek: 6, StartTime: "09:00", EndTime: "12:00", IsAvailable: true}); err != nil {
		t.Fatalf("day 6 must be accepted: %v", err)
	}
}

func TestAvailabilitySet_RejectsDayOutOfRange(t *testing.T) {
	store := newStubAvailabilityStore()
	svc := NewAvailabilityService(store)

	for _, day := range []int{-1, 7} {
		if _, err := svc.Set(1, AvailabilityInput{DayOfWeek: day, StartTime: "09:00", EndTime: "17:00", IsAvailable: true}); err == nil {
			t.Errorf("day %d must be rejected", day)
		}
	}
}

func TestAvailabilitySet_ScopedToDoctor(t *testing.T) {
	store := newStubAvailabilityStore()
	store.put(1, 0, "09:00", "17:00", true)
	svc := NewAvailabilityService(store)

	if _, err := svc.Set(2, AvailabilityInput{DayOfWeek: 0, StartTime: "08:00", EndTime: "12:00", IsAvailable: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.rows) != 2 {
		t.Errorf("other doctor's row must be untouched, got %d rows", len(store.rows))
	}
	original, _ := store.FindByDoctorDay(1, 0)
	if original.StartTime != "09:00" {
		t.Errorf("doctor 1's window changed unexpectedly: %+v", original)
	}
}
