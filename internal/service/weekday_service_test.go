package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/model"
)

func TestWeekDayCreateAndList(t *testing.T) {
	store := newFakeWeekDayStore()
	svc := NewWeekDayService(store, zerolog.Nop())
	ctx := context.Background()

	day, err := svc.Create(ctx, 1, &model.CreateWeekDayRequest{Name: "Monday", ShortName: "Mon", SortOrder: 1})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if day.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if !day.IsActive {
		t.Fatal("new day should be active")
	}

	if _, err := svc.Create(ctx, 1, &model.CreateWeekDayRequest{Name: "Tuesday", ShortName: "Tue", SortOrder: 2}); err != nil {
		t.Fatalf("Create second: %v", err)
	}

	days, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
}

func TestWeekDayCreateCollisions(t *testing.T) {
	store := newFakeWeekDayStore()
	svc := NewWeekDayService(store, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, &model.CreateWeekDayRequest{Name: "Monday", ShortName: "Mon", SortOrder: 1}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	cases := []struct {
		req   model.CreateWeekDayRequest
		field string
	}{
		{model.CreateWeekDayRequest{Name: "Monday", ShortName: "Mo", SortOrder: 2}, "name"},
		{model.CreateWeekDayRequest{Name: "Mondag", ShortName: "Mon", SortOrder: 2}, "short_name"},
		{model.CreateWeekDayRequest{Name: "Tuesday", ShortName: "Tue", SortOrder: 1}, "sort_order"},
	}
	for _, tc := range cases {
		_, err := svc.Create(ctx, 1, &tc.req)
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("%s: expected ConflictError, got %v", tc.field, err)
		}
		if conflict.Field != tc.field {
			t.Fatalf("expected conflict on %s, got %s", tc.field, conflict.Field)
		}
	}

	if len(store.days) != 1 {
		t.Fatalf("conflicting creates must not persist, have %d rows", len(store.days))
	}
}

func TestWeekDayCollisionScopedToAdmin(t *testing.T) {
	store := newFakeWeekDayStore()
	svc := NewWeekDayService(store, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, &model.CreateWeekDayRequest{Name: "Monday", ShortName: "Mon", SortOrder: 1}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := svc.Create(ctx, 2, &model.CreateWeekDayRequest{Name: "Monday", ShortName: "Mon", SortOrder: 1}); err != nil {
		t.Fatalf("another tenant may reuse the name: %v", err)
	}
}

func TestWeekDayUpdateExcludesSelf(t *testing.T) {
	store := newFakeWeekDayStore()
	svc := NewWeekDayService(store, zerolog.Nop())
	ctx := context.Background()

	day, err := svc.Create(ctx, 1, &model.CreateWeekDayRequest{Name: "Monday", ShortName: "Mon", SortOrder: 1})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// A no-op rename must not collide with the row itself.
	updated, err := svc.Update(ctx, 1, day.ID, &model.UpdateWeekDayRequest{Name: "Monday", ShortName: "Mon", SortOrder: 1})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Monday" {
		t.Fatalf("unexpected name %q", updated.Name)
	}
}

func TestWeekDayUpdateNotFound(t *testing.T) {
	svc := NewWeekDayService(newFakeWeekDayStore(), zerolog.Nop())

	_, err := svc.Update(context.Background(), 1, 99, &model.UpdateWeekDayRequest{Name: "Monday", ShortName: "Mon", SortOrder: 1})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWeekDayToggleActive(t *testing.T) {
	store := newFakeWeekDayStore()
	svc := NewWeekDayService(store, zerolog.Nop())
	ctx := context.Background()

	day, err := svc.Create(ctx, 1, &model.CreateWeekDayRequest{Name: "Monday", ShortName: "Mon", SortOrder: 1})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	toggled, err := svc.ToggleActive(ctx, 1, day.ID)
	if err != nil {
		t.Fatalf("ToggleActive: %v", err)
	}
	if toggled.IsActive {
		t.Fatal("expected day to become inactive")
	}

	stats, err := svc.Stats(ctx, 1)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.Total != 1 || stats.Inactive != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}
