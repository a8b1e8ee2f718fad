package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edulink/edulink-backend/internal/model"
)

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:30", 510, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"08:60", 0, true},
		{"8:30", 0, true},
		{"0830", 0, true},
		{"ab:cd", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseMinutes(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseMinutes(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseMinutes(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseMinutes(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDuration(t *testing.T) {
	d, err := Duration("08:00", "08:45")
	if err != nil {
		t.Fatalf("Duration: %v", err)
	}
	if d != 45 {
		t.Fatalf("expected 45 minutes, got %d", d)
	}

	if _, err := Duration("08:45", "08:45"); !errors.Is(err, ErrNonPositiveDuration) {
		t.Fatalf("zero duration: expected ErrNonPositiveDuration, got %v", err)
	}
	if _, err := Duration("09:00", "08:00"); !errors.Is(err, ErrNonPositiveDuration) {
		t.Fatalf("negative duration: expected ErrNonPositiveDuration, got %v", err)
	}
}

func TestTimePeriodCreateDerivesDuration(t *testing.T) {
	store := newFakeTimePeriodStore()
	svc := NewTimePeriodService(store, zerolog.Nop())
	ctx := context.Background()

	period, err := svc.Create(ctx, 1, &model.CreateTimePeriodRequest{
		Name: "Period 1", StartTime: "08:00", EndTime: "08:45", SortOrder: 1,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if period.DurationMinutes != 45 {
		t.Fatalf("expected derived duration 45, got %d", period.DurationMinutes)
	}
	if period.Kind != model.PeriodKindClass {
		t.Fatalf("expected default kind %q, got %q", model.PeriodKindClass, period.Kind)
	}
}

func TestTimePeriodCreateRejectsInvertedTimes(t *testing.T) {
	store := newFakeTimePeriodStore()
	svc := NewTimePeriodService(store, zerolog.Nop())

	_, err := svc.Create(context.Background(), 1, &model.CreateTimePeriodRequest{
		Name: "Period 1", StartTime: "09:00", EndTime: "08:00", SortOrder: 1,
	})
	if !errors.Is(err, ErrNonPositiveDuration) {
		t.Fatalf("expected ErrNonPositiveDuration, got %v", err)
	}
	if len(store.periods) != 0 {
		t.Fatal("rejected period must not persist")
	}
}

func TestTimePeriodCreateCollisions(t *testing.T) {
	store := newFakeTimePeriodStore()
	svc := NewTimePeriodService(store, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, 1, &model.CreateTimePeriodRequest{
		Name: "Period 1", StartTime: "08:00", EndTime: "08:45", SortOrder: 1,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := svc.Create(ctx, 1, &model.CreateTimePeriodRequest{
		Name: "Period 1", StartTime: "09:00", EndTime: "09:45", SortOrder: 2,
	})
	var conflict *ConflictError
	if !errors.As(err, &conflict) || conflict.Field != "name" {
		t.Fatalf("expected name conflict, got %v", err)
	}

	_, err = svc.Create(ctx, 1, &model.CreateTimePeriodRequest{
		Name: "Period 2", StartTime: "09:00", EndTime: "09:45", SortOrder: 1,
	})
	if !errors.As(err, &conflict) || conflict.Field != "sort_order" {
		t.Fatalf("expected sort_order conflict, got %v", err)
	}
}

func TestTimePeriodUpdateRederivesDuration(t *testing.T) {
	store := newFakeTimePeriodStore()
	svc := NewTimePeriodService(store, zerolog.Nop())
	ctx := context.Background()

	period, err := svc.Create(ctx, 1, &model.CreateTimePeriodRequest{
		Name: "Period 1", StartTime: "08:00", EndTime: "08:45", SortOrder: 1,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	updated, err := svc.Update(ctx, 1, period.ID, &model.UpdateTimePeriodRequest{
		Name: "Period 1", StartTime: "08:00", EndTime: "09:30", SortOrder: 1,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.DurationMinutes != 90 {
		t.Fatalf("expected re-derived duration 90, got %d", updated.DurationMinutes)
	}
}
