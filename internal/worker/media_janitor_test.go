package worker

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestIsOrphan(t *testing.T) {
	janitor := NewMediaJanitor(nil, nil, time.Hour, zerolog.Nop())

	now := time.Now()
	referenced := map[string]struct{}{
		"materials/kept.pdf": {},
	}

	if janitor.isOrphan("materials/kept.pdf", now.Add(-24*time.Hour), referenced, now) {
		t.Fatal("referenced blob must never be an orphan")
	}

	// A blob uploaded after the reference snapshot was taken may have a
	// row insert still in flight; it gets a full sweep interval of
	// grace before it is eligible.
	if janitor.isOrphan("materials/fresh.pdf", now.Add(-time.Minute), referenced, now) {
		t.Fatal("blob younger than the sweep interval must be spared")
	}

	if !janitor.isOrphan("materials/stale.pdf", now.Add(-2*time.Hour), referenced, now) {
		t.Fatal("old unreferenced blob must be removed")
	}

	// Exactly at the boundary counts as old enough.
	if !janitor.isOrphan("materials/boundary.pdf", now.Add(-time.Hour), referenced, now) {
		t.Fatal("blob aged exactly one interval must be removed")
	}
}
