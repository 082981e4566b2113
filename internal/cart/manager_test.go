package cart

import (
	"testing"

	"storefront-gateway/internal/domain"
)

func TestManagerAddAggregatesRapidAdditions(t *testing.T) {
	m := NewManager()
	p := domain.Product{ID: 1, Name: "Widget", Price: 9.99}

	m.Add("s1", p)
	m.Add("s1", p)

	snapshot := m.Snapshot("s1")
	if len(snapshot.Lines) != 1 {
		t.Fatalf("expected one line, got %d", len(snapshot.Lines))
	}
	if snapshot.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", snapshot.Lines[0].Quantity)
	}
}

func TestManagerCartsAreSessionScoped(t *testing.T) {
	m := NewManager()
	m.Add("s1", domain.Product{ID: 1, Price: 1})
	m.Add("s2", domain.Product{ID: 2, Price: 2})

	if lines := m.Snapshot("s1").Lines; len(lines) != 1 || lines[0].ProductID != 1 {
		t.Fatalf("unexpected s1 cart: %+v", lines)
	}
	if lines := m.Snapshot("s2").Lines; len(lines) != 1 || lines[0].ProductID != 2 {
		t.Fatalf("unexpected s2 cart: %+v", lines)
	}
}

func TestManagerSnapshotIsACopy(t *testing.T) {
	m := NewManager()
	m.Add("s1", domain.Product{ID: 1, Name: "Widget", Price: 9.99})

	snapshot := m.Snapshot("s1")
	snapshot.Lines[0].Quantity = 99

	if got := m.Snapshot("s1").Lines[0].Quantity; got != 1 {
		t.Fatalf("live cart mutated through snapshot: quantity %d", got)
	}
}

func TestManagerRemoveUnknownSessionOrProduct(t *testing.T) {
	m := NewManager()
	m.Remove("ghost", 1)

	m.Add("s1", domain.Product{ID: 1, Price: 1})
	m.Remove("s1", 99)

	if lines := m.Snapshot("s1").Lines; len(lines) != 1 {
		t.Fatalf("cart changed by no-op removal: %+v", lines)
	}
}

func TestManagerDrop(t *testing.T) {
	m := NewManager()
	m.Add("s1", domain.Product{ID: 1, Price: 1})

	m.Drop("s1")

	if !m.Snapshot("s1").Empty() {
		t.Fatalf("expected empty cart after drop")
	}
}
