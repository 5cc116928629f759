package repository

import (
	"testing"
	"time"

	"entregaswoo/internal/domain/entities"
)

func ordersCreatedAt(times ...time.Time) []entities.Order {
	orders := make([]entities.Order, 0, len(times))
	for i, ts := range times {
		orders = append(orders, entities.Order{ID: "o" + string(rune('1'+i)), Data: ts})
	}
	return orders
}

func TestPaginate(t *testing.T) {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	five := ordersCreatedAt(
		base,
		base.Add(1*time.Hour),
		base.Add(2*time.Hour),
		base.Add(3*time.Hour),
		base.Add(4*time.Hour),
	)

	t.Run("first page returns the newest orders", func(t *testing.T) {
		got, hasMore, err := paginate(append([]entities.Order{}, five...), 1, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(got))
		}
		if got[0].ID != "o5" || got[1].ID != "o4" {
			t.Fatalf("expected newest-first [o5 o4], got [%s %s]", got[0].ID, got[1].ID)
		}
		if !hasMore {
			t.Fatal("expected hasMore with 3 orders remaining")
		}
	})

	t.Run("short first page is not skipped", func(t *testing.T) {
		got, hasMore, err := paginate(ordersCreatedAt(base, base.Add(time.Hour)), 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected both orders on page 1, got %d", len(got))
		}
		if hasMore {
			t.Fatal("expected hasMore=false when everything fits on page 1")
		}
	})

	t.Run("last page holds the remainder", func(t *testing.T) {
		got, hasMore, err := paginate(append([]entities.Order{}, five...), 3, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("expected 1 order on the last page, got %d", len(got))
		}
		if got[0].ID != "o1" {
			t.Fatalf("expected the oldest order last, got %s", got[0].ID)
		}
		if hasMore {
			t.Fatal("expected hasMore=false on the last page")
		}
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		got, hasMore, err := paginate(append([]entities.Order{}, five...), 4, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 || hasMore {
			t.Fatalf("expected empty page, got %d orders hasMore=%v", len(got), hasMore)
		}
	})

	t.Run("page below one clamps to the first page", func(t *testing.T) {
		got, _, err := paginate(append([]entities.Order{}, five...), 0, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "o5" {
			t.Fatalf("expected page 1 content, got %d orders starting at %s", len(got), got[0].ID)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		got, hasMore, err := paginate(nil, 1, 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 0 || hasMore {
			t.Fatalf("expected empty result, got %d hasMore=%v", len(got), hasMore)
		}
	})
}
