package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"auxilio_propg/internal/domain/entities"
	"auxilio_propg/internal/usecase/interfaces"
)

func TestAidRequestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create rejects duplicate ids", func(t *testing.T) {
		repo := NewAidRequestMemoryRepository()
		if _, err := repo.Create(ctx, entities.AidRequest{ID: "req-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.Create(ctx, entities.AidRequest{ID: "req-1"}); err == nil {
			t.Fatalf("expected duplicate error")
		}
	})

	t.Run("missing id returns the zero value", func(t *testing.T) {
		repo := NewAidRequestMemoryRepository()
		got, err := repo.GetByID(ctx, "ghost")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero request, got %+v (err %v)", got, err)
		}
	})

	t.Run("update fields rewrites only the named fields", func(t *testing.T) {
		repo := NewAidRequestMemoryRepository()
		created := entities.AidRequest{ID: "req-1", RequesterName: "Ana", RequestedValue: "1.500,00"}
		if _, err := repo.Create(ctx, created); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		now := time.Now().UTC()
		updated, err := repo.UpdateFields(ctx, "req-1", map[string]string{
			entities.FieldStatus:        string(entities.StatusAceito),
			entities.FieldApprovedValue: "1.200,00",
			entities.FieldLastUpdatedAt: now.Format(time.RFC3339Nano),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.StatusAceito || updated.ApprovedValue != "1.200,00" {
			t.Fatalf("unexpected update: %+v", updated)
		}
		if updated.RequesterName != "Ana" || updated.RequestedValue != "1.500,00" {
			t.Fatalf("untouched fields changed: %+v", updated)
		}
		if !updated.LastUpdatedAt.Equal(now) {
			t.Fatalf("unexpected timestamp: %v", updated.LastUpdatedAt)
		}
	})

	t.Run("update fields rejects unknown fields", func(t *testing.T) {
		repo := NewAidRequestMemoryRepository()
		if _, err := repo.Create(ctx, entities.AidRequest{ID: "req-1"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := repo.UpdateFields(ctx, "req-1", map[string]string{"requester_cpf": "x"}); err == nil {
			t.Fatalf("expected an unknown-field error")
		}
	})

	t.Run("list by cpf keeps insertion order", func(t *testing.T) {
		repo := NewAidRequestMemoryRepository()
		for _, r := range []entities.AidRequest{
			{ID: "a", RequesterCPF: "111"},
			{ID: "b", RequesterCPF: "222"},
			{ID: "c", RequesterCPF: "111"},
		} {
			if _, err := repo.Create(ctx, r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		rs, err := repo.ListByCPF(ctx, "111")
		if err != nil || len(rs) != 2 || rs[0].ID != "a" || rs[1].ID != "c" {
			t.Fatalf("unexpected result %+v (err %v)", rs, err)
		}
	})
}

func TestAidRequestMemoryRepository_GetByCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewAidRequestMemoryRepository()
	at := time.Date(2024, 8, 1, 10, 30, 0, 0, time.UTC)

	seed := []entities.AidRequest{
		{ID: "a", CreatedAt: at},
		{ID: "b", CreatedAt: at.Add(time.Minute)},
	}
	for _, r := range seed {
		if _, err := repo.Create(ctx, r); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("unique timestamp resolves", func(t *testing.T) {
		got, err := repo.GetByCreatedAt(ctx, at)
		if err != nil || got.ID != "a" {
			t.Fatalf("expected request a, got %+v (err %v)", got, err)
		}
	})

	t.Run("missing timestamp returns the zero value", func(t *testing.T) {
		got, err := repo.GetByCreatedAt(ctx, at.Add(time.Hour))
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero request, got %+v (err %v)", got, err)
		}
	})

	t.Run("duplicate timestamps are flagged, not deduplicated", func(t *testing.T) {
		if _, err := repo.Create(ctx, entities.AidRequest{ID: "a2", CreatedAt: at}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		_, err := repo.GetByCreatedAt(ctx, at)
		if !errors.Is(err, interfaces.ErrAmbiguousCreatedAt) {
			t.Fatalf("expected ErrAmbiguousCreatedAt, got %v", err)
		}
	})
}
