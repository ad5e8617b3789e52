package memory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	u, err := repo.Create(ctx, &domain.User{Username: "farmer", Role: domain.RoleAdmin})
	if err != nil || u.ID != "1" {
		t.Fatalf("create: %+v %v", u, err)
	}
	if _, err := repo.Create(ctx, &domain.User{Username: "farmer"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	got, err := repo.FindByUsername(ctx, "farmer")
	if err != nil || got.Role != domain.RoleAdmin {
		t.Fatalf("find: %+v %v", got, err)
	}
	got.Role = "mutated"
	again, _ := repo.FindByUsername(ctx, "farmer")
	if again.Role != domain.RoleAdmin {
		t.Fatalf("repository handed out shared state")
	}

	if _, err := repo.FindByUsername(ctx, "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAnimalRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepository()

	for i, status := range []string{domain.AnimalActive, domain.AnimalActive, domain.AnimalSold} {
		a, err := repo.Create(ctx, domain.AnimalInput{CategoryID: 1, Gender: "female", Status: status})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if a.ID != i+1 {
			t.Fatalf("unexpected id %d", a.ID)
		}
	}

	page, _ := repo.List(ctx, domain.Page{Limit: 2, Offset: 1})
	if len(page) != 2 || page[0].ID != 2 {
		t.Fatalf("unexpected page %+v", page)
	}
	if past, _ := repo.List(ctx, domain.Page{Offset: 10}); len(past) != 0 {
		t.Fatalf("offset past the end should be empty")
	}

	byTag, err := repo.FindByTagID(ctx, "fd-00003")
	if err != nil || byTag.ID != 3 {
		t.Fatalf("tag lookup: %+v %v", byTag, err)
	}
	if _, err := repo.FindByID(ctx, 42); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	counts, _ := repo.CountByStatus(ctx)
	if counts[domain.AnimalActive] != 2 || counts[domain.AnimalSold] != 1 {
		t.Fatalf("unexpected counts %v", counts)
	}
}

func TestAnimalRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewAnimalRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Create(ctx, domain.AnimalInput{Status: domain.AnimalActive})
		}()
	}
	wg.Wait()

	if n, _ := repo.Count(ctx); n != 50 {
		t.Fatalf("expected 50 animals, got %d", n)
	}
}

func TestCategoryRepository_SeedAndConflict(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository()

	if err := SeedCatalog(ctx, repo); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if err := SeedCatalog(ctx, repo); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	n, _ := repo.Count(ctx)
	if n != int64(len(seedCategories)) {
		t.Fatalf("expected %d categories, got %d", len(seedCategories), n)
	}

	if _, err := repo.Create(ctx, domain.CategoryInput{SKU: "cow-gir"}); !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("duplicate sku should conflict, got %v", err)
	}

	c, err := repo.FindByID(ctx, 2)
	if err != nil || c.Name != "Murrah" {
		t.Fatalf("find: %+v %v", c, err)
	}
}
