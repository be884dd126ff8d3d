package store_test

import (
	"testing"

	"sudsshop/internal/domain"
	"sudsshop/internal/repos"
	"sudsshop/internal/store"
)

func memCatalog(t *testing.T) (*store.Catalog, *repos.CatalogRepo) {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	repo := repos.NewCatalogRepo(db)
	cat, err := store.LoadCatalog(repo)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat, repo
}

func TestLoadCatalogSeedsEmptyDatabase(t *testing.T) {
	cat, repo := memCatalog(t)

	got := cat.List()
	want := domain.SeedProducts()
	if len(got) != len(want) {
		t.Fatalf("want %d seeded products, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Name != want[i].Name {
			t.Fatalf("seed order broken at %d: %s", i, got[i].Name)
		}
	}

	// the seed must also have been persisted
	persisted, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(persisted) != len(want) {
		t.Fatalf("seed not flushed: %d rows", len(persisted))
	}
}

func TestCatalogRoundTripPreservesFieldsAndOrder(t *testing.T) {
	cat, repo := memCatalog(t)

	p := domain.Product{
		ID:     "soap-km",
		Name:   "Lemongrass Bar",
		NameKM: "សាប៊ូស្លឹកគ្រៃ",
		Price:  2.5,
		Image:  "https://example.test/bar.jpeg",
		Images: []string{"https://example.test/bar.jpeg", "https://example.test/bar2.jpeg"},
		Scent:  "Lemongrass",
	}
	if err := cat.Add(p); err != nil {
		t.Fatal(err)
	}

	reloaded, err := repo.Load()
	if err != nil {
		t.Fatal(err)
	}
	// Add prepends, so the new product leads the snapshot
	if reloaded[0].ID != "soap-km" {
		t.Fatalf("new product not first, got %s", reloaded[0].ID)
	}
	got := reloaded[0]
	if got.NameKM != p.NameKM || got.Scent != p.Scent || got.Price != p.Price {
		t.Fatalf("fields lost in round trip: %+v", got)
	}
	if len(got.Images) != 2 || got.Images[1] != p.Images[1] {
		t.Fatalf("gallery lost in round trip: %v", got.Images)
	}
}

func TestCatalogUpdateAndDelete(t *testing.T) {
	cat, _ := memCatalog(t)

	p, ok := cat.Get("2")
	if !ok {
		t.Fatal("seed product 2 missing")
	}
	p.Price = 0.5
	if err := cat.Update(p); err != nil {
		t.Fatal(err)
	}
	if got, _ := cat.Get("2"); got.Price != 0.5 {
		t.Fatalf("update lost: %v", got.Price)
	}

	// update of an unknown id is a no-op
	if err := cat.Update(domain.Product{ID: "ghost", Name: "Ghost", Price: 1}); err != nil {
		t.Fatal(err)
	}
	if _, ok := cat.Get("ghost"); ok {
		t.Fatal("no-op update inserted a product")
	}

	before := len(cat.List())
	if err := cat.Delete("ghost"); err != nil {
		t.Fatal(err)
	}
	if len(cat.List()) != before {
		t.Fatal("deleting an absent id changed the catalog")
	}
	if err := cat.Delete("2"); err != nil {
		t.Fatal(err)
	}
	if _, ok := cat.Get("2"); ok {
		t.Fatal("product 2 survived delete")
	}
}

func TestCatalogRejectsInvalidProduct(t *testing.T) {
	cat, _ := memCatalog(t)

	if err := cat.Add(domain.Product{ID: "x", Price: 1}); err != store.ErrInvalidProduct {
		t.Fatalf("nameless product accepted: %v", err)
	}
	if err := cat.Add(domain.Product{ID: "x", Name: "X", Price: -1}); err != store.ErrInvalidProduct {
		t.Fatalf("negative price accepted: %v", err)
	}
}
