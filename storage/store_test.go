package storage

import (
	"path/filepath"
	"testing"
	"time"

	bolt "go.etcd.io/bbolt"

	"eggshop/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetProductsSeedsExactlyOnce(t *testing.T) {
	s := newTestStore(t)

	first := s.GetProducts()
	if len(first) != 4 {
		t.Fatalf("expected 4 seeded products, got %d", len(first))
	}

	// The seed must have been persisted: a mutation followed by a read
	// must not bring the seed back.
	if err := s.DeleteProduct(first[0].ID); err != nil {
		t.Fatalf("delete product: %v", err)
	}
	second := s.GetProducts()
	if len(second) != 3 {
		t.Fatalf("expected 3 products after delete, got %d (store re-seeded?)", len(second))
	}
}

func TestSaveProductUpsert(t *testing.T) {
	s := newTestStore(t)
	seeded := s.GetProducts()

	// Updating an existing id keeps its position.
	updated := seeded[1]
	updated.Price = 99.90
	updated.Name = "Updated Eggs"
	if err := s.SaveProduct(updated); err != nil {
		t.Fatalf("save product: %v", err)
	}
	products := s.GetProducts()
	if len(products) != len(seeded) {
		t.Fatalf("upsert changed collection size: %d -> %d", len(seeded), len(products))
	}
	if products[1].ID != updated.ID || products[1].Price != 99.90 {
		t.Fatalf("expected updated product at position 1, got %+v", products[1])
	}

	// A new id is appended.
	fresh := models.Product{ID: "new-id", Name: "Quail Eggs", Type: models.TypeQuail, QuantityPerPackage: 24, Price: 15, Active: true}
	if err := s.SaveProduct(fresh); err != nil {
		t.Fatalf("save product: %v", err)
	}
	products = s.GetProducts()
	if got := products[len(products)-1].ID; got != "new-id" {
		t.Fatalf("expected new product appended last, got id %s", got)
	}

	// Exactly one record per id.
	seen := map[string]int{}
	for _, p := range products {
		seen[p.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Fatalf("id %s appears %d times", id, n)
		}
	}
}

func TestDeleteProductAbsentIsNoop(t *testing.T) {
	s := newTestStore(t)
	before := s.GetProducts()

	if err := s.DeleteProduct("does-not-exist"); err != nil {
		t.Fatalf("delete of absent id should not error: %v", err)
	}
	after := s.GetProducts()
	if len(after) != len(before) {
		t.Fatalf("delete of absent id changed collection: %d -> %d", len(before), len(after))
	}
}

func TestSaveOrderPrependsNewReplacesExisting(t *testing.T) {
	s := newTestStore(t)

	a := models.Order{ID: "order-a", Status: models.StatusPending, CreatedAt: time.Now()}
	b := models.Order{ID: "order-b", Status: models.StatusPending, CreatedAt: time.Now()}
	if err := s.SaveOrder(a); err != nil {
		t.Fatalf("save order: %v", err)
	}
	if err := s.SaveOrder(b); err != nil {
		t.Fatalf("save order: %v", err)
	}

	orders := s.GetOrders()
	if len(orders) != 2 || orders[0].ID != "order-b" {
		t.Fatalf("expected newest order first, got %+v", orders)
	}

	// A status update replaces in place, it does not move the order.
	a.Status = models.StatusDelivering
	if err := s.SaveOrder(a); err != nil {
		t.Fatalf("save order: %v", err)
	}
	orders = s.GetOrders()
	if len(orders) != 2 {
		t.Fatalf("update duplicated order: %d records", len(orders))
	}
	if orders[1].ID != "order-a" || orders[1].Status != models.StatusDelivering {
		t.Fatalf("expected updated order-a at position 1, got %+v", orders[1])
	}
}

func TestSaveCustomerMergesByPhone(t *testing.T) {
	s := newTestStore(t)

	when := time.Now()
	if err := s.SaveCustomer(models.Customer{ID: "c1", Phone: "123", Name: "A", TotalOrders: 2, LastOrderDate: &when}); err != nil {
		t.Fatalf("save customer: %v", err)
	}
	// Partial update: only the name is set, counters must survive.
	if err := s.SaveCustomer(models.Customer{Phone: "123", Name: "B"}); err != nil {
		t.Fatalf("save customer: %v", err)
	}

	got, ok := s.GetCustomerByPhone("123")
	if !ok {
		t.Fatal("customer not found")
	}
	if got.Name != "B" {
		t.Fatalf("expected merged name B, got %s", got.Name)
	}
	if got.TotalOrders != 2 {
		t.Fatalf("merge wiped totalOrders: got %d, want 2", got.TotalOrders)
	}
	if got.ID != "c1" {
		t.Fatalf("merge wiped id: got %s", got.ID)
	}

	// Same phone never yields two records.
	if n := len(s.GetCustomers()); n != 1 {
		t.Fatalf("expected 1 customer, got %d", n)
	}
}

func TestGetCustomerByPhoneAbsent(t *testing.T) {
	s := newTestStore(t)
	if _, ok := s.GetCustomerByPhone("nobody"); ok {
		t.Fatal("expected no customer")
	}
}

func TestSessionSlot(t *testing.T) {
	s := newTestStore(t)

	if _, ok := s.GetSession(); ok {
		t.Fatal("expected no session on a fresh store")
	}

	customer := models.Customer{ID: "c1", Phone: "123", Name: "Maria"}
	if err := s.SetSession(models.CustomerSession(customer)); err != nil {
		t.Fatalf("set session: %v", err)
	}
	session, ok := s.GetSession()
	if !ok || session.Role != models.RoleCustomer || session.Customer == nil || session.Customer.Phone != "123" {
		t.Fatalf("unexpected session %+v", session)
	}

	// Logging in overwrites the single slot.
	if err := s.SetSession(models.AdminSession(models.AdminIdentity{ID: "admin", Name: "Rogerio"})); err != nil {
		t.Fatalf("set session: %v", err)
	}
	session, ok = s.GetSession()
	if !ok || session.Role != models.RoleAdmin || session.Admin == nil || session.Customer != nil {
		t.Fatalf("unexpected session %+v", session)
	}

	if err := s.ClearSession(); err != nil {
		t.Fatalf("clear session: %v", err)
	}
	if _, ok := s.GetSession(); ok {
		t.Fatal("expected no session after clear")
	}
}

func TestMalformedBlobTreatedAsAbsent(t *testing.T) {
	s := newTestStore(t)

	corrupt := func(key string) {
		err := s.db.Update(func(tx *bolt.Tx) error {
			return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte("{not json"))
		})
		if err != nil {
			t.Fatalf("corrupt %s: %v", key, err)
		}
	}

	corrupt(keyOrders)
	if got := s.GetOrders(); len(got) != 0 {
		t.Fatalf("expected empty orders for malformed blob, got %+v", got)
	}

	corrupt(keyCustomers)
	if got := s.GetCustomers(); len(got) != 0 {
		t.Fatalf("expected empty customers for malformed blob, got %+v", got)
	}

	corrupt(keySession)
	if _, ok := s.GetSession(); ok {
		t.Fatal("expected absent session for malformed blob")
	}

	// The catalog falls back to the seed instead of empty.
	corrupt(keyProducts)
	if got := s.GetProducts(); len(got) != 4 {
		t.Fatalf("expected re-seeded catalog for malformed blob, got %d products", len(got))
	}
}
