package storage

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"eggshop/models"
)

// Bucket and key layout. Each collection is one JSON blob under one key;
// every save rewrites the whole blob. There is no indexing and no partial
// update, so concurrent writers are last-writer-wins at collection level.
const bucketName = "eggshop"

const (
	keyProducts  = "products"
	keyOrders    = "orders"
	keyCustomers = "customers"
	keySession   = "session"
)

// Store is the local key-value persistence layer for the storefront. It is
// a best-effort cache, not a system of record: a missing or unparseable
// blob is treated as absent and reads fall back to the seed catalog or an
// empty collection instead of surfacing an error.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the store file at path.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database file.
func (s *Store) Close() error {
	return s.db.Close()
}

// read unmarshals the blob under key into dest. It reports false when the
// blob is missing or does not parse; dest is left untouched in that case.
func (s *Store) read(key string, dest interface{}) bool {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil || raw == nil {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

// write marshals val and stores it under key, replacing the whole blob.
func (s *Store) write(key string, val interface{}) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), raw)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Store) delete(key string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// GetProducts returns the full catalog. On first read (or an unreadable
// blob) it seeds the fixed starter catalog and persists it, so the next
// read returns the same records without re-seeding.
func (s *Store) GetProducts() []models.Product {
	var products []models.Product
	if !s.read(keyProducts, &products) {
		products = SeedProducts()
		if err := s.write(keyProducts, products); err != nil {
			// Best effort: hand the seed to the caller even if it
			// could not be persisted.
			return products
		}
	}
	return products
}

// SaveProduct upserts a product by id. An existing product is replaced at
// its current position; a new one is appended. The whole collection is
// persisted afterward.
func (s *Store) SaveProduct(p models.Product) error {
	products := s.GetProducts()
	replaced := false
	for i := range products {
		if products[i].ID == p.ID {
			products[i] = p
			replaced = true
			break
		}
	}
	if !replaced {
		products = append(products, p)
	}
	return s.write(keyProducts, products)
}

// DeleteProduct removes the product with the given id. Deleting an absent
// id is a silent no-op.
func (s *Store) DeleteProduct(id string) error {
	products := s.GetProducts()
	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.write(keyProducts, kept)
}

// GetOrders returns every order, newest first. There is no seed for
// orders; an absent blob is an empty collection.
func (s *Store) GetOrders() []models.Order {
	var orders []models.Order
	s.read(keyOrders, &orders)
	return orders
}

// SaveOrder upserts an order by id. New orders are prepended so the
// collection stays newest-first; status updates replace the existing
// record in place.
func (s *Store) SaveOrder(o models.Order) error {
	orders := s.GetOrders()
	replaced := false
	for i := range orders {
		if orders[i].ID == o.ID {
			orders[i] = o
			replaced = true
			break
		}
	}
	if !replaced {
		orders = append([]models.Order{o}, orders...)
	}
	return s.write(keyOrders, orders)
}

// GetCustomers returns every known customer.
func (s *Store) GetCustomers() []models.Customer {
	var customers []models.Customer
	s.read(keyCustomers, &customers)
	return customers
}

// SaveCustomer upserts a customer keyed by phone number, not id. On a
// phone match the stored record is merged with the incoming one: fields
// set on the incoming record win, fields left at their zero value keep the
// stored value. Two customers can therefore never share a phone number.
func (s *Store) SaveCustomer(c models.Customer) error {
	customers := s.GetCustomers()
	merged := false
	for i := range customers {
		if customers[i].Phone == c.Phone {
			customers[i] = mergeCustomer(customers[i], c)
			merged = true
			break
		}
	}
	if !merged {
		customers = append(customers, c)
	}
	return s.write(keyCustomers, customers)
}

// GetCustomerByPhone finds a customer by phone. The second return value
// reports whether a record was found.
func (s *Store) GetCustomerByPhone(phone string) (models.Customer, bool) {
	for _, c := range s.GetCustomers() {
		if c.Phone == phone {
			return c, true
		}
	}
	return models.Customer{}, false
}

// GetSession reads the single persisted session slot.
func (s *Store) GetSession() (models.Session, bool) {
	var session models.Session
	if !s.read(keySession, &session) || session.Role == "" {
		return models.Session{}, false
	}
	return session, true
}

// SetSession overwrites the session slot.
func (s *Store) SetSession(session models.Session) error {
	return s.write(keySession, session)
}

// ClearSession empties the session slot.
func (s *Store) ClearSession() error {
	return s.delete(keySession)
}

// mergeCustomer applies incoming on top of stored. Zero-valued incoming
// fields preserve the stored value, so partial updates cannot wipe
// counters or the saved address.
func mergeCustomer(stored, incoming models.Customer) models.Customer {
	out := stored
	if incoming.ID != "" {
		out.ID = incoming.ID
	}
	if incoming.Name != "" {
		out.Name = incoming.Name
	}
	if incoming.Email != "" {
		out.Email = incoming.Email
	}
	if incoming.Address != nil {
		out.Address = incoming.Address
	}
	if incoming.TotalOrders != 0 {
		out.TotalOrders = incoming.TotalOrders
	}
	if incoming.LastOrderDate != nil {
		out.LastOrderDate = incoming.LastOrderDate
	}
	return out
}
