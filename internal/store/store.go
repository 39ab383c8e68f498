// Package store holds the in-memory employee collection served as the upstream employee store.
package store

import (
	"errors"
	"sync"

	"github.com/rqchallenge/employees/internal/models"
)

var (
	ErrNotFound    = errors.New("employee not found")
	ErrDuplicateID = errors.New("employee id already exists")
	ErrKeyMismatch = errors.New("create key does not match employee id")
)

const defaultProfileImage = "https://picsum.photos/id/1/200/300"

// Store is a keyed employee collection that remembers insertion order. Each operation holds the
// lock for its whole duration and hands out copies.
type Store struct {
	mu      sync.Mutex
	ids     []string
	records map[string]models.Employee
}

func New() *Store {
	return &Store{records: make(map[string]models.Employee)}
}

// DefaultSeed returns the records the store starts with in the default setup.
func DefaultSeed() []models.Employee {
	return []models.Employee{
		{ID: "1", Name: "John", Salary: "3000", Age: "25", ProfileImage: defaultProfileImage},
		{ID: "2", Name: "Jay", Salary: "3200", Age: "27", ProfileImage: defaultProfileImage},
	}
}

// Seed inserts records keyed by their own id. Records whose id is already present are skipped.
func (s *Store) Seed(records ...models.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		if _, ok := s.records[r.ID]; ok {
			continue
		}

		s.insert(r)
	}
}

func (s *Store) List() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Employee, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, s.records[id])
	}

	return out
}

func (s *Store) Get(id string) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.records[id]
	if !ok {
		return models.Employee{}, ErrNotFound
	}

	return e, nil
}

// Create stores record under key. An existing key is never overwritten and a key that differs from
// the record id leaves the store unchanged.
func (s *Store) Create(key string, record models.Employee) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[key]; ok {
		return models.Employee{}, ErrDuplicateID
	}

	if key != record.ID {
		return models.Employee{}, ErrKeyMismatch
	}

	s.insert(record)

	return record, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}

	delete(s.records, id)

	for i := range s.ids {
		if s.ids[i] == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)

			break
		}
	}

	return nil
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// insert expects the lock to be held.
func (s *Store) insert(r models.Employee) {
	s.records[r.ID] = r
	s.ids = append(s.ids, r.ID)
}
