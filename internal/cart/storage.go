package cart

import (
	"os"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/techvault/storefront/internal/domain"
)

// Storage persists a cart between sessions. Implementations replace the
// browser localStorage the original storefront leaned on.
type Storage interface {
	Load() (Cart, error)
	Save(c Cart) error
}

// MemoryStorage keeps the cart in process memory.
type MemoryStorage struct {
	mu    sync.Mutex
	lines []Line
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return New(s.lines...), nil
}

func (s *MemoryStorage) Save(c Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = c.Items()
	return nil
}

// FileStorage persists the cart as a JSON file.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load() (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return Cart{}, nil
	}
	if err != nil {
		return Cart{}, errors.Wrap(err, "read cart file")
	}
	var lines []Line
	if err := jsoniter.Unmarshal(data, &lines); err != nil {
		return Cart{}, errors.Wrap(err, "decode cart file")
	}
	return New(lines...), nil
}

func (s *FileStorage) Save(c Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := jsoniter.Marshal(c.Items())
	if err != nil {
		return errors.Wrap(err, "encode cart")
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Service wraps a Storage with load-modify-save cart operations. Every
// operation returns the resulting cart value.
type Service struct {
	storage Storage
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

func (s *Service) Get() (Cart, error) {
	return s.storage.Load()
}

func (s *Service) apply(fn func(Cart) Cart) (Cart, error) {
	current, err := s.storage.Load()
	if err != nil {
		return Cart{}, err
	}
	next := fn(current)
	if err := s.storage.Save(next); err != nil {
		return Cart{}, err
	}
	return next, nil
}

func (s *Service) Add(product domain.Product, color, size string, quantity int) (Cart, error) {
	return s.apply(func(c Cart) Cart { return c.Add(product, color, size, quantity) })
}

func (s *Service) UpdateQuantity(index, quantity int) (Cart, error) {
	return s.apply(func(c Cart) Cart { return c.UpdateQuantity(index, quantity) })
}

func (s *Service) Remove(index int) (Cart, error) {
	return s.apply(func(c Cart) Cart { return c.Remove(index) })
}

func (s *Service) Clear() (Cart, error) {
	return s.apply(func(c Cart) Cart { return c.Clear() })
}
