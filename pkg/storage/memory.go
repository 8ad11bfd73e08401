package storage

import (
	"context"
	"sync"
)

type object struct {
	content     []byte
	contentType string
}

// Memory keeps objects in process memory. Used by tests and throwaway instances.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]object
}

func NewMemory() *Memory {
	return &Memory{objects: make(map[string]object)}
}

func (s *Memory) Driver() Driver { return DriverMemory }

func (s *Memory) Put(_ context.Context, key string, content []byte, contentType string) error {
	clean, err := sanitizeKey(key)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.objects[clean] = object{content: append([]byte(nil), content...), contentType: contentType}

	return nil
}

func (s *Memory) Delete(_ context.Context, key string) (bool, error) {
	clean, err := sanitizeKey(key)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, found := s.objects[clean]
	delete(s.objects, clean)

	return found, nil
}

// Get returns a stored object and its content type.
func (s *Memory) Get(key string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, found := s.objects[key]

	return obj.content, obj.contentType, found
}
