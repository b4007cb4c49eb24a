package store

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Gateway. Documents go through the same bson
// encoding as the Mongo gateway, so entities read back identically.
type Memory struct {
	name string
	now  func() time.Time

	mu          sync.RWMutex
	collections map[string][]bson.M
}

func NewMemory(name string) *Memory {
	return &Memory{
		name:        name,
		now:         time.Now,
		collections: make(map[string][]bson.M),
	}
}

func (m *Memory) Available() bool { return true }
func (m *Memory) Name() string    { return m.name }

func (m *Memory) CreateDocument(_ context.Context, collection string, doc any) (string, error) {
	d, err := toDocument(doc)
	if err != nil {
		return "", fmt.Errorf("encode %s document: %w", collection, err)
	}

	oid := primitive.NewObjectID()
	now := m.now().UTC()
	d[FieldID] = oid
	d[FieldCreatedAt] = now
	d[FieldUpdatedAt] = now

	// Store the encoded form so later reads never alias caller memory.
	stored, err := toDocument(d)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], stored)
	m.mu.Unlock()

	return oid.Hex(), nil
}

func (m *Memory) GetDocuments(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []bson.M{}
	for _, d := range m.collections[collection] {
		if !matches(d, filter) {
			continue
		}
		c, err := toDocument(d)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}

func (m *Memory) CountDocuments(_ context.Context, collection string, filter bson.M) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, d := range m.collections[collection] {
		if matches(d, filter) {
			n++
		}
	}
	return n, nil
}

func (m *Memory) ListCollectionNames(context.Context) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// matches supports top-level equality filters only.
func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
