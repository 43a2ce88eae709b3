package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Memory is an in-process DocumentStore used by tests and dry runs. Documents
// are kept in insertion order so find-by-field is deterministic.
type Memory struct {
	mu          sync.Mutex
	collections map[string][]*memoryDoc
}

type memoryDoc struct {
	id     string
	fields map[string]any
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]*memoryDoc)}
}

// FindOneByField returns the first document, in insertion order, whose field
// equals value.
func (m *Memory) FindOneByField(_ context.Context, collection, field string, value any) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if doc.fields[field] == value {
			return doc.id, true, nil
		}
	}
	return "", false, nil
}

// Insert stores the document and returns a generated ID.
func (m *Memory) Insert(_ context.Context, collection string, doc any) (string, error) {
	fields, err := flatten(doc)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.NewString()
	m.collections[collection] = append(m.collections[collection], &memoryDoc{id: id, fields: fields})
	return id, nil
}

// MergeUpsert merges fields into an existing document, or creates the
// document when the ID is unknown.
func (m *Memory) MergeUpsert(_ context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if doc.id == id {
			for k, v := range fields {
				doc.fields[k] = v
			}
			return nil
		}
	}

	merged := make(map[string]any, len(fields))
	for k, v := range fields {
		merged[k] = v
	}
	m.collections[collection] = append(m.collections[collection], &memoryDoc{id: id, fields: merged})
	return nil
}

// Count returns the number of documents in a collection.
func (m *Memory) Count(collection string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.collections[collection])
}

// Get returns a copy of a document's fields by ID.
func (m *Memory) Get(collection, id string) (map[string]any, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.collections[collection] {
		if doc.id == id {
			out := make(map[string]any, len(doc.fields))
			for k, v := range doc.fields {
				out[k] = v
			}
			return out, true
		}
	}
	return nil, false
}

// flatten converts an arbitrary document into a field map via bson, so the
// in-memory store sees the same field names MongoDB would.
func flatten(doc any) (map[string]any, error) {
	if fields, ok := doc.(map[string]any); ok {
		copied := make(map[string]any, len(fields))
		for k, v := range fields {
			copied[k] = v
		}
		return copied, nil
	}

	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return fields, nil
}
