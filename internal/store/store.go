package store

import "context"

// DocumentStore is the persistence boundary of the migration engine: a
// key-value document database with find-by-field and merge-upsert support.
type DocumentStore interface {
	// FindOneByField returns the ID of one document whose field equals value,
	// or found=false when no document matches.
	FindOneByField(ctx context.Context, collection, field string, value any) (id string, found bool, err error)

	// Insert writes a new document and returns its generated ID.
	Insert(ctx context.Context, collection string, doc any) (string, error)

	// MergeUpsert merges fields into the document with the given ID without
	// deleting untouched existing fields.
	MergeUpsert(ctx context.Context, collection, id string, fields map[string]any) error
}
