package migration

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/JohnPitter/church-management-sub013/internal/domain"
	"github.com/JohnPitter/church-management-sub013/internal/legacy"
	"github.com/JohnPitter/church-management-sub013/internal/store"
)

// collectionMigrator handles one legacy record kind: transform, resolve
// identity, and write. The engine drives one migrator per collection.
type collectionMigrator interface {
	// Collection returns the target store collection name.
	Collection() string

	// Migrate transforms and persists one legacy record, returning whether a
	// new document was created or an existing one updated.
	Migrate(ctx context.Context, rec legacy.Record) (outcome, error)

	// DisplayName returns the best-effort human identifier for a record,
	// used in error diagnostics.
	DisplayName(id string, rec legacy.Record) string
}

type assistidoMigrator struct {
	store    store.DocumentStore
	resolver *identityResolver
	now      func() time.Time
}

func (m *assistidoMigrator) Collection() string { return domain.CollectionAssistidos }

func (m *assistidoMigrator) DisplayName(id string, rec legacy.Record) string {
	return displayName(id, rec, "nomeCompleto", "nome")
}

func (m *assistidoMigrator) Migrate(ctx context.Context, rec legacy.Record) (outcome, error) {
	assistido := TransformAssistido(rec, m.now())

	existingID, found, err := m.resolver.resolveAssistido(ctx, assistido.CPF)
	if err != nil {
		return outcomeCreated, err
	}

	if found {
		fields, err := mergeFields(assistido, m.now())
		if err != nil {
			return outcomeUpdated, err
		}
		if err := m.store.MergeUpsert(ctx, domain.CollectionAssistidos, existingID, fields); err != nil {
			return outcomeUpdated, err
		}
		return outcomeUpdated, nil
	}

	if _, err := m.store.Insert(ctx, domain.CollectionAssistidos, assistido); err != nil {
		return outcomeCreated, err
	}
	return outcomeCreated, nil
}

type membroMigrator struct {
	store    store.DocumentStore
	resolver *identityResolver
	now      func() time.Time
}

func (m *membroMigrator) Collection() string { return domain.CollectionMembros }

func (m *membroMigrator) DisplayName(id string, rec legacy.Record) string {
	return displayName(id, rec, "nomeCompleto", "nome", "email")
}

func (m *membroMigrator) Migrate(ctx context.Context, rec legacy.Record) (outcome, error) {
	membro := TransformMembro(rec, m.now())

	existingID, found, err := m.resolver.resolveMembro(ctx, membro.Email)
	if err != nil {
		return outcomeCreated, err
	}

	if found {
		fields, err := mergeFields(membro, m.now())
		if err != nil {
			return outcomeUpdated, err
		}
		if err := m.store.MergeUpsert(ctx, domain.CollectionMembros, existingID, fields); err != nil {
			return outcomeUpdated, err
		}
		return outcomeUpdated, nil
	}

	if _, err := m.store.Insert(ctx, domain.CollectionMembros, membro); err != nil {
		return outcomeCreated, err
	}
	return outcomeCreated, nil
}

type eventoMigrator struct {
	store store.DocumentStore
	now   func() time.Time
}

func (m *eventoMigrator) Collection() string { return domain.CollectionEventos }

func (m *eventoMigrator) DisplayName(id string, rec legacy.Record) string {
	return displayName(id, rec, "titulo", "nome")
}

// Migrate always inserts: events have no natural key, so deduplication is
// not attempted.
func (m *eventoMigrator) Migrate(ctx context.Context, rec legacy.Record) (outcome, error) {
	evento := TransformEvento(rec, m.now())
	if _, err := m.store.Insert(ctx, domain.CollectionEventos, evento); err != nil {
		return outcomeCreated, err
	}
	return outcomeCreated, nil
}

// mergeFields flattens an entity into the partial document handed to
// MergeUpsert. The original creation audit fields are preserved; only
// updatedAt is refreshed.
func mergeFields(entity any, now time.Time) (map[string]any, error) {
	raw, err := bson.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}

	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal entity: %w", err)
	}

	delete(fields, "createdAt")
	delete(fields, "createdBy")
	fields["updatedAt"] = now
	return fields, nil
}

// displayName picks the first non-empty candidate field, falling back to the
// legacy record ID.
func displayName(id string, rec legacy.Record, keys ...string) string {
	for _, key := range keys {
		if v := rec.String(key); v != "" {
			return v
		}
	}
	return id
}
