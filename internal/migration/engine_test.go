package migration

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnPitter/church-management-sub013/internal/domain"
	"github.com/JohnPitter/church-management-sub013/internal/legacy"
	"github.com/JohnPitter/church-management-sub013/internal/store"
)

func payloadFromJSON(t *testing.T, raw string) *legacy.Payload {
	t.Helper()
	payload, err := legacy.ParsePayload([]byte(raw))
	require.NoError(t, err)
	return payload
}

func TestMigrateSingleAssistido(t *testing.T) {
	mem := store.NewMemory()
	engine := NewEngine(mem)

	payload := payloadFromJSON(t, `{
		"assistidos": {
			"1": {"nomeCompleto": "Ana", "dataNascimento": "15/05/1990", "cpf": "111"}
		}
	}`)

	result, err := engine.Migrate(context.Background(), payload, nil)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 1, result.TotalRecords)
	assert.Equal(t, 1, result.MigratedRecords)
	assert.Equal(t, 0, result.Errors)
	assert.Equal(t, 1, mem.Count(domain.CollectionAssistidos))

	require.Len(t, result.Collections, 1)
	progress := result.Collections[0]
	assert.Equal(t, domain.CollectionAssistidos, progress.Collection)
	assert.Equal(t, StatusCompleted, progress.Status)
	assert.Equal(t, progress.Total, progress.Processed)

	// The summary line is always present once a collection completes.
	require.NotEmpty(t, progress.ErrorMessages)
	assert.Equal(t, "Novos: 1, Atualizados: 0, Erros: 0", progress.ErrorMessages[0])
}

func TestMigrateIsIdempotentForAssistidos(t *testing.T) {
	mem := store.NewMemory()
	engine := NewEngine(mem)

	payload := payloadFromJSON(t, `{
		"assistidos": {
			"1": {"nomeCompleto": "Ana", "cpf": "111"}
		}
	}`)

	_, err := engine.Migrate(context.Background(), payload, nil)
	require.NoError(t, err)

	id, found, err := mem.FindOneByField(context.Background(), domain.CollectionAssistidos, "cpf", "111")
	require.NoError(t, err)
	require.True(t, found)

	// Second run merges into the same document instead of duplicating.
	result, err := engine.Migrate(context.Background(), payload, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, mem.Count(domain.CollectionAssistidos))
	assert.Equal(t, "Novos: 0, Atualizados: 1, Erros: 0", result.Collections[0].ErrorMessages[0])

	idAfter, found, err := mem.FindOneByField(context.Background(), domain.CollectionAssistidos, "cpf", "111")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, id, idAfter)
}

func TestMigrateAssistidoWithoutCPFAlwaysInserts(t *testing.T) {
	mem := store.NewMemory()
	engine := NewEngine(mem)

	payload := payloadFromJSON(t, `{
		"assistidos": {
			"1": {"nomeCompleto": "Sem Documento"}
		}
	}`)

	_, err := engine.Migrate(context.Background(), payload, nil)
	require.NoError(t, err)
	_, err = engine.Migrate(context.Background(), payload, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, mem.Count(domain.CollectionAssistidos))
}

func TestMigrateEventosNeverDeduplicate(t *testing.T) {
	mem := store.NewMemory()
	engine := NewEngine(mem)

	payload := payloadFromJSON(t, `{
		"eventos": {
			"1": {"titulo": "Culto", "dataEvento": "25/12/2023", "status": "cancelado"}
		}
	}`)

	_, err := engine.Migrate(context.Background(), payload, nil)
	require.NoError(t, err)
	_, err = engine.Migrate(context.Background(), payload, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, mem.Count(domain.CollectionEventos))
}

func TestMigrateAbsentCollectionsProduceNoProgress(t *testing.T) {
	engine := NewEngine(store.NewMemory())

	payload := payloadFromJSON(t, `{
		"membros": {
			"1": {"nomeCompleto": "Carlos", "email": "carlos@example.com"}
		}
	}`)

	result, err := engine.Migrate(context.Background(), payload, nil)
	require.NoError(t, err)

	require.Len(t, result.Collections, 1)
	assert.Equal(t, domain.CollectionMembros, result.Collections[0].Collection)
}

// failingStore wraps the memory store and fails every operation touching
// records whose CPF matches failCPF.
type failingStore struct {
	*store.Memory
	failCPF string
}

func (f *failingStore) FindOneByField(ctx context.Context, collection, field string, value any) (string, bool, error) {
	if field == "cpf" && value == f.failCPF {
		return "", false, fmt.Errorf("store unavailable")
	}
	return f.Memory.FindOneByField(ctx, collection, field, value)
}

func TestMigrateContinuesPastRecordFailure(t *testing.T) {
	mem := store.NewMemory()
	engine := NewEngine(&failingStore{Memory: mem, failCPF: "222"})

	payload := payloadFromJSON(t, `{
		"assistidos": {
			"1": {"nomeCompleto": "Ana", "cpf": "111"},
			"2": {"nomeCompleto": "Bia", "cpf": "222"},
			"3": {"nomeCompleto": "Clara", "cpf": "333"}
		}
	}`)

	result, err := engine.Migrate(context.Background(), payload, nil)
	require.NoError(t, err)

	progress := result.Collections[0]
	assert.Equal(t, 3, progress.Total)
	assert.Equal(t, 3, progress.Processed)
	assert.Equal(t, 1, progress.Errors)
	assert.Equal(t, StatusCompleted, progress.Status)

	// Summary line plus exactly one diagnostic for the failed record.
	require.Len(t, progress.ErrorMessages, 2)
	assert.Equal(t, "Novos: 2, Atualizados: 0, Erros: 1", progress.ErrorMessages[0])
	assert.Contains(t, progress.ErrorMessages[1], "Bia")

	// The two healthy records were still written.
	assert.Equal(t, 2, mem.Count(domain.CollectionAssistidos))
}

func TestMigrateProgressCadence(t *testing.T) {
	engine := NewEngine(store.NewMemory())

	entries := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		entries = append(entries, fmt.Sprintf("%q: {\"titulo\": \"Evento %d\"}", fmt.Sprint(i), i))
	}
	payload := payloadFromJSON(t, fmt.Sprintf(`{"eventos": {%s}}`, joinEntries(entries)))

	var calls [][]Progress
	_, err := engine.Migrate(context.Background(), payload, func(progress []Progress) {
		calls = append(calls, progress)
	})
	require.NoError(t, err)

	// Collection start, records 5 and 10, and collection end.
	require.Len(t, calls, 4)
	assert.Equal(t, StatusProcessing, calls[0][0].Status)
	assert.Equal(t, 0, calls[0][0].Processed)
	assert.Equal(t, 5, calls[1][0].Processed)
	assert.Equal(t, 10, calls[2][0].Processed)
	assert.Equal(t, StatusCompleted, calls[3][0].Status)
	assert.Equal(t, 12, calls[3][0].Processed)

	// Snapshots are independent copies: earlier ones keep their state.
	assert.Equal(t, 0, calls[0][0].Processed)
}

func joinEntries(entries []string) string {
	out := ""
	for i, e := range entries {
		if i > 0 {
			out += ", "
		}
		out += e
	}
	return out
}

func TestMigrateSequentialOrderFollowsPayload(t *testing.T) {
	mem := store.NewMemory()
	engine := NewEngine(mem)

	payload := payloadFromJSON(t, `{
		"assistidos": {
			"z": {"nomeCompleto": "Primeiro", "cpf": "1"},
			"a": {"nomeCompleto": "Segundo", "cpf": "2"}
		}
	}`)

	require.Equal(t, "z", payload.Assistidos.Entries()[0].ID)
	require.Equal(t, "a", payload.Assistidos.Entries()[1].ID)

	_, err := engine.Migrate(context.Background(), payload, nil)
	require.NoError(t, err)

	// Insertion order in the store mirrors payload order.
	firstID, found, err := mem.FindOneByField(context.Background(), domain.CollectionAssistidos, "nome", "Primeiro")
	require.NoError(t, err)
	require.True(t, found)
	assert.NotEmpty(t, firstID)
}

func TestMigrateNilPayloadIsFatal(t *testing.T) {
	engine := NewEngine(store.NewMemory())

	_, err := engine.Migrate(context.Background(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload")
}

func TestMigrateMultipleCollections(t *testing.T) {
	mem := store.NewMemory()
	engine := NewEngine(mem)

	payload := payloadFromJSON(t, `{
		"assistidos": {"1": {"nomeCompleto": "Ana", "cpf": "111"}},
		"membros":    {"1": {"nomeCompleto": "Carlos", "email": "c@x.com"}},
		"eventos":    {"1": {"titulo": "Culto"}}
	}`)

	result, err := engine.Migrate(context.Background(), payload, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalRecords)
	assert.Equal(t, 3, result.MigratedRecords)
	assert.Equal(t, 0, result.Errors)
	require.Len(t, result.Collections, 3)

	for _, p := range result.Collections {
		assert.Equal(t, StatusCompleted, p.Status)
		assert.Equal(t, p.Total, p.Processed)
		assert.LessOrEqual(t, p.Errors, p.Processed)
	}
}
