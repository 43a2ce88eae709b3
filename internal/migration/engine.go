package migration

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/JohnPitter/church-management-sub013/internal/legacy"
	"github.com/JohnPitter/church-management-sub013/internal/store"
)

// progressInterval is how many processed records pass between progress
// callback invocations inside a collection.
const progressInterval = 5

// Engine runs a legacy migration: one collection at a time, one record at a
// time, never aborting a collection because a single record failed.
type Engine struct {
	store store.DocumentStore
	now   func() time.Time
}

// NewEngine creates a migration engine backed by the given document store.
func NewEngine(st store.DocumentStore) *Engine {
	return &Engine{store: st, now: time.Now}
}

// Migrate processes every recognized collection present in the payload and
// returns the aggregate result. onProgress may be nil. Only failures outside
// the per-record guard (an unreadable payload) surface as an error; record
// level failures are tallied into the result instead.
func (e *Engine) Migrate(ctx context.Context, payload *legacy.Payload, onProgress ProgressFunc) (*Result, error) {
	if payload == nil {
		return nil, fmt.Errorf("migration failed: payload is nil")
	}

	start := e.now()
	resolver := &identityResolver{store: e.store}

	type pending struct {
		collection *legacy.Collection
		migrator   collectionMigrator
	}

	// Only collections present in the payload get a progress entry.
	var runs []pending
	if payload.Assistidos != nil {
		runs = append(runs, pending{payload.Assistidos, &assistidoMigrator{store: e.store, resolver: resolver, now: e.now}})
	}
	if payload.Membros != nil {
		runs = append(runs, pending{payload.Membros, &membroMigrator{store: e.store, resolver: resolver, now: e.now}})
	}
	if payload.Eventos != nil {
		runs = append(runs, pending{payload.Eventos, &eventoMigrator{store: e.store, now: e.now}})
	}

	progress := make([]Progress, len(runs))
	for i, run := range runs {
		progress[i] = Progress{
			Collection: run.migrator.Collection(),
			Total:      run.collection.Len(),
			Status:     StatusPending,
		}
	}

	// Collections run strictly sequentially; record N's write completes
	// before record N+1's transform begins.
	for i, run := range runs {
		progress[i].Status = StatusProcessing
		emitProgress(onProgress, progress)

		e.migrateCollection(ctx, run.migrator, run.collection, &progress[i], progress, onProgress)
	}

	result := &Result{
		Success:     true,
		Collections: snapshot(progress),
		Duration:    e.now().Sub(start),
	}
	for _, p := range progress {
		result.TotalRecords += p.Total
		result.MigratedRecords += p.Processed
		result.Errors += p.Errors
	}

	log.Info("Migration finished",
		"total", result.TotalRecords,
		"migrated", result.MigratedRecords,
		"errors", result.Errors,
		"duration", result.Duration)

	return result, nil
}

// migrateCollection runs one collection to completion, accumulating progress.
// A failed record increments the error tally and the loop continues.
func (e *Engine) migrateCollection(
	ctx context.Context,
	migrator collectionMigrator,
	collection *legacy.Collection,
	prog *Progress,
	all []Progress,
	onProgress ProgressFunc,
) {
	created, updated := 0, 0

	for _, entry := range collection.Entries() {
		out, err := migrator.Migrate(ctx, entry.Record)
		prog.Processed++

		if err != nil {
			prog.Errors++
			name := migrator.DisplayName(entry.ID, entry.Record)
			prog.ErrorMessages = append(prog.ErrorMessages,
				fmt.Sprintf("Falha ao migrar %q: %v", name, err))
			log.Warn("Record migration failed",
				"collection", migrator.Collection(), "record", name, "error", err)
		} else {
			switch out {
			case outcomeCreated:
				created++
			case outcomeUpdated:
				updated++
			}
		}

		if prog.Processed%progressInterval == 0 {
			emitProgress(onProgress, all)
		}
	}

	prog.Status = StatusCompleted
	summary := fmt.Sprintf("Novos: %d, Atualizados: %d, Erros: %d", created, updated, prog.Errors)
	prog.ErrorMessages = append([]string{summary}, prog.ErrorMessages...)

	log.Debug("Collection completed",
		"collection", migrator.Collection(),
		"created", created, "updated", updated, "errors", prog.Errors)

	emitProgress(onProgress, all)
}

// emitProgress hands the callback an independent copy so callers can retain
// snapshots across invocations.
func emitProgress(onProgress ProgressFunc, progress []Progress) {
	if onProgress == nil {
		return
	}
	onProgress(snapshot(progress))
}

func snapshot(progress []Progress) []Progress {
	out := make([]Progress, len(progress))
	copy(out, progress)
	for i := range out {
		out[i].ErrorMessages = append([]string(nil), out[i].ErrorMessages...)
	}
	return out
}
