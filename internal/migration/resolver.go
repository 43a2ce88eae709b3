package migration

import (
	"context"

	"github.com/JohnPitter/church-management-sub013/internal/domain"
	"github.com/JohnPitter/church-management-sub013/internal/store"
)

// identityResolver locates existing target documents by natural key, so a
// re-run merges into the documents a previous run created instead of
// duplicating them. One store query at most per record.
type identityResolver struct {
	store store.DocumentStore
}

// resolveAssistido looks up an existing assistido by CPF. An empty CPF
// short-circuits to "none found" without querying.
func (r *identityResolver) resolveAssistido(ctx context.Context, cpf string) (string, bool, error) {
	if cpf == "" {
		return "", false, nil
	}
	return r.store.FindOneByField(ctx, domain.CollectionAssistidos, "cpf", cpf)
}

// resolveMembro looks up an existing membro by e-mail. The match is exact:
// case-sensitive and untrimmed, matching the legacy import rules.
func (r *identityResolver) resolveMembro(ctx context.Context, email string) (string, bool, error) {
	if email == "" {
		return "", false, nil
	}
	return r.store.FindOneByField(ctx, domain.CollectionMembros, "email", email)
}
