package migration

import (
	"strings"
	"time"

	"github.com/JohnPitter/church-management-sub013/internal/domain"
	"github.com/JohnPitter/church-management-sub013/internal/legacy"
)

// The transformers build complete target entities from loosely typed legacy
// records. They never fail: every missing or malformed field degrades to a
// default value. Guarding against store errors is the migrator's job.

// TransformAssistido builds an Assistido from a legacy beneficiary record.
func TransformAssistido(rec legacy.Record, now time.Time) *domain.Assistido {
	contato := rec.Child("contatoEmergencia")

	a := &domain.Assistido{
		Nome:           rec.String("nomeCompleto"),
		CPF:            rec.RawString("cpf"),
		RG:             rec.String("rg"),
		DataNascimento: legacyDate(rec.String("dataNascimento")),
		Telefone:       rec.String("telefone"),
		Endereco:       transformEndereco(rec.Child("endereco")),
		ContatoEmergencia: domain.ContatoEmergencia{
			Nome:       contato.String("nome"),
			Telefone:   contato.String("telefone"),
			Parentesco: contato.String("parentesco"),
		},
		Escolaridade:  MapEscolaridade(rec.Int("escolaridade")),
		EstadoCivil:   MapEstadoCivil(rec.Int("estadoCivil")),
		RendaFamiliar: rec.Float("rendaFamiliar"),
		Dependentes:   rec.Int("dependentes"),

		// Not recoverable from the legacy export.
		TipoMoradia:    domain.TipoMoradiaDesconhecido,
		NumeroComodos:  0,
		PossuiCadUnico: false,

		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: domain.MigrationActor,
	}

	if a.Nome == "" {
		a.Nome = rec.String("nome")
	}
	return a
}

// TransformMembro builds a Membro from a legacy member record.
func TransformMembro(rec legacy.Record, now time.Time) *domain.Membro {
	m := &domain.Membro{
		Nome:           rec.String("nomeCompleto"),
		Email:          rec.RawString("email"),
		Telefone:       rec.String("telefone"),
		DataNascimento: legacyDate(rec.String("dataNascimento")),
		DataBatismo:    legacyDate(rec.String("dataBatismo")),
		EstadoCivil:    MapEstadoCivilMembro(rec.Int("estadoCivil")),
		Endereco:       transformEndereco(rec.Child("endereco")),
		Ministerio:     rec.String("ministerio"),
		Ativo:          true,

		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: domain.MigrationActor,
	}

	if m.Nome == "" {
		m.Nome = rec.String("nome")
	}
	return m
}

// TransformEvento builds an Evento from a legacy event record. Legacy status
// and category data is ignored: every migrated event is scheduled under the
// default category.
func TransformEvento(rec legacy.Record, now time.Time) *domain.Evento {
	e := &domain.Evento{
		Titulo:    rec.String("titulo"),
		Descricao: rec.String("descricao"),
		Data:      legacyDate(rec.String("dataEvento")),
		Local:     eventoLocal(rec.Child("endereco")),
		Categoria: domain.EventoCategoriaGeral,
		Status:    domain.EventoStatusAgendado,

		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: domain.MigrationActor,
	}

	if e.Titulo == "" {
		e.Titulo = rec.String("nome")
	}
	if e.Local == "" {
		e.Local = rec.String("local")
	}
	return e
}

// transformEndereco flattens the legacy nested address, defaulting every
// sub-field independently.
func transformEndereco(rec legacy.Record) domain.Endereco {
	return domain.Endereco{
		Rua:    rec.String("rua"),
		Numero: rec.String("numero"),
		Bairro: rec.String("bairro"),
		Cidade: rec.String("cidade"),
		Estado: rec.String("estado"),
		CEP:    rec.String("cep"),
	}
}

// eventoLocal joins the non-empty legacy address parts into a human-readable
// location string.
func eventoLocal(rec legacy.Record) string {
	parts := []string{
		rec.String("rua"),
		rec.String("numero"),
		rec.String("bairro"),
		rec.String("cidade"),
	}

	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// legacyDate converts a legacy date string into the optional date
// representation used by the entities.
func legacyDate(s string) *time.Time {
	t, ok := ParseLegacyDate(s)
	if !ok {
		return nil
	}
	return &t
}
