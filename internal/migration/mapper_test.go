package migration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnPitter/church-management-sub013/internal/domain"
)

func TestParseLegacyDate(t *testing.T) {
	date, ok := ParseLegacyDate("15/05/1990")
	require.True(t, ok)
	assert.Equal(t, 1990, date.Year())
	assert.Equal(t, time.May, date.Month())
	assert.Equal(t, 15, date.Day())

	// Single-digit day and month
	date, ok = ParseLegacyDate("3/1/2005")
	require.True(t, ok)
	assert.Equal(t, time.January, date.Month())
	assert.Equal(t, 3, date.Day())
}

func TestParseLegacyDateMalformed(t *testing.T) {
	malformed := []string{
		"",
		"15-05-1990",
		"15/05",
		"15/05/1990/12",
		"abc/def/ghi",
		"2020-01-01",
	}

	for _, input := range malformed {
		_, ok := ParseLegacyDate(input)
		assert.False(t, ok, "expected %q to be rejected", input)
	}
}

func TestMapEscolaridade(t *testing.T) {
	expected := map[int]domain.Escolaridade{
		1: domain.EscolaridadeFundamentalIncompleto,
		2: domain.EscolaridadeFundamentalCompleto,
		3: domain.EscolaridadeFundamentalIncompleto,
		4: domain.EscolaridadeMedioIncompleto,
		5: domain.EscolaridadeMedioCompleto,
		6: domain.EscolaridadeSuperiorIncompleto,
		7: domain.EscolaridadeSuperiorCompleto,
		8: domain.EscolaridadePosGraduacao,
	}

	for code, want := range expected {
		assert.Equal(t, want, MapEscolaridade(code), "code %d", code)
	}

	// Codes 1 and 3 collide deliberately.
	assert.Equal(t, MapEscolaridade(1), MapEscolaridade(3))

	// Unknown codes default to the lowest level.
	assert.Equal(t, domain.EscolaridadeFundamentalIncompleto, MapEscolaridade(0))
	assert.Equal(t, domain.EscolaridadeFundamentalIncompleto, MapEscolaridade(99))
}

func TestMapEstadoCivil(t *testing.T) {
	assert.Equal(t, domain.EstadoCivilSolteiro, MapEstadoCivil(1))
	assert.Equal(t, domain.EstadoCivilCasado, MapEstadoCivil(2))
	assert.Equal(t, domain.EstadoCivilDivorciado, MapEstadoCivil(3))
	assert.Equal(t, domain.EstadoCivilViuvo, MapEstadoCivil(4))
	assert.Equal(t, domain.EstadoCivilUniaoEstavel, MapEstadoCivil(5))

	assert.Equal(t, domain.EstadoCivilSolteiro, MapEstadoCivil(0))
}

func TestMapEstadoCivilMembro(t *testing.T) {
	assert.Equal(t, domain.EstadoCivilMembroSolteiro, MapEstadoCivilMembro(1))
	assert.Equal(t, domain.EstadoCivilMembroCasado, MapEstadoCivilMembro(2))
	assert.Equal(t, domain.EstadoCivilMembroDivorciado, MapEstadoCivilMembro(3))
	assert.Equal(t, domain.EstadoCivilMembroViuvo, MapEstadoCivilMembro(4))

	assert.Equal(t, domain.EstadoCivilMembroSolteiro, MapEstadoCivilMembro(0))
}

// The member enum has no stable-union value, so legacy code 5 maps to
// divorced. This approximation is intentional and must not change without a
// schema review.
func TestMapEstadoCivilMembroUniaoEstavelApproximation(t *testing.T) {
	assert.Equal(t, domain.EstadoCivilMembroDivorciado, MapEstadoCivilMembro(5))
}
