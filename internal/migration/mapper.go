package migration

import (
	"strings"
	"time"

	"github.com/JohnPitter/church-management-sub013/internal/domain"
)

// ParseLegacyDate parses the legacy DD/MM/YYYY date encoding. Anything other
// than exactly three numeric parts yields ok=false; the caller treats that as
// "no date" rather than an error.
func ParseLegacyDate(s string) (time.Time, bool) {
	trimmed := strings.TrimSpace(s)
	if len(strings.Split(trimmed, "/")) != 3 {
		return time.Time{}, false
	}

	t, err := time.ParseInLocation("2/1/2006", trimmed, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MapEscolaridade maps legacy schooling codes 1-8 onto the current 7-value
// education enum. Codes 1 and 3 both meant incomplete primary schooling in
// different versions of the legacy form, so they collide deliberately.
// Unknown codes default to the lowest level.
func MapEscolaridade(code int) domain.Escolaridade {
	switch code {
	case 1, 3:
		return domain.EscolaridadeFundamentalIncompleto
	case 2:
		return domain.EscolaridadeFundamentalCompleto
	case 4:
		return domain.EscolaridadeMedioIncompleto
	case 5:
		return domain.EscolaridadeMedioCompleto
	case 6:
		return domain.EscolaridadeSuperiorIncompleto
	case 7:
		return domain.EscolaridadeSuperiorCompleto
	case 8:
		return domain.EscolaridadePosGraduacao
	default:
		return domain.EscolaridadeFundamentalIncompleto
	}
}

// MapEstadoCivil maps legacy family-status codes 1-5 onto the assistido
// marital-status enum. Unknown codes default to single.
func MapEstadoCivil(code int) domain.EstadoCivil {
	switch code {
	case 1:
		return domain.EstadoCivilSolteiro
	case 2:
		return domain.EstadoCivilCasado
	case 3:
		return domain.EstadoCivilDivorciado
	case 4:
		return domain.EstadoCivilViuvo
	case 5:
		return domain.EstadoCivilUniaoEstavel
	default:
		return domain.EstadoCivilSolteiro
	}
}

// MapEstadoCivilMembro maps the same legacy codes onto the member enum, which
// has no stable-union value. Code 5 maps to divorced because that is the
// closest member status available; this is a known approximation carried over
// from the legacy import rules, not a bug.
func MapEstadoCivilMembro(code int) domain.EstadoCivilMembro {
	switch code {
	case 1:
		return domain.EstadoCivilMembroSolteiro
	case 2:
		return domain.EstadoCivilMembroCasado
	case 3, 5:
		return domain.EstadoCivilMembroDivorciado
	case 4:
		return domain.EstadoCivilMembroViuvo
	default:
		return domain.EstadoCivilMembroSolteiro
	}
}
