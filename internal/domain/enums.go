package domain

// Escolaridade is the education level of an assistido.
type Escolaridade string

const (
	EscolaridadeFundamentalIncompleto Escolaridade = "fundamental_incompleto"
	EscolaridadeFundamentalCompleto   Escolaridade = "fundamental_completo"
	EscolaridadeMedioIncompleto       Escolaridade = "medio_incompleto"
	EscolaridadeMedioCompleto         Escolaridade = "medio_completo"
	EscolaridadeSuperiorIncompleto    Escolaridade = "superior_incompleto"
	EscolaridadeSuperiorCompleto      Escolaridade = "superior_completo"
	EscolaridadePosGraduacao          Escolaridade = "pos_graduacao"
)

// EstadoCivil is the marital/family status of an assistido.
type EstadoCivil string

const (
	EstadoCivilSolteiro     EstadoCivil = "solteiro"
	EstadoCivilCasado       EstadoCivil = "casado"
	EstadoCivilDivorciado   EstadoCivil = "divorciado"
	EstadoCivilViuvo        EstadoCivil = "viuvo"
	EstadoCivilUniaoEstavel EstadoCivil = "uniao_estavel"
)

// EstadoCivilMembro is the marital status of a church member. The member
// schema predates the assistido one and has no stable-union value.
type EstadoCivilMembro string

const (
	EstadoCivilMembroSolteiro   EstadoCivilMembro = "solteiro"
	EstadoCivilMembroCasado     EstadoCivilMembro = "casado"
	EstadoCivilMembroDivorciado EstadoCivilMembro = "divorciado"
	EstadoCivilMembroViuvo      EstadoCivilMembro = "viuvo"
)

// TipoMoradia is the housing situation of an assistido. The legacy system
// never tracked it, so migrated records carry the default.
type TipoMoradia string

const (
	TipoMoradiaPropria      TipoMoradia = "propria"
	TipoMoradiaAlugada      TipoMoradia = "alugada"
	TipoMoradiaCedida       TipoMoradia = "cedida"
	TipoMoradiaDesconhecido TipoMoradia = "nao_informado"
)

// EventoStatus is the lifecycle status of an event.
type EventoStatus string

const (
	EventoStatusAgendado  EventoStatus = "agendado"
	EventoStatusRealizado EventoStatus = "realizado"
	EventoStatusCancelado EventoStatus = "cancelado"
)

// EventoCategoriaGeral is the category assigned to every migrated event;
// the legacy export has no reliable category data.
const EventoCategoriaGeral = "geral"
