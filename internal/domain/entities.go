package domain

import "time"

// MigrationActor is the createdBy sentinel stamped on every document written
// by the legacy migration, so migrated data is distinguishable from data
// entered through the application.
const MigrationActor = "migracao-legado"

// Store collection names for the current schema.
const (
	CollectionAssistidos = "assistidos"
	CollectionMembros    = "membros"
	CollectionEventos    = "eventos"
)

// Endereco is the flat address value object shared by assistidos and membros.
type Endereco struct {
	Rua    string `bson:"rua" json:"rua"`
	Numero string `bson:"numero" json:"numero"`
	Bairro string `bson:"bairro" json:"bairro"`
	Cidade string `bson:"cidade" json:"cidade"`
	Estado string `bson:"estado" json:"estado"`
	CEP    string `bson:"cep" json:"cep"`
}

// ContatoEmergencia is the emergency contact of an assistido.
type ContatoEmergencia struct {
	Nome       string `bson:"nome" json:"nome"`
	Telefone   string `bson:"telefone" json:"telefone"`
	Parentesco string `bson:"parentesco" json:"parentesco"`
}

// Assistido is a person receiving social assistance, tracked with
// socioeconomic detail.
type Assistido struct {
	Nome              string            `bson:"nome" json:"nome"`
	CPF               string            `bson:"cpf" json:"cpf"`
	RG                string            `bson:"rg" json:"rg"`
	DataNascimento    *time.Time        `bson:"dataNascimento,omitempty" json:"dataNascimento,omitempty"`
	Telefone          string            `bson:"telefone" json:"telefone"`
	Endereco          Endereco          `bson:"endereco" json:"endereco"`
	ContatoEmergencia ContatoEmergencia `bson:"contatoEmergencia" json:"contatoEmergencia"`
	Escolaridade      Escolaridade      `bson:"escolaridade" json:"escolaridade"`
	EstadoCivil       EstadoCivil       `bson:"estadoCivil" json:"estadoCivil"`
	RendaFamiliar     float64           `bson:"rendaFamiliar" json:"rendaFamiliar"`
	Dependentes       int               `bson:"dependentes" json:"dependentes"`

	// Fields below have no legacy equivalent and carry fixed defaults.
	TipoMoradia    TipoMoradia `bson:"tipoMoradia" json:"tipoMoradia"`
	NumeroComodos  int         `bson:"numeroComodos" json:"numeroComodos"`
	PossuiCadUnico bool        `bson:"possuiCadUnico" json:"possuiCadUnico"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
}

// Membro is a church member.
type Membro struct {
	Nome           string            `bson:"nome" json:"nome"`
	Email          string            `bson:"email" json:"email"`
	Telefone       string            `bson:"telefone" json:"telefone"`
	DataNascimento *time.Time        `bson:"dataNascimento,omitempty" json:"dataNascimento,omitempty"`
	DataBatismo    *time.Time        `bson:"dataBatismo,omitempty" json:"dataBatismo,omitempty"`
	EstadoCivil    EstadoCivilMembro `bson:"estadoCivil" json:"estadoCivil"`
	Endereco       Endereco          `bson:"endereco" json:"endereco"`
	Ministerio     string            `bson:"ministerio" json:"ministerio"`
	Ativo          bool              `bson:"ativo" json:"ativo"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
}

// Evento is a church event. Migrated events are always fresh documents with
// the default category and scheduled status.
type Evento struct {
	Titulo    string       `bson:"titulo" json:"titulo"`
	Descricao string       `bson:"descricao" json:"descricao"`
	Data      *time.Time   `bson:"data,omitempty" json:"data,omitempty"`
	Local     string       `bson:"local" json:"local"`
	Categoria string       `bson:"categoria" json:"categoria"`
	Status    EventoStatus `bson:"status" json:"status"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
}
