package models

import "github.com/shopspring/decimal"

// InvestmentType is one of the supported investment kinds.
type InvestmentType string

const (
	InvestmentRendaFixa        InvestmentType = "Renda Fixa"
	InvestmentRendaVariavel    InvestmentType = "Renda Variável"
	InvestmentTesouroDireto    InvestmentType = "Tesouro Direto"
	InvestmentCDB              InvestmentType = "CDB"
	InvestmentLCI              InvestmentType = "LCI"
	InvestmentLCA              InvestmentType = "LCA"
	InvestmentFundoImobiliario InvestmentType = "Fundo Imobiliário"
	InvestmentAcoes            InvestmentType = "Ações"
	InvestmentOutros           InvestmentType = "Outros"
)

// InvestmentTypes lists the known kinds in display order.
var InvestmentTypes = []InvestmentType{
	InvestmentRendaFixa,
	InvestmentRendaVariavel,
	InvestmentTesouroDireto,
	InvestmentCDB,
	InvestmentLCI,
	InvestmentLCA,
	InvestmentFundoImobiliario,
	InvestmentAcoes,
	InvestmentOutros,
}

// Valid reports whether t is a known investment kind.
func (t InvestmentType) Valid() bool {
	for _, known := range InvestmentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Investment is a monthly investment position of a user.
type Investment struct {
	ID          string          `json:"id" db:"id"`
	UserID      string          `json:"user_id" db:"user_id"`
	Month       string          `json:"month" db:"month"` // "Jan", "Feb", ...
	Year        int             `json:"year" db:"year"`
	Value       decimal.Decimal `json:"value" db:"value"`
	Type        InvestmentType  `json:"type" db:"type"`
	Description *string         `json:"description,omitempty" db:"description"`
	CreatedAt   string          `json:"created_at" db:"created_at"`
	UpdatedAt   *string         `json:"updated_at,omitempty" db:"updated_at"`
}

// InvestmentTotal is the summed value of one investment kind.
type InvestmentTotal struct {
	Type  InvestmentType
	Total decimal.Decimal
}

// InvestmentDraft is the raw investment input. An empty ID creates a new position.
type InvestmentDraft struct {
	ID          string `json:"id,omitempty"`
	Month       string `json:"month"`
	Year        int    `json:"year"`
	Value       string `json:"value"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}
