package entities

// Store is a physical storefront location ("loja") with its own couriers,
// managers and delivery perimeter. Created and edited only by admins.
//
// Storage model (DynamoDB):
//   - PK: id_loja
type Store struct {
	IDLoja           string `json:"id_loja"`
	LojaNome         string `json:"loja_nome"`
	LojaEndereco     string `json:"loja_endereco,omitempty"`
	LojaTelefone     string `json:"loja_telefone,omitempty"`
	CNPJ             string `json:"cnpj,omitempty"`
	PerimetroEntrega string `json:"perimetro_entrega,omitempty"`
	LojaLogo         string `json:"loja_logo,omitempty"`
	Ativa            bool   `json:"ativa"`
}

// StorePatch is a partial store edit. Nil fields keep the stored value, so
// an edit without a new logo or ativa flag never clears either.
type StorePatch struct {
	LojaNome         *string
	LojaEndereco     *string
	LojaTelefone     *string
	CNPJ             *string
	PerimetroEntrega *string
	Ativa            *bool
}
