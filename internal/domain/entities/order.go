package entities

import "time"

// TransportStatus represents the delivery lifecycle of an order.
//
// Domain notes:
//   - Orders arrive from the storefront webhook as "aguardando".
//   - A courier's accept is the only optimistically-locked transition.
//   - "revertido" re-opens an order: it is listed together with
//     "aguardando" in pending views and can be accepted again.

type TransportStatus string

const (
	TransportStatusAguardando TransportStatus = "aguardando"
	TransportStatusAceito     TransportStatus = "aceito"
	TransportStatusEntregue   TransportStatus = "entregue"
	TransportStatusRevertido  TransportStatus = "revertido"
)

// Acceptance carries the courier identity stamped on an order when it is
// accepted. All four fields are set together on aguardando -> aceito and
// cleared together when the order is reverted.
type Acceptance struct {
	UID      string `json:"aceito_por_uid"`
	Nome     string `json:"aceito_por_nome"`
	Email    string `json:"aceito_por_email"`
	Telefone string `json:"aceito_por_telefone"`
}

// Order is one delivery job persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (id_loja-index): id_loja
//   - GSI2 (aceito_por_uid-index): aceito_por_uid
//
// Field names follow the storefront integration contract (Portuguese wire
// names), same convention as the webhook payload that creates the row.
type Order struct {
	ID        string `json:"id"`
	IDWoo     int64  `json:"id_woo"`
	IDLoja    string `json:"id_loja"`
	IDLojaWoo string `json:"id_loja_woo"`

	LojaNome     string `json:"loja_nome"`
	LojaTelefone string `json:"loja_telefone"`
	LojaEndereco string `json:"loja_endereco"`

	NomeCliente      string  `json:"nome_cliente"`
	EmailCliente     string  `json:"email_cliente,omitempty"`
	TelefoneCliente  string  `json:"telefone_cliente,omitempty"`
	EnderecoEntrega  string  `json:"endereco_entrega,omitempty"`
	Produto          string  `json:"produto,omitempty"`
	FormaPagamento   string  `json:"forma_pagamento,omitempty"`
	Total            float64 `json:"total"`
	ObservacaoPedido string  `json:"observacao_pedido,omitempty"`

	StatusTransporte TransportStatus `json:"status_transporte"`
	UltimoStatus     TransportStatus `json:"ultimo_status,omitempty"`
	AceitoPor        *Acceptance     `json:"aceito_por,omitempty"`

	StatusPagamento   bool       `json:"status_pagamento"`
	DataPagamento     *time.Time `json:"data_pagamento,omitempty"`
	FreteOferecido    float64    `json:"frete_oferecido,omitempty"`
	FretePago         float64    `json:"frete_pago,omitempty"`
	FreteJaProcessado bool       `json:"frete_ja_processado"`

	Data time.Time `json:"data"`
}

// FreightLocked reports whether the payout value may no longer be edited:
// once the order was batch-processed or carries a payment date, the
// reconciliation flow treats frete_pago as read-only.
func (o Order) FreightLocked() bool {
	return o.FreteJaProcessado || o.DataPagamento != nil
}

// Pending reports whether the order is available for a courier to accept.
func (o Order) Pending() bool {
	return o.StatusTransporte == TransportStatusAguardando || o.StatusTransporte == TransportStatusRevertido
}
