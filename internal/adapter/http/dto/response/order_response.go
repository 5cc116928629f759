package response

import (
	"time"

	"entregaswoo/internal/domain/entities"
)

type AcceptanceResponse struct {
	UID      string `json:"uid"`
	Nome     string `json:"nome"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
}

type OrderResponse struct {
	ID        string `json:"id"`
	IDWoo     int64  `json:"id_woo,omitempty"`
	IDLoja    string `json:"id_loja"`
	IDLojaWoo string `json:"id_loja_woo,omitempty"`

	LojaNome     string `json:"loja_nome,omitempty"`
	LojaTelefone string `json:"loja_telefone,omitempty"`
	LojaEndereco string `json:"loja_endereco,omitempty"`

	NomeCliente      string  `json:"nome_cliente"`
	TelefoneCliente  string  `json:"telefone_cliente,omitempty"`
	EnderecoEntrega  string  `json:"endereco_entrega,omitempty"`
	Produto          string  `json:"produto,omitempty"`
	FormaPagamento   string  `json:"forma_pagamento,omitempty"`
	Total            float64 `json:"total"`
	ObservacaoPedido string  `json:"observacao_pedido,omitempty"`

	StatusTransporte string              `json:"status_transporte"`
	UltimoStatus     string              `json:"ultimo_status,omitempty"`
	AceitoPor        *AcceptanceResponse `json:"aceito_por,omitempty"`

	StatusPagamento   bool       `json:"status_pagamento"`
	DataPagamento     *time.Time `json:"data_pagamento,omitempty"`
	FretePago         float64    `json:"frete_pago"`
	FreteJaProcessado bool       `json:"frete_ja_processado"`

	Data time.Time `json:"data"`
}

func FromOrder(o entities.Order) OrderResponse {
	resp := OrderResponse{
		ID:                o.ID,
		IDWoo:             o.IDWoo,
		IDLoja:            o.IDLoja,
		IDLojaWoo:         o.IDLojaWoo,
		LojaNome:          o.LojaNome,
		LojaTelefone:      o.LojaTelefone,
		LojaEndereco:      o.LojaEndereco,
		NomeCliente:       o.NomeCliente,
		TelefoneCliente:   o.TelefoneCliente,
		EnderecoEntrega:   o.EnderecoEntrega,
		Produto:           o.Produto,
		FormaPagamento:    o.FormaPagamento,
		Total:             o.Total,
		ObservacaoPedido:  o.ObservacaoPedido,
		StatusTransporte:  string(o.StatusTransporte),
		UltimoStatus:      string(o.UltimoStatus),
		StatusPagamento:   o.StatusPagamento,
		DataPagamento:     o.DataPagamento,
		FretePago:         o.FretePago,
		FreteJaProcessado: o.FreteJaProcessado,
		Data:              o.Data,
	}
	if o.AceitoPor != nil {
		resp.AceitoPor = &AcceptanceResponse{
			UID:      o.AceitoPor.UID,
			Nome:     o.AceitoPor.Nome,
			Email:    o.AceitoPor.Email,
			Telefone: o.AceitoPor.Telefone,
		}
	}
	return resp
}

// OrderListResponse is the paginated envelope of the order listings.
type OrderListResponse struct {
	Orders  []OrderResponse `json:"orders"`
	Page    int             `json:"page"`
	HasMore bool            `json:"has_more"`
}

func FromOrders(orders []entities.Order, page int, hasMore bool) OrderListResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return OrderListResponse{Orders: out, Page: page, HasMore: hasMore}
}

// WebhookAckResponse acknowledges a processed storefront delivery.
type WebhookAckResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}
