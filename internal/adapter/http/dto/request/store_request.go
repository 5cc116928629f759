package request

import (
	"strings"

	"entregaswoo/internal/domain/entities"
)

// StoreRequest is the admin payload for creating or editing a store. It is
// bound from the non-file fields of a multipart form (the logo travels as a
// file part) or from a plain JSON body when no logo is attached.
type StoreRequest struct {
	IDLoja           string `json:"id_loja" form:"id_loja" binding:"required"`
	LojaNome         string `json:"loja_nome" form:"loja_nome" binding:"required"`
	LojaEndereco     string `json:"loja_endereco" form:"loja_endereco"`
	LojaTelefone     string `json:"loja_telefone" form:"loja_telefone"`
	CNPJ             string `json:"cnpj" form:"cnpj"`
	PerimetroEntrega string `json:"perimetro_entrega" form:"perimetro_entrega"`
	Ativa            *bool  `json:"ativa" form:"ativa"`
}

// ToEntity maps the payload onto the domain store. Ativa defaults to true
// when omitted: a newly registered store is immediately eligible for
// webhook orders.
func (r StoreRequest) ToEntity() entities.Store {
	ativa := true
	if r.Ativa != nil {
		ativa = *r.Ativa
	}
	return entities.Store{
		IDLoja:           strings.TrimSpace(r.IDLoja),
		LojaNome:         strings.TrimSpace(r.LojaNome),
		LojaEndereco:     strings.TrimSpace(r.LojaEndereco),
		LojaTelefone:     strings.TrimSpace(r.LojaTelefone),
		CNPJ:             strings.TrimSpace(r.CNPJ),
		PerimetroEntrega: strings.TrimSpace(r.PerimetroEntrega),
		Ativa:            ativa,
	}
}

// StoreUpdateRequest is the edit payload. Every field is optional: the
// store id comes from the path and omitted fields keep the stored value.
type StoreUpdateRequest struct {
	LojaNome         *string `json:"loja_nome" form:"loja_nome"`
	LojaEndereco     *string `json:"loja_endereco" form:"loja_endereco"`
	LojaTelefone     *string `json:"loja_telefone" form:"loja_telefone"`
	CNPJ             *string `json:"cnpj" form:"cnpj"`
	PerimetroEntrega *string `json:"perimetro_entrega" form:"perimetro_entrega"`
	Ativa            *bool   `json:"ativa" form:"ativa"`
}

func (r StoreUpdateRequest) ToPatch() entities.StorePatch {
	return entities.StorePatch{
		LojaNome:         r.LojaNome,
		LojaEndereco:     r.LojaEndereco,
		LojaTelefone:     r.LojaTelefone,
		CNPJ:             r.CNPJ,
		PerimetroEntrega: r.PerimetroEntrega,
		Ativa:            r.Ativa,
	}
}

// AssociateManagerRequest promotes a pending user to gerente of one store.
type AssociateManagerRequest struct {
	UID    string `json:"uid" binding:"required"`
	IDLoja string `json:"id_loja" binding:"required"`
}

// ProfileUpdateRequest is the self-service profile edit payload.
type ProfileUpdateRequest struct {
	NomeCompleto   string `json:"nome_completo"`
	Telefone       string `json:"telefone"`
	TelegramChatID string `json:"telegram_chat_id"`
}
