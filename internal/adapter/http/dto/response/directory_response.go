package response

import (
	"entregaswoo/internal/domain/entities"
)

type StoreResponse struct {
	IDLoja           string `json:"id_loja"`
	LojaNome         string `json:"loja_nome"`
	LojaEndereco     string `json:"loja_endereco,omitempty"`
	LojaTelefone     string `json:"loja_telefone,omitempty"`
	CNPJ             string `json:"cnpj,omitempty"`
	PerimetroEntrega string `json:"perimetro_entrega,omitempty"`
	LojaLogo         string `json:"loja_logo,omitempty"`
	Ativa            bool   `json:"ativa"`
}

func FromStore(s entities.Store) StoreResponse {
	return StoreResponse{
		IDLoja:           s.IDLoja,
		LojaNome:         s.LojaNome,
		LojaEndereco:     s.LojaEndereco,
		LojaTelefone:     s.LojaTelefone,
		CNPJ:             s.CNPJ,
		PerimetroEntrega: s.PerimetroEntrega,
		LojaLogo:         s.LojaLogo,
		Ativa:            s.Ativa,
	}
}

func FromStores(stores []entities.Store) []StoreResponse {
	out := make([]StoreResponse, 0, len(stores))
	for _, s := range stores {
		out = append(out, FromStore(s))
	}
	return out
}

type UserResponse struct {
	UID            string `json:"uid"`
	NomeCompleto   string `json:"nome_completo"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone,omitempty"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	IsAdmin        bool   `json:"is_admin"`
	TelegramChatID string `json:"telegram_chat_id,omitempty"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		UID:            u.UID,
		NomeCompleto:   u.NomeCompleto,
		Email:          u.Email,
		Telefone:       u.Telefone,
		AvatarURL:      u.AvatarURL,
		IsAdmin:        u.IsAdmin,
		TelegramChatID: u.TelegramChatID,
	}
}

func FromUsers(users []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

type AssociationResponse struct {
	ID               string `json:"id"`
	UIDUsuario       string `json:"uid_usuario"`
	IDLoja           string `json:"id_loja"`
	Funcao           string `json:"funcao"`
	StatusVinculacao string `json:"status_vinculacao"`
}

func FromAssociation(a entities.StoreAssociation) AssociationResponse {
	return AssociationResponse{
		ID:               a.ID,
		UIDUsuario:       a.UIDUsuario,
		IDLoja:           a.IDLoja,
		Funcao:           string(a.Funcao),
		StatusVinculacao: string(a.StatusVinculacao),
	}
}
