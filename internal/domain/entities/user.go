package entities

// User is an authenticated identity ("usuarios" profile row). The row is
// created by the sign-up flow, outside this service; we read it, let the
// owner or an admin edit it, and delete it together with the identity
// provider account.
//
// Storage model (DynamoDB):
//   - PK: uid (identity-provider subject)
type User struct {
	UID            string `json:"uid"`
	NomeCompleto   string `json:"nome_completo"`
	Email          string `json:"email"`
	Telefone       string `json:"telefone,omitempty"`
	AvatarURL      string `json:"avatar_url,omitempty"`
	IsAdmin        bool   `json:"is_admin"`
	TelegramChatID string `json:"telegram_chat_id,omitempty"`
}
