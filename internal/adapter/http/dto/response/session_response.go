package response

import (
	"entregaswoo/internal/usecase"
)

// SessionResponse mirrors what the frontend session context consumes: the
// resolved role plus its numeric level, and the active store associations
// driving store-scoped views.
type SessionResponse struct {
	Authenticated bool                  `json:"authenticated"`
	UID           string                `json:"uid,omitempty"`
	Role          string                `json:"role"`
	Nivel         int                   `json:"nivel"`
	Profile       *UserResponse         `json:"profile,omitempty"`
	Lojas         []AssociationResponse `json:"lojas,omitempty"`
	Note          string                `json:"note,omitempty"`
}

func FromSession(s usecase.Session) SessionResponse {
	resp := SessionResponse{
		Authenticated: s.Authenticated,
		UID:           s.UID,
		Role:          string(s.Role),
		Nivel:         s.Role.Level(),
		Note:          s.Note,
	}
	if s.Profile != nil {
		p := FromUser(*s.Profile)
		resp.Profile = &p
	}
	for _, a := range s.Lojas {
		resp.Lojas = append(resp.Lojas, FromAssociation(a))
	}
	return resp
}
