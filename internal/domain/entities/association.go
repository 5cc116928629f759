package entities

// StoreRole is the function a user holds at one store.

type StoreRole string

const (
	StoreRoleGerente    StoreRole = "gerente"
	StoreRoleEntregador StoreRole = "entregador"
)

// AssociationStatus marks whether a store association is in force.

type AssociationStatus string

const (
	AssociationStatusAtivo   AssociationStatus = "ativo"
	AssociationStatusInativo AssociationStatus = "inativo"
)

// StoreAssociation links a user to a store with a role. A user may hold
// several associations (multiple stores, or one role per store).
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - GSI1 (uid_usuario-index): uid_usuario
//   - GSI2 (id_loja-index): id_loja
type StoreAssociation struct {
	ID               string            `json:"id"`
	UIDUsuario       string            `json:"uid_usuario"`
	IDLoja           string            `json:"id_loja"`
	Funcao           StoreRole         `json:"funcao"`
	StatusVinculacao AssociationStatus `json:"status_vinculacao"`
}

// Role is the single application-wide role derived from the profile's admin
// flag and the user's active associations. Every protected view consults
// exactly this value.

type Role string

const (
	RoleVisitante  Role = "visitante"
	RoleEntregador Role = "entregador"
	RoleGerente    Role = "gerente"
	RoleAdmin      Role = "admin"
)

// Level maps a role to its numeric access level. A route requiring level N
// renders only for sessions resolving to level >= N.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleGerente:
		return 2
	case RoleEntregador:
		return 1
	default:
		return 0
	}
}

// ResolveRole applies the precedence table: the profile admin flag overrides
// everything; otherwise gerente beats entregador; no active association
// leaves the user a visitante.
func ResolveRole(isAdmin bool, associations []StoreAssociation) Role {
	if isAdmin {
		return RoleAdmin
	}
	role := RoleVisitante
	for _, a := range associations {
		if a.StatusVinculacao != AssociationStatusAtivo {
			continue
		}
		switch a.Funcao {
		case StoreRoleGerente:
			return RoleGerente
		case StoreRoleEntregador:
			role = RoleEntregador
		}
	}
	return role
}
