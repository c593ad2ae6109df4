package usecase

import (
	"sync"

	"auxilio_propg/internal/domain/entities"
)

// TransitionPair identifies one edge of the status state machine.
type TransitionPair struct {
	From entities.RequestStatus
	To   entities.RequestStatus
}

// validTransitions is the status state machine, independent of role. The
// Aguardando documentação self-loop re-requests documents and is allowed
// any number of times.
var validTransitions = map[TransitionPair]bool{
	{entities.StatusRecebido, entities.StatusAceito}:                                 true,
	{entities.StatusRecebido, entities.StatusCancelado}:                              true,
	{entities.StatusAceito, entities.StatusAguardandoDocumentacao}:                   true,
	{entities.StatusAceito, entities.StatusProntoPagamento}:                          true,
	{entities.StatusAceito, entities.StatusCancelado}:                                true,
	{entities.StatusAguardandoDocumentacao, entities.StatusProntoPagamento}:          true,
	{entities.StatusAguardandoDocumentacao, entities.StatusAguardandoDocumentacao}:   true,
	{entities.StatusAguardandoDocumentacao, entities.StatusCancelado}:                true,
	{entities.StatusProntoPagamento, entities.StatusPago}:                            true,
	{entities.StatusProntoPagamento, entities.StatusCancelado}:                       true,
}

// TransitionAllowed reports whether the state machine has the (from, to) edge
// at all, regardless of who is asking.
func TransitionAllowed(from, to entities.RequestStatus) bool {
	return validTransitions[TransitionPair{From: from, To: to}]
}

// PermissionTable maps each role to the transitions it may invoke. The
// default table is static; Reload lets an administrator (role A5) adjust the
// responsible-role mapping at runtime without a restart.
type PermissionTable struct {
	mu      sync.RWMutex
	allowed map[entities.Role]map[TransitionPair]bool
}

func NewPermissionTable() *PermissionTable {
	t := &PermissionTable{}
	t.Reload(DefaultRolePermissions())
	return t
}

// DefaultRolePermissions builds the static role mapping: A3 and A5 hold
// every transition, A4 may only confirm payment, A1 and A2 hold none.
func DefaultRolePermissions() map[entities.Role][]TransitionPair {
	all := make([]TransitionPair, 0, len(validTransitions))
	for pair := range validTransitions {
		all = append(all, pair)
	}
	return map[entities.Role][]TransitionPair{
		entities.RoleA3: all,
		entities.RoleA5: all,
		entities.RoleA4: {
			{From: entities.StatusProntoPagamento, To: entities.StatusPago},
		},
	}
}

// Reload replaces the whole table atomically.
func (t *PermissionTable) Reload(perms map[entities.Role][]TransitionPair) {
	allowed := make(map[entities.Role]map[TransitionPair]bool, len(perms))
	for role, pairs := range perms {
		set := make(map[TransitionPair]bool, len(pairs))
		for _, p := range pairs {
			set[p] = true
		}
		allowed[role] = set
	}

	t.mu.Lock()
	t.allowed = allowed
	t.mu.Unlock()
}

// IsAllowed reports whether role may invoke the (from, to) transition.
func (t *PermissionTable) IsAllowed(role entities.Role, from, to entities.RequestStatus) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.allowed[role][TransitionPair{From: from, To: to}]
}

// CanViewDetails reports whether role may open request details. A1 is the
// read-only role without detail access; unknown roles get nothing.
func (t *PermissionTable) CanViewDetails(role entities.Role) bool {
	return role.Known() && role != entities.RoleA1
}

// CanAdministerConfig reports whether role may edit persisted configuration
// (recipient lists, templates, the permission table itself).
func (t *PermissionTable) CanAdministerConfig(role entities.Role) bool {
	return role == entities.RoleA5
}
