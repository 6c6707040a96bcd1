package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/gasgestao/gestao-plus/internal/domain/user"
)

// UserPatch descreve uma atualização parcial de usuário; campos nil são
// preservados
type UserPatch struct {
	Name         *string
	Email        *string
	PasswordHash *string
	Role         *user.Role
	Avatar       *string
	IsActive     *bool
	LastLogin    *time.Time
	Permissions  *[]string
	Phone        *string
	Address      *string
}

func (p UserPatch) apply(dst *user.User) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Email != nil {
		dst.Email = *p.Email
	}
	if p.PasswordHash != nil {
		dst.PasswordHash = *p.PasswordHash
	}
	if p.Role != nil {
		dst.Role = *p.Role
	}
	if p.Avatar != nil {
		dst.Avatar = *p.Avatar
	}
	if p.IsActive != nil {
		dst.IsActive = *p.IsActive
	}
	if p.LastLogin != nil {
		dst.LastLogin = p.LastLogin
	}
	if p.Permissions != nil {
		dst.Permissions = *p.Permissions
	}
	if p.Phone != nil {
		dst.Phone = *p.Phone
	}
	if p.Address != nil {
		dst.Address = *p.Address
	}
}

// AddUser atribui um novo ID ao usuário, o adiciona à coleção e persiste
func (s *Store) AddUser(u user.User) user.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u.ID = uuid.New().String()
	s.users = append(s.users, u)
	s.persist(keyUsers, s.users)
	return u
}

// UpdateUser aplica uma atualização parcial ao usuário com o ID informado
func (s *Store) UpdateUser(id string, patch UserPatch) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			patch.apply(&s.users[i])
			s.persist(keyUsers, s.users)
			return ResultApplied
		}
	}
	return ResultNotFound
}

// DeleteUser remove o usuário com o ID informado
func (s *Store) DeleteUser(id string) Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			s.persist(keyUsers, s.users)
			return ResultApplied
		}
	}
	return ResultNotFound
}
