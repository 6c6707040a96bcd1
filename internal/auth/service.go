package auth

import (
	"errors"
	"time"

	"github.com/gasgestao/gestao-plus/internal/domain/user"
	"github.com/gasgestao/gestao-plus/internal/store"
	"github.com/gasgestao/gestao-plus/pkg/jwt"
	"github.com/gasgestao/gestao-plus/pkg/logger"
)

var (
	// ErrInvalidCredentials é retornado quando email ou senha não conferem
	ErrInvalidCredentials = errors.New("email ou senha inválidos")
	// ErrUserInactive é retornado quando o usuário está desativado
	ErrUserInactive = errors.New("usuário inativo")
)

// sessionDuration é a validade do token de sessão
const sessionDuration = 24 * time.Hour

// Service autentica usuários contra a coleção local do Store. O papel do
// usuário controla apenas a navegação exibida; nenhuma autorização é imposta
// pelo Store ou por este serviço.
type Service struct {
	store *store.Store
	log   logger.Logger
}

// NewService cria uma nova instância de Service
func NewService(s *store.Store, log logger.Logger) *Service {
	return &Service{store: s, log: log}
}

// Login verifica as credenciais e, em caso de sucesso, carimba o último
// acesso e devolve o usuário com um token de sessão
func (s *Service) Login(email, password string) (*user.User, string, error) {
	var found *user.User
	for _, u := range s.store.Users() {
		if u.Email == email {
			match := u
			found = &match
			break
		}
	}
	if found == nil {
		s.log.Warn("usuário não encontrado", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if !found.CheckPassword(password) {
		s.log.Warn("senha incorreta", "email", email)
		return nil, "", ErrInvalidCredentials
	}

	if !found.IsActive {
		return nil, "", ErrUserInactive
	}

	now := time.Now()
	s.store.UpdateUser(found.ID, store.UserPatch{LastLogin: &now})
	found.LastLogin = &now

	token, err := jwt.GenerateToken(found.ID, string(found.Role), sessionDuration)
	if err != nil {
		return nil, "", err
	}

	return found, token, nil
}

// ValidateSession valida um token de sessão e devolve o usuário associado
func (s *Service) ValidateSession(token string) (*user.User, error) {
	claims, err := jwt.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	for _, u := range s.store.Users() {
		if u.ID == claims.UserID {
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}
