package user

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyName  = errors.New("nome não pode ser vazio")
	ErrEmptyEmail = errors.New("email não pode ser vazio")
)

// Role representa o papel/função do usuário
type Role string

const (
	RoleAdmin     Role = "admin"     // Administrador do sistema
	RoleSeller    Role = "seller"    // Vendedor
	RoleDelivery  Role = "delivery"  // Entregador
	RoleFinancial Role = "financial" // Financeiro
)

// User representa um usuário do sistema. O papel controla apenas a navegação
// visível na interface; nenhuma autorização é imposta pelo Store.
type User struct {
	ID           string     `json:"id"` // Atribuído pelo Store na criação
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"passwordHash,omitempty"` // Hash bcrypt, nunca a senha em claro
	Role         Role       `json:"role"`
	Avatar       string     `json:"avatar,omitempty"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	Permissions  []string   `json:"permissions"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
}

// NewUser cria um novo usuário ativo, ainda sem ID
func NewUser(name, email string, role Role) (*User, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if email == "" {
		return nil, ErrEmptyEmail
	}

	return &User{
		Name:     name,
		Email:    email,
		Role:     role,
		IsActive: true,
	}, nil
}

// SetPassword configura a senha do usuário com hash
func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// IsAdmin verifica se o usuário é um administrador
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
