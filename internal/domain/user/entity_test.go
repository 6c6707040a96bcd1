package user_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gasgestao/gestao-plus/internal/domain/user"
)

func TestNewUser(t *testing.T) {
	u, err := user.NewUser("João Silva", "joao@gasgestao.com.br", user.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, u.IsActive)
	assert.True(t, u.IsAdmin())

	_, err = user.NewUser("", "joao@gasgestao.com.br", user.RoleSeller)
	assert.ErrorIs(t, err, user.ErrEmptyName)

	_, err = user.NewUser("João Silva", "", user.RoleSeller)
	assert.ErrorIs(t, err, user.ErrEmptyEmail)
}

func TestPasswordHashing(t *testing.T) {
	u, err := user.NewUser("João Silva", "joao@gasgestao.com.br", user.RoleSeller)
	require.NoError(t, err)

	require.NoError(t, u.SetPassword("senha123"))
	assert.NotEqual(t, "senha123", u.PasswordHash)

	assert.True(t, u.CheckPassword("senha123"))
	assert.False(t, u.CheckPassword("senha-errada"))
	assert.False(t, u.IsAdmin())
}
