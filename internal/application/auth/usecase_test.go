package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jpcarreon/ventastock/internal/application/auth"
	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/pkg/config"
)

func nuevoAuthUC(t *testing.T) *auth.UseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	return auth.NewUseCase(
		config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "ventastock"},
		config.AdminConfig{User: "admin", PasswordHash: string(hash)},
	)
}

func TestLogin_CredencialesValidasEmitenToken(t *testing.T) {
	uc := nuevoAuthUC(t)

	token, err := uc.Login("admin", "secreta123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := uc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", user)
}

func TestLogin_UsuarioNoDistingueMayusculas(t *testing.T) {
	uc := nuevoAuthUC(t)

	token, err := uc.Login("ADMIN", "secreta123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc := nuevoAuthUC(t)

	casos := []struct {
		nombre   string
		usuario  string
		password string
	}{
		{"password incorrecta", "admin", "otra"},
		{"usuario desconocido", "otro", "secreta123"},
		{"usuario vacío", "", "secreta123"},
		{"password vacía", "admin", ""},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			_, err := uc.Login(c.usuario, c.password)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrUnauthorized), "todos los fallos devuelven el mismo error")
		})
	}
}

func TestLogin_SinHashConfigurado(t *testing.T) {
	uc := auth.NewUseCase(
		config.JWTConfig{Secret: "test-secret", Expiration: 60, Issuer: "ventastock"},
		config.AdminConfig{User: "admin"},
	)

	_, err := uc.Login("admin", "cualquiera")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestVerify_TokenAdulterado(t *testing.T) {
	uc := nuevoAuthUC(t)

	token, err := uc.Login("admin", "secreta123")
	require.NoError(t, err)

	_, err = uc.Verify(token + "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))

	_, err = uc.Verify("")
	require.Error(t, err)
}
