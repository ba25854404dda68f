package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jpcarreon/ventastock/internal/domain"
	"github.com/jpcarreon/ventastock/pkg/config"
	"github.com/jpcarreon/ventastock/pkg/jwt"
)

// UseCase autenticación del administrador único. Solo existe cuando hay
// JWT_SECRET configurado; sin secreto la API corre abierta.
type UseCase struct {
	jwtCfg   config.JWTConfig
	adminCfg config.AdminConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(jwtCfg config.JWTConfig, adminCfg config.AdminConfig) *UseCase {
	return &UseCase{jwtCfg: jwtCfg, adminCfg: adminCfg}
}

// Login verifica las credenciales contra el hash bcrypt configurado y emite
// un token. Usuario desconocido y contraseña incorrecta devuelven el mismo
// error, sin distinguirlos.
func (uc *UseCase) Login(usuario, password string) (string, error) {
	usuario = strings.TrimSpace(usuario)
	if usuario == "" || password == "" {
		return "", domain.ErrUnauthorized
	}
	if !strings.EqualFold(usuario, uc.adminCfg.User) || uc.adminCfg.PasswordHash == "" {
		return "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.adminCfg.PasswordHash), []byte(password)); err != nil {
		return "", domain.ErrUnauthorized
	}
	return jwt.Generate(uc.jwtCfg.Secret, usuario, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
}

// Verify valida un token emitido por Login y devuelve el usuario.
func (uc *UseCase) Verify(token string) (string, error) {
	user, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		return "", domain.ErrUnauthorized
	}
	return user, nil
}
