package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/ariefstwn/hotelstock-api/internal/application/dto"
	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/domain/repository"
	"github.com/ariefstwn/hotelstock-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación. No hay registro público: los
// perfiles de la propiedad se siembran al arrancar.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + perfil.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Name, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserProfile(user),
	}, nil
}

// Profiles lista los perfiles de la propiedad (selector de usuario del cliente).
func (uc *AuthUseCase) Profiles() ([]dto.UserProfile, error) {
	users, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserProfile, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserProfile(u))
	}
	return out, nil
}

func toUserProfile(u *entity.User) *dto.UserProfile {
	if u == nil {
		return nil
	}
	return &dto.UserProfile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
