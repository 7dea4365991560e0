package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/volunhub/apperrors"
	"github.com/volunhub/dto"
	"github.com/volunhub/models"
	"github.com/volunhub/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var authLog = logrus.WithField("component", "auth")

// AuthService handles registration, login and token issuing
type AuthService struct {
	db *gorm.DB
}

// NewAuthService creates a new auth service instance
func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates a new user account with the volunteer role
func (s *AuthService) Register(req dto.RegisterRequest) (models.User, error) {
	userRepo := repositories.NewUserRepository(s.db)

	exists, err := userRepo.ExistsByEmail(req.Email)
	if err != nil {
		authLog.WithError(err).Error("error registering user")
		return models.User{}, apperrors.Internal("error registering user")
	}
	if exists {
		return models.User{}, apperrors.Conflict("email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		authLog.WithError(err).Error("error hashing password")
		return models.User{}, apperrors.Internal("error registering user")
	}

	user, err := userRepo.Create(models.User{
		Email:    req.Email,
		Password: string(hashedPassword),
		Name:     req.Name,
		Phone:    req.Phone,
		Role:     models.RoleVolunteer,
	})
	if err != nil {
		authLog.WithError(err).Error("error registering user")
		return models.User{}, apperrors.Internal("error registering user")
	}

	authLog.Infof("user %s registered", user.ID)
	user.Password = ""
	return user, nil
}

// Login authenticates a user and returns a token
func (s *AuthService) Login(req dto.LoginRequest) (dto.AuthResponse, error) {
	userRepo := repositories.NewUserRepository(s.db)

	user, err := userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AuthResponse{}, apperrors.InvalidArgument("invalid email or password")
		}
		authLog.WithError(err).Error("error logging in")
		return dto.AuthResponse{}, apperrors.Internal("error logging in")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return dto.AuthResponse{}, apperrors.InvalidArgument("invalid email or password")
	}

	token, expiresAt, err := GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		authLog.WithError(err).Error("error issuing token")
		return dto.AuthResponse{}, apperrors.Internal("error logging in")
	}

	user.Password = ""
	return dto.AuthResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

// GetUser retrieves a user by ID with the password cleared
func (s *AuthService) GetUser(id string) (models.User, error) {
	user, err := repositories.NewUserRepository(s.db).FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.NotFound("user not found")
		}
		authLog.WithError(err).Error("error retrieving user")
		return models.User{}, apperrors.Internal("error retrieving user")
	}
	user.Password = ""
	return user, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID, email, role string) (string, time.Time, error) {
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
