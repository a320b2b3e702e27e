package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"github.com/darksuei/pitci-server/internal/domain/entities"
	domainerrors "github.com/darksuei/pitci-server/internal/domain/errors"
	"github.com/darksuei/pitci-server/internal/domain/repositories"
	"github.com/darksuei/pitci-server/pkg/crypto"
	"github.com/darksuei/pitci-server/pkg/jwt"
	"github.com/darksuei/pitci-server/pkg/logger"
)

// VerificationCodeStore holds short-lived email verification codes
type VerificationCodeStore interface {
	Put(ctx context.Context, email, code string) error
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

// AuthUsecase handles registration, email verification and login
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	authRepo   repositories.AuthRepository
	codeStore  VerificationCodeStore
	gateway    NotificationGateway
	jwtService *jwt.JWTService
	uow        repositories.UnitOfWork
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	authRepo repositories.AuthRepository,
	codeStore VerificationCodeStore,
	gateway NotificationGateway,
	jwtService *jwt.JWTService,
	uow repositories.UnitOfWork,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		authRepo:   authRepo,
		codeStore:  codeStore,
		gateway:    gateway,
		jwtService: jwtService,
		uow:        uow,
	}
}

// Register creates a user with a pending verification record and sends a
// verification code to the given email
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	existing, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainerrors.Conflict("A user with this email already exists")
	}

	hash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	user := &entities.User{
		FullName:                input.FullName,
		Email:                   input.Email,
		Phone:                   null.NewString(input.Phone, input.Phone != ""),
		PasswordHash:            hash,
		Role:                    entities.RoleUser,
		NotificationStatus:      true,
		PitchNotificationStatus: true,
		PostNotificationStatus:  true,
		EventNotificationStatus: true,
	}

	err = u.uow.Do(ctx, func(ctx context.Context) error {
		if err := u.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, domainerrors.ErrAlreadyExists) {
				return domainerrors.Conflict("A user with this email already exists")
			}
			return err
		}
		auth := &entities.Auth{
			UserID:             user.ID,
			VerificationStatus: entities.VerificationPending,
		}
		return u.authRepo.Create(ctx, auth)
	})
	if err != nil {
		return nil, err
	}

	code, err := crypto.GenerateVerificationCode()
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}
	if err := u.codeStore.Put(ctx, user.Email, code); err != nil {
		return nil, err
	}

	// Delivery failure is not the caller's problem; the code can be re-sent.
	if err := u.gateway.Send(ctx, NotificationEmailVerification, user.ID, map[string]string{
		"email": user.Email,
		"code":  code,
	}); err != nil {
		logger.Warn(ctx, "failed to send verification code", zap.Error(err))
	}

	return user, nil
}

// VerifyCode checks the submitted code against the stored one and marks the
// account verified
func (u *AuthUsecase) VerifyCode(ctx context.Context, input *entities.VerifyCodeInput) error {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("User not found")
		}
		return err
	}

	stored, err := u.codeStore.Get(ctx, user.Email)
	if err != nil {
		return domainerrors.CodeMismatch("Verification code is invalid or has expired")
	}
	if stored != input.Code {
		return domainerrors.CodeMismatch("Verification code is invalid or has expired")
	}

	auth, err := u.authRepo.GetByUserID(ctx, user.ID)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := u.authRepo.UpdateStatus(ctx, auth.ID, entities.VerificationVerified, &now); err != nil {
		return err
	}

	if err := u.codeStore.Delete(ctx, user.Email); err != nil {
		logger.Warn(ctx, "failed to delete verification code", zap.Error(err))
	}
	return nil
}

// Login authenticates the user and issues a signed token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.InvalidCredentials("Invalid email or password")
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.InvalidCredentials("Invalid email or password")
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	return &entities.AuthResponse{Token: token, User: user}, nil
}
