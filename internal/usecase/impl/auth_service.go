// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "printshop/internal/delivery/context"
	"printshop/internal/domain/entity"
	domainerrors "printshop/internal/domain/errors"
	"printshop/internal/domain/repository"
	"printshop/internal/domain/service"
	"printshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultGoogleUserName = "User"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	tokens    service.TokenService
	identity  service.IdentityVerifier
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	IdentityVerifier service.IdentityVerifier
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		tokens:    params.TokenService,
		identity:  params.IdentityVerifier,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a customer account with a password.
func (srv *authService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.AuthOutput, error) {
	if err := requireFields(input.Name, input.Email, input.Password); err != nil {
		return nil, err
	}

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	user, err := srv.newPasswordUser(input.Name, input.Email, input.Password, entity.RoleUser)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, mapCreateUserError(err)
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return srv.issue(user)
}

// RegisterShopOwner creates an OWNER account. An earlier owner registration that never
// completed shop setup is discarded so the email can be reused.
func (srv *authService) RegisterShopOwner(ctx context.Context, input *usecase.RegisterShopOwnerInput) (*usecase.AuthOutput, error) {
	if err := requireFields(input.Name, input.Email, input.Password); err != nil {
		return nil, err
	}

	owner, err := srv.newPasswordUser(input.Name, input.Email, input.Password, entity.RoleOwner)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		shopRepo := repoFactory.NewShopRepository()

		existing, err := userRepo.FindByEmail(ctx, input.Email)
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
		case err != nil:
			return errors.Wrap(err, "failed to look up email")
		default:
			if err := srv.discardIncompleteOwner(ctx, userRepo, shopRepo, existing); err != nil {
				return err
			}
		}

		if err := userRepo.Create(ctx, owner); err != nil {
			return mapCreateUserError(err)
		}

		return nil
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Shop owner registered", slog.String("user_id", owner.ID.String()))

	return srv.issue(owner)
}

func (srv *authService) discardIncompleteOwner(
	ctx context.Context,
	userRepo repository.UserRepository,
	shopRepo repository.ShopRepository,
	existing *entity.User,
) error {
	if existing.Role != entity.RoleOwner {
		return domainerrors.ErrUserAlreadyExists
	}

	_, err := shopRepo.FindByOwner(ctx, existing.ID)
	if err == nil {
		return domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrShopNotFound) {
		return errors.Wrap(err, "failed to look up owner shop")
	}

	srv.log(ctx).Warn("Removing owner without shop before re-registration", slog.String("user_id", existing.ID.String()))

	return errors.Wrap(userRepo.Delete(ctx, existing.ID), "failed to delete incomplete owner")
}

// Login authenticates a password account of any role.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Password check failed", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(user)
}

// GoogleLogin verifies a Google ID token and signs in, creating a customer on first use.
func (srv *authService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.AuthOutput, error) {
	if strings.TrimSpace(input.Credential) == "" {
		return nil, domainerrors.ErrOAuthTokenInvalid.WithDetails("No credential provided")
	}

	identity, err := srv.identity.VerifyIDToken(ctx, input.Credential)
	if err != nil {
		srv.log(ctx).Warn("Google token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid
	}
	if identity.Email == "" {
		return nil, domainerrors.ErrOAuthEmailMissing
	}

	user, err := srv.userRepo.FindByEmail(ctx, identity.Email)
	if err == nil {
		return srv.issue(user)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	name := identity.Name
	if name == "" {
		name = defaultGoogleUserName
	}
	user = &entity.User{
		ID:       uuid.Must(uuid.NewV7()),
		Name:     name,
		Email:    identity.Email,
		Role:     entity.RoleUser,
		GoogleID: identity.Subject,
	}
	if err := validateNewUser(user); err != nil {
		return nil, err
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, mapCreateUserError(err)
	}

	srv.log(ctx).Info("User registered through Google", slog.String("user_id", user.ID.String()))

	return srv.issue(user)
}

// Authenticate resolves a session token to its user.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.tokens.ValidateToken(token)
	if err != nil {
		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrNotAuthorized.WithDetails("user not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user")
	}

	return user, nil
}

func (srv *authService) newPasswordUser(name, email, password string, role entity.Role) (*entity.User, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		ID:           uuid.Must(uuid.NewV7()),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
	}
	if err := validateNewUser(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (srv *authService) issue(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

func requireFields(values ...string) error {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("Please fill all fields")
		}
	}

	return nil
}

// validateNewUser enforces the account invariants before a user is stored.
func validateNewUser(user *entity.User) error {
	if err := user.Validate(); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}

func mapCreateUserError(err error) error {
	if errors.Is(err, repository.ErrUserEmailTaken) {
		return domainerrors.ErrUserAlreadyExists
	}

	return domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
}
