package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/Fabri-com/esteticas/internal/domain/auth"
	"github.com/Fabri-com/esteticas/internal/domain/user"
	reqdto "github.com/Fabri-com/esteticas/internal/handler/dto/request"
	"github.com/Fabri-com/esteticas/internal/pkg/errs"
	"github.com/Fabri-com/esteticas/internal/usecase/queries"
	"github.com/Fabri-com/esteticas/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = auth.ErrInvalidCredentials
	ErrUserInactive         = auth.ErrAccountDisabled
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	UserID      uuid.UUID
	AccessToken string
	ExpiresIn   time.Duration
}

// TokenIssuer signs access tokens for authenticated staff.
type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, role user.Role) (string, error)
	TokenDuration() time.Duration
}

type AuthCommands interface {
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow       shared.UnitOfWork
	readStore queries.UserReadStore
	tokens    TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:       uow,
		readStore: readStore,
		tokens:    tokens,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	userReadModel, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch so callers cannot probe for accounts
		return nil, ErrInvalidCredentials
	}

	if err := credentials.Verify(hashedPassword, userReadModel.IsActive); err != nil {
		return nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.tokens.GenerateToken(userReadModel.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), userReadModel.ID)
	})
	if err != nil {
		// login already succeeded; only the bookkeeping failed
		slog.WarnContext(ctx, "failed to update last login", "user_id", userReadModel.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:      userReadModel.ID,
		AccessToken: accessToken,
		ExpiresIn:   a.tokens.TokenDuration(),
	}, nil
}
