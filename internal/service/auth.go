package service

import (
	"context"

	"github.com/focusquest/platform/internal/auth"
	"github.com/focusquest/platform/internal/domain"
	"github.com/focusquest/platform/internal/guard"
	"github.com/focusquest/platform/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles player registration and login.
type AuthService struct {
	pool     *pgxpool.Pool
	users    repository.AuthUserRepository
	states   repository.GameStateRepository
	features repository.FeatureRepository
	outbox   repository.OutboxRepository
	jwtMgr   *auth.JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(
	pool *pgxpool.Pool,
	users repository.AuthUserRepository,
	states repository.GameStateRepository,
	features repository.FeatureRepository,
	outbox repository.OutboxRepository,
	jwtMgr *auth.JWTManager,
) *AuthService {
	return &AuthService{
		pool:     pool,
		users:    users,
		states:   states,
		features: features,
		outbox:   outbox,
		jwtMgr:   jwtMgr,
	}
}

// RegisterInput holds the registration request fields.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult is returned on successful registration or login.
type AuthResult struct {
	Token    string    `json:"token"`
	PlayerID uuid.UUID `json:"player_id"`
	Email    string    `json:"email"`
	Level    int       `json:"level"`
	XP       int       `json:"xp"`
}

// Register creates a new player account within a single transaction:
// credentials, the fresh game state, the inbox feature and the
// player-created outbox event all commit together.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, domain.ErrValidation(err.Error())
	}
	if len(input.Password) < 8 {
		return nil, domain.ErrValidation("password must be at least 8 characters")
	}

	existing, err := s.users.FindByEmail(ctx, s.pool, input.Email)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if existing != nil {
		return nil, domain.ErrConflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.ErrInternal("hash password", err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, domain.ErrInternal("begin tx", err)
	}
	defer tx.Rollback(ctx)

	playerID := uuid.New()

	authUser := &domain.AuthUser{
		ID:           playerID,
		Email:        input.Email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, tx, authUser); err != nil {
		return nil, domain.ErrInternal("create auth user", err)
	}

	state := domain.NewPlayerGameState(playerID)
	if err := s.states.Create(ctx, tx, &state); err != nil {
		return nil, domain.ErrInternal("create game state", err)
	}
	if err := s.features.Add(ctx, tx, playerID, state.Features); err != nil {
		return nil, domain.ErrInternal("seed features", err)
	}
	if err := s.outbox.Insert(ctx, tx, domain.NewPlayerCreatedEvent(playerID, input.Email)); err != nil {
		return nil, domain.ErrInternal("queue outbox event", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.ErrInternal("commit tx", err)
	}

	token, err := s.jwtMgr.GenerateToken(auth.RealmPlayer, playerID, input.Email, "")
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{
		Token:    token,
		PlayerID: playerID,
		Email:    input.Email,
		Level:    state.Level,
		XP:       state.XP,
	}, nil
}

// LoginInput holds the login request fields.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a player and returns a JWT. Failed attempts are
// recorded and repeated failures lock the account for a cooldown window.
func (s *AuthService) Login(ctx context.Context, input LoginInput, ip string) (*AuthResult, error) {
	realm := string(auth.RealmPlayer)
	if err := guard.CheckLocked(ctx, s.pool, input.Email, realm); err != nil {
		return nil, err
	}
	user, err := s.users.FindByEmail(ctx, s.pool, input.Email)
	if err != nil {
		return nil, domain.ErrInternal("find user", err)
	}
	if user == nil {
		guard.RecordAttempt(ctx, s.pool, input.Email, realm, ip, false)
		return nil, domain.ErrUnauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		guard.RecordAttempt(ctx, s.pool, input.Email, realm, ip, false)
		return nil, domain.ErrUnauthorized("invalid credentials")
	}
	guard.RecordAttempt(ctx, s.pool, input.Email, realm, ip, true)

	state, err := s.states.FindByID(ctx, s.pool, user.ID)
	if err != nil {
		return nil, domain.ErrInternal("find game state", err)
	}
	if state == nil {
		return nil, domain.ErrNotFound("game state", user.ID.String())
	}

	token, err := s.jwtMgr.GenerateToken(auth.RealmPlayer, user.ID, user.Email, "")
	if err != nil {
		return nil, domain.ErrInternal("generate token", err)
	}

	return &AuthResult{
		Token:    token,
		PlayerID: user.ID,
		Email:    user.Email,
		Level:    state.Level,
		XP:       state.XP,
	}, nil
}
