package usecase

//go:generate mockgen -source=auth_srv.go -destination=mocks/auth_srv_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Operator is the authenticated admin behind a request
type Operator struct {
	ID      uuid.UUID
	Role    entity.AdminRole
	Session uuid.UUID
}

// SessionMeta describes the client opening a session
type SessionMeta struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	// Register is open while no admin exists; afterwards actor must be a SUPER_ADMIN
	Register(ctx context.Context, actor *Operator, req *request.RegisterAdminRequest) (*response.AdminResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error)
	Logout(ctx context.Context, sessionToken uuid.UUID) error
	Me(ctx context.Context, adminID uuid.UUID) (*response.AdminResponse, error)

	// Authenticate verifies a bearer token down to an active admin
	Authenticate(ctx context.Context, token string) (*Operator, error)
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, actor *Operator, req *request.RegisterAdminRequest) (*response.AdminResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.Admin.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count admins: %w", err)
	}

	role := entity.RoleAdmin
	if req.Role != "" {
		role = entity.AdminRole(req.Role)
	}

	if existing == 0 {
		// the first account must be able to create the others
		role = entity.RoleSuperAdmin
	} else {
		if actor == nil {
			return nil, fmt.Errorf("%w: operator authentication required", ErrUnauthorized)
		}
		if actor.Role != entity.RoleSuperAdmin {
			return nil, fmt.Errorf("%w: only SUPER_ADMIN can register operators", ErrForbidden)
		}
	}

	email := normalizeEmail(req.Email)
	found, err := s.repo.Admin.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check admin email: %w", err)
	}
	if found != nil {
		return nil, fmt.Errorf("%w: email %s already registered", ErrConflict, email)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &entity.Admin{
		Base:         entity.NewBase(time.Now()),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Permissions:  []string{},
		IsActive:     true,
	}

	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email %s already registered", ErrConflict, email)
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}

	s.log.Info("Admin registered",
		zap.String("admin_id", admin.ID.String()),
		zap.String("role", string(admin.Role)),
		zap.Bool("bootstrap", existing == 0),
	)

	resp := response.AdminToResponse(admin)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, meta SessionMeta) (*response.AuthResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	admin, err := s.repo.Admin.FindByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if admin == nil {
		s.log.Warn("Login for unknown email")
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	now := time.Now()
	if admin.IsLocked(now) {
		return nil, fmt.Errorf("%w: account locked, try again later", ErrLocked)
	}
	if !admin.IsActive {
		return nil, fmt.Errorf("%w: account disabled", ErrForbidden)
	}

	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		admin.RegisterFailedLogin(now, s.config.Auth.MaxLoginAttempts, time.Duration(s.config.Auth.LockMinutes)*time.Minute)
		if err := s.repo.Admin.UpdateLoginState(ctx, admin); err != nil {
			s.log.Error("Failed to record failed login", zap.Error(err), zap.String("admin_id", admin.ID.String()))
		}
		s.log.Warn("Invalid password",
			zap.String("admin_id", admin.ID.String()),
			zap.Int("attempts", admin.LoginAttempts),
			zap.Bool("locked", admin.IsLocked(now)),
		)
		return nil, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	admin.RegisterSuccessfulLogin(now)
	if err := s.repo.Admin.UpdateLoginState(ctx, admin); err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}

	session, err := s.createSession(ctx, admin.ID, meta, now)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("admin_id", admin.ID.String()))
		return nil, err
	}

	token, err := utils.IssueOperatorToken(s.config.JWT.Secret, admin.ID, session.Token, string(admin.Role), admin.Email, session.ExpiresAt)
	if err != nil {
		return nil, err
	}

	s.log.Info("Admin logged in", zap.String("admin_id", admin.ID.String()))

	return &response.AuthResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Admin:     response.AdminToResponse(admin),
	}, nil
}

func (s *authService) Logout(ctx context.Context, sessionToken uuid.UUID) error {
	if err := s.repo.Session.Revoke(ctx, sessionToken); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: session already closed", ErrUnauthorized)
		}
		return fmt.Errorf("revoke session: %w", err)
	}

	return nil
}

func (s *authService) Me(ctx context.Context, adminID uuid.UUID) (*response.AdminResponse, error) {
	admin, err := s.repo.Admin.FindByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if admin == nil {
		return nil, fmt.Errorf("%w: admin not found", ErrNotFound)
	}

	resp := response.AdminToResponse(admin)
	return &resp, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*Operator, error) {
	claims, err := utils.ParseOperatorToken(s.config.JWT.Secret, token)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	adminID, sessionToken, err := claims.OperatorIDs()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	session, err := s.repo.Session.FindValidSession(ctx, sessionToken)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil || session.AdminID != adminID {
		return nil, fmt.Errorf("%w: session expired or revoked", ErrUnauthorized)
	}

	admin, err := s.repo.Admin.FindByID(ctx, adminID)
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if admin == nil || !admin.IsActive {
		return nil, fmt.Errorf("%w: invalid token", ErrUnauthorized)
	}

	return &Operator{ID: admin.ID, Role: admin.Role, Session: sessionToken}, nil
}

func (s *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.repo.Session.CleanExpiredSessions(ctx)
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.log.Info("Expired sessions removed", zap.Int64("count", removed))
	}
	return removed, nil
}

func (s *authService) createSession(ctx context.Context, adminID uuid.UUID, meta SessionMeta, now time.Time) (*entity.Session, error) {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: now},
		AdminID:    adminID,
		Token:      utils.GenerateSessionToken(),
		UserAgent:  optional(meta.UserAgent),
		IPAddress:  optional(meta.IPAddress),
		ExpiresAt:  now.Add(time.Duration(s.config.JWT.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return session, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
