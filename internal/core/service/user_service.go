package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/backoffice/user-management-api/internal/core/domain"
	"github.com/backoffice/user-management-api/internal/core/ports"
)

// UserService implements the user lifecycle: create, update, delete, list,
// and single-user reads. Authorization happens upstream in middleware; by the
// time a service method runs the caller is already allowed to perform it.
type UserService struct {
	repo     ports.UserRepository
	catalog  ports.RoleCatalog
	validate *validator.Validate
	logger   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, catalog ports.RoleCatalog, logger zerolog.Logger) *UserService {
	return &UserService{
		repo:     repo,
		catalog:  catalog,
		validate: validator.New(),
		logger:   logger,
	}
}

// List returns every user with its role. No pagination: the user set is the
// back-office staff, small by construction.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}
	return users, nil
}

// Get returns the user with its role, or (nil, nil) when the id is unknown.
func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil
		}
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to find user")
		return nil, err
	}
	return user, nil
}

// Create validates the input, hashes the password, and inserts the user with
// its role embedded. The role is resolved before the insert and travels
// inside the same document write, so a user can never be persisted without a
// role.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) error {
	verr := validateInput(s.validate, in)

	role := s.resolveRole(in.Role, verr)
	if err := s.checkEmailAvailable(ctx, in.Email, "", verr); err != nil {
		return err
	}
	if verr.HasErrors() {
		return verr
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         *role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// The unique index can still fire when a concurrent create wins the
		// race after our availability pre-check.
		if errors.Is(err, domain.ErrEmailTaken) {
			verr.Add("email", msgEmailTaken)
			return verr
		}
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to create user")
		return err
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", role.Name).Msg("user created")
	return nil
}

// Update applies name, last name, and email, rehashes the password only when
// one is supplied, and replaces the role with the requested one. A user holds
// exactly one role at all times; assignment never accumulates.
func (s *UserService) Update(ctx context.Context, id string, in ports.UpdateUserInput) error {
	verr := validateInput(s.validate, in)

	role := s.resolveRole(in.Role, verr)
	if err := s.checkEmailAvailable(ctx, in.Email, id, verr); err != nil {
		return err
	}
	if verr.HasErrors() {
		return verr
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error().Err(err).Str("user_id", id).Msg("failed to load user for update")
		}
		return err
	}

	user.Name = in.Name
	user.LastName = in.LastName
	user.Email = in.Email
	user.Role = *role
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			verr.Add("email", msgEmailTaken)
			return verr
		}
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to update user")
		return err
	}

	s.logger.Info().Str("user_id", id).Str("role", role.Name).Msg("user updated")
	return nil
}

// Delete removes the user permanently. There is no soft delete.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error().Err(err).Str("user_id", id).Msg("failed to load user for delete")
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("failed to delete user")
		return err
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// resolveRole looks the requested role up in the catalog, recording a
// validation failure when it does not exist. Skipped when the role field
// already failed the required rule.
func (s *UserService) resolveRole(name string, verr *domain.ValidationError) *domain.Role {
	if name == "" {
		return nil
	}
	role, err := s.catalog.FindByName(name)
	if err != nil {
		verr.Add("role", msgRoleUnknown)
		return nil
	}
	return role
}

// checkEmailAvailable records a validation failure when another user already
// owns the email. excludeID skips the record being updated so a user can keep
// its own address. The unique index on email remains the hard guarantee; this
// pre-check only produces the friendlier field-level message.
func (s *UserService) checkEmailAvailable(ctx context.Context, email, excludeID string, verr *domain.ValidationError) error {
	if email == "" {
		return nil
	}
	if _, taken := verr.Fields["email"]; taken {
		return nil
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil
		}
		s.logger.Error().Err(err).Msg("failed to check email availability")
		return err
	}
	if existing.ID != excludeID {
		verr.Add("email", msgEmailTaken)
	}
	return nil
}
