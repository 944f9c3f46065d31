package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/domain"
	"github.com/somesh123-ctrl/Job-Portal-Backend/internal/api/model"
)

const userColumns = `
	user_id, user_type, name, email, password_hash,
	highest_qualification, interested_role, resume, profile_picture,
	skillset, company_name, company_type, created_at
`

// uniqueViolation is the PostgreSQL error code for a unique constraint hit.
const uniqueViolation = "23505"

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (
			user_id, user_type, name, email, password_hash,
			highest_qualification, interested_role, resume, profile_picture,
			skillset, company_name, company_type, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9,
			$10, $11, $12, $13
		)
	`

	_, err := s.db.ExecContext(
		ctx,
		query,
		user.UserID,
		user.UserType,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.HighestQualification,
		user.InterestedRole,
		user.Resume,
		user.ProfilePicture,
		user.Skillset,
		user.CompanyName,
		user.CompanyType,
		user.CreatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUserByEmail looks up either account variant in one query; the email
// uniqueness constraint spans both.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	err := s.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &user, nil
}

func (s *Storage) GetUserByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	err := s.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// GetSeekerByID resolves a user ID only when it belongs to the seeker
// variant.
func (s *Storage) GetSeekerByID(ctx context.Context, userID string) (*model.User, error) {
	var user model.User
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1 AND user_type = $2`

	err := s.db.GetContext(ctx, &user, query, userID, domain.UserTypeJobSeeker)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get seeker: %w", err)
	}

	return &user, nil
}

// ProfilePatch carries the optional seeker profile fields. Nil means leave
// the stored value alone.
type ProfilePatch struct {
	HighestQualification *string
	InterestedRole       *string
	Skillset             []string
	Resume               *string
	ProfilePicture       *string
}

// UpdateSeekerProfile applies the patch and returns the updated account.
// Only the seeker variant carries these fields.
func (s *Storage) UpdateSeekerProfile(ctx context.Context, userID string, patch ProfilePatch) (*model.User, error) {
	query := `UPDATE users SET user_id = user_id`
	args := []interface{}{}
	argIdx := 1

	if patch.HighestQualification != nil {
		query += fmt.Sprintf(", highest_qualification = $%d", argIdx)
		args = append(args, *patch.HighestQualification)
		argIdx++
	}

	if patch.InterestedRole != nil {
		query += fmt.Sprintf(", interested_role = $%d", argIdx)
		args = append(args, *patch.InterestedRole)
		argIdx++
	}

	if patch.Skillset != nil {
		query += fmt.Sprintf(", skillset = $%d", argIdx)
		args = append(args, pq.StringArray(patch.Skillset))
		argIdx++
	}

	if patch.Resume != nil {
		query += fmt.Sprintf(", resume = $%d", argIdx)
		args = append(args, *patch.Resume)
		argIdx++
	}

	if patch.ProfilePicture != nil {
		query += fmt.Sprintf(", profile_picture = $%d", argIdx)
		args = append(args, *patch.ProfilePicture)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE user_id = $%d AND user_type = $%d RETURNING ", argIdx, argIdx+1)
	query += userColumns
	args = append(args, userID, domain.UserTypeJobSeeker)

	var user model.User
	err := s.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return &user, nil
}
