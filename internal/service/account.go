package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/tastebook/backend/internal/models"
	"github.com/tastebook/backend/internal/types"
)

// AccountService handles profile and password changes for the account
// owner. Every mutation requires the current password to be re-entered.
type AccountService struct {
	db *gorm.DB
}

func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// Get loads the actor's own account.
func (s *AccountService) Get(ctx context.Context, actorID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", actorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes name and email after verifying the current
// password. On a wrong password nothing is persisted.
func (s *AccountService) UpdateProfile(ctx context.Context, actorID uuid.UUID, req *types.UpdateAccountRequest) (*models.User, error) {
	user, err := s.Get(ctx, actorID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return nil, ErrWrongPassword
	}

	if req.Email != user.Email {
		var existing models.User
		if err := s.db.WithContext(ctx).Where("email = ? AND id <> ?", req.Email, actorID).First(&existing).Error; err == nil {
			return nil, ErrEmailTaken
		}
	}

	user.Name = req.Name
	user.Email = req.Email
	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// UpdatePassword replaces the stored hash after verifying the current
// password. The plaintext never leaves this function.
func (s *AccountService) UpdatePassword(ctx context.Context, actorID uuid.UUID, req *types.UpdatePasswordRequest) error {
	user, err := s.Get(ctx, actorID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Model(user).Update("password_hash", string(hashed)).Error
}
