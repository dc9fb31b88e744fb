// Package service implements the streamd stores: credentials, catalog,
// viewing history, playlists and playback tickets.
package service

import (
	"streamd/database"
	"streamd/database/model"
	"streamd/util/common"
	"streamd/util/crypto"

	"gorm.io/gorm"
)

// UserService is the credential store. Passwords are hashed with
// Argon2id before they touch the database.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register creates a new user. Returns ErrConflict when the username or
// email is already taken, including the case where a concurrent
// registration wins the race and the unique index rejects the insert.
func (s *UserService) Register(username, email, password string) (*model.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&model.User{}).
			Where("username = ? OR email = ?", username, email).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return common.Conflictf("username %q or email %q already registered", username, email)
		}
		return tx.Create(user).Error
	})
	if err != nil {
		if database.IsDuplicate(err) {
			return nil, common.Conflictf("username %q or email %q already registered", username, email)
		}
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the username/password pair. Unknown usernames
// yield ErrNotFound, a failed hash comparison ErrInvalidCredentials.
func (s *UserService) Authenticate(username, password string) (*model.User, error) {
	user := &model.User{}
	err := s.db.Where("username = ?", username).First(user).Error
	if database.IsNotFound(err) {
		return nil, common.NotFoundf("user %q", username)
	} else if err != nil {
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, common.InvalidCredentialsf("wrong password for %q", username)
	}
	return user, nil
}

func (s *UserService) Get(id int) (*model.User, error) {
	user := &model.User{}
	err := s.db.First(user, id).Error
	if database.IsNotFound(err) {
		return nil, common.NotFoundf("user %d", id)
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Count() (int64, error) {
	var count int64
	err := s.db.Model(&model.User{}).Count(&count).Error
	return count, err
}
