package sqlite

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	domainErrors "github.com/echocare/echocare/internal/domain/errors"
	"github.com/echocare/echocare/internal/domain/model"
	"github.com/echocare/echocare/internal/domain/repository"
)

// Storage is a file-backed credential store on SQLite.
type Storage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// userRecord is the persisted shape of model.User. A nil token means the
// user has no active session.
type userRecord struct {
	ID           int64   `gorm:"primaryKey"`
	Username     string  `gorm:"uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	Token        *string `gorm:"index"`
	CreatedAt    time.Time
}

func (userRecord) TableName() string { return "users" }

func (r *userRecord) toModel() *model.User {
	return &model.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Token:        r.Token,
		CreatedAt:    r.CreatedAt,
	}
}

// New opens the database file and migrates the schema. Migration is
// idempotent; an already initialized file is left untouched.
func New(path string, logger *slog.Logger) (*Storage, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&userRecord{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return &Storage{db: db, logger: logger}, nil
}

// Close releases the underlying connection pool.
func (s *Storage) Close() {
	if s.db == nil {
		return
	}
	if sqlDB, err := s.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Users returns the user repository backed by this storage.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

type userRepository struct {
	storage *Storage
}

func (r *userRepository) Create(ctx context.Context, username, passwordHash, token string) (*model.User, error) {
	rec := userRecord{
		Username:     username,
		PasswordHash: passwordHash,
		Token:        &token,
		CreatedAt:    time.Now().UTC(),
	}
	if err := r.storage.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return rec.toModel(), nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var rec userRecord
	err := r.storage.db.WithContext(ctx).Where("username = ?", username).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return rec.toModel(), nil
}

func (r *userRepository) GetByToken(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, domainErrors.ErrNotFound
	}
	var rec userRecord
	err := r.storage.db.WithContext(ctx).Where("token = ?", token).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return rec.toModel(), nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	var rec userRecord
	err := r.storage.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return rec.toModel(), nil
}

func (r *userRepository) UpdateToken(ctx context.Context, userID int64, token *string) error {
	res := r.storage.db.WithContext(ctx).
		Model(&userRecord{}).
		Where("id = ?", userID).
		Update("token", token)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
