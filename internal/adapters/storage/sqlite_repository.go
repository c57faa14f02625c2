package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stephan-zhuchen/fastgit/internal/config"
	"github.com/stephan-zhuchen/fastgit/internal/domain"
	"github.com/stephan-zhuchen/fastgit/internal/logging"
	"github.com/stephan-zhuchen/fastgit/internal/ports"
)

// SQLiteRepository implements ports.StateRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.StateRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (creating if needed) the state database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:      newGormLogger(),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets several fastgit processes share the file
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&RecentModel{}, &AccessTokenModel{}, &AppStateModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	logging.Logger.Debug("State database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// ListRecents implements RecentsStore.ListRecents
func (r *SQLiteRepository) ListRecents(ctx context.Context) ([]domain.RepositoryIdentity, error) {
	var models []RecentModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("position ASC").Find(&models).Error
	}, defaultRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list recents: %w", err)
	}

	recents := make([]domain.RepositoryIdentity, 0, len(models))
	for _, m := range models {
		recents = append(recents, recentModelToDomain(m))
	}
	return recents, nil
}

// SaveRecents implements RecentsStore.SaveRecents. The stored list is replaced.
func (r *SQLiteRepository) SaveRecents(ctx context.Context, recents []domain.RepositoryIdentity) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&RecentModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear recents: %w", err)
			}
			for i, recent := range recents {
				model := domainToRecentModel(recent, i)
				if err := tx.Create(&model).Error; err != nil {
					return fmt.Errorf("failed to save recent %s: %w", recent.Path, err)
				}
			}
			return nil
		})
	}, defaultRetries)
}

// GetLastActive implements LastActiveStore.GetLastActive
func (r *SQLiteRepository) GetLastActive(ctx context.Context) (string, error) {
	var model AppStateModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("name = ?", lastActiveKey).First(&model).Error
	}, defaultRetries)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get last active repository: %w", err)
	}
	return model.Value, nil
}

// SetLastActive implements LastActiveStore.SetLastActive
func (r *SQLiteRepository) SetLastActive(ctx context.Context, path string) error {
	return withRetry(func() error {
		model := AppStateModel{Name: lastActiveKey, Value: path}
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&model).Error
	}, defaultRetries)
}

// GetToken implements TokenStore.GetToken
func (r *SQLiteRepository) GetToken(ctx context.Context, path string) ([]byte, error) {
	var model AccessTokenModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("path = ?", path).First(&model).Error
	}, defaultRetries)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrTokenNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get access token: %w", err)
	}
	return model.Token, nil
}

// PutToken implements TokenStore.PutToken, replacing any previous token for path
func (r *SQLiteRepository) PutToken(ctx context.Context, path string, token []byte) error {
	return withRetry(func() error {
		model := AccessTokenModel{Path: path, Token: token}
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "path"}},
			DoUpdates: clause.AssignmentColumns([]string{"token", "updated_at"}),
		}).Create(&model).Error
	}, defaultRetries)
}

// DeleteToken implements TokenStore.DeleteToken
func (r *SQLiteRepository) DeleteToken(ctx context.Context, path string) error {
	var affected int64
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Where("path = ?", path).Delete(&AccessTokenModel{})
		affected = result.RowsAffected
		return result.Error
	}, defaultRetries)
	if err != nil {
		return fmt.Errorf("failed to delete access token: %w", err)
	}
	if affected == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// ListTokens implements TokenStore.ListTokens
func (r *SQLiteRepository) ListTokens(ctx context.Context) ([]domain.AccessGrant, error) {
	var models []AccessTokenModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("path ASC").Find(&models).Error
	}, defaultRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list access tokens: %w", err)
	}

	grants := make([]domain.AccessGrant, 0, len(models))
	for _, m := range models {
		grants = append(grants, tokenModelToDomain(m))
	}
	return grants, nil
}
