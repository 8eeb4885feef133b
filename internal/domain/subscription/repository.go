package subscription

import (
	"context"

	"gorm.io/gorm"

	"foodgram/internal/pkg/dberr"
)

type Repository interface {
	Create(ctx context.Context, userID, authorID int64) error
	Delete(ctx context.Context, userID, authorID int64) error
	// ListAuthorIDs returns the authors the user follows, oldest first, with
	// the total for pagination.
	ListAuthorIDs(ctx context.Context, userID int64, limit, offset int) ([]int64, int64, error)
	SetForAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts the join row; the unique constraint turns a concurrent
// duplicate into ErrAlreadySubscribed.
func (r *repository) Create(ctx context.Context, userID, authorID int64) error {
	err := r.db.WithContext(ctx).Create(&Subscription{UserID: userID, AuthorID: authorID}).Error
	if dberr.IsUniqueViolation(err) {
		return ErrAlreadySubscribed
	}
	return err
}

func (r *repository) Delete(ctx context.Context, userID, authorID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&Subscription{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotSubscribed
	}
	return nil
}

func (r *repository) ListAuthorIDs(ctx context.Context, userID int64, limit, offset int) ([]int64, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Subscription{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	q := r.db.WithContext(ctx).Model(&Subscription{}).
		Where("user_id = ?", userID).
		Order("id ASC")
	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	var ids []int64
	if err := q.Pluck("author_id", &ids).Error; err != nil {
		return nil, 0, err
	}
	return ids, total, nil
}

// SetForAuthors reports which of authorIDs the user follows.
func (r *repository) SetForAuthors(ctx context.Context, userID int64, authorIDs []int64) (map[int64]bool, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&Subscription{}).
		Where("user_id = ? AND author_id IN ?", userID, authorIDs).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, err
	}

	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}
