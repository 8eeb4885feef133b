package subscription

import "time"

// Subscription links a follower to an author. Unique per pair; the
// self-follow prohibition is enforced before insert.
type Subscription struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	UserID    int64     `json:"user_id" gorm:"not null;index;uniqueIndex:idx_subscription_user_author"`
	AuthorID  int64     `json:"author_id" gorm:"not null;index;uniqueIndex:idx_subscription_user_author"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Subscription) TableName() string { return "subscriptions" }
