package ports

import (
	"context"
	"time"
)

// StatsCounts holds the dashboard entity totals.
type StatsCounts struct {
	Users      int64 `json:"users"`
	Posts      int64 `json:"posts"`
	Comments   int64 `json:"comments"`
	Categories int64 `json:"categories"`
}

// RecentUser is the trimmed user view in the dashboard snapshot.
type RecentUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// RecentPost is the trimmed post view in the dashboard snapshot.
type RecentPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Published bool      `json:"published"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// StatsSnapshot is a best-effort dashboard view. The six reads behind it are
// independent; no cross-read consistency is guaranteed.
type StatsSnapshot struct {
	Counts      StatsCounts  `json:"counts"`
	RecentUsers []RecentUser `json:"recent_users"`
	RecentPosts []RecentPost `json:"recent_posts"`
}

// StatsCache caches dashboard snapshots for a short TTL.
type StatsCache interface {
	Get(ctx context.Context) (*StatsSnapshot, error)
	Set(ctx context.Context, snapshot *StatsSnapshot) error
}

// StatsService assembles the admin dashboard snapshot.
type StatsService interface {
	Snapshot(ctx context.Context) (*StatsSnapshot, error)
}
