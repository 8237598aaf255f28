package response

// RecentPost is the trimmed post shape on the dashboard, dates formatted
// as yyyy-MM-dd.
type RecentPost struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Status      int    `json:"status"`
	ViewCount   int64  `json:"view_count"`
	PublishedAt string `json:"published_at,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// DashboardStats aggregates the admin landing-page counters.
type DashboardStats struct {
	PostCount       int64        `json:"post_count"`
	CategoryCount   int64        `json:"category_count"`
	TagCount        int64        `json:"tag_count"`
	FriendLinkCount int64        `json:"friend_link_count"`
	TotalViewCount  int64        `json:"total_view_count"`
	RecentPosts     []RecentPost `json:"recent_posts"`
}
