package response

// Shaped site-config sections. Each one is stored as an independent JSON
// blob; SiteConfigAggregate merges them for the frontends. Pointer fields
// make the save side a partial update: nil sections are left untouched.

type SiteBasicConfig struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Logo           string  `json:"logo"`
	Favicon        string  `json:"favicon"`
	SiteURL        string  `json:"site_url"`
	BackgroundType string  `json:"background_type"` // "video" or "image"
	BackgroundURL  string  `json:"background_url"`
	OverlayOpacity float64 `json:"overlay_opacity"`
}

type SiteSeoConfig struct {
	Keywords    []string `json:"keywords"`
	OgImage     string   `json:"og_image"`
	TwitterCard string   `json:"twitter_card"`
	TwitterSite string   `json:"twitter_site"`
}

type SiteAnalyticsConfig struct {
	GoogleAnalyticsID string `json:"google_analytics_id"`
	BaiduTongjiID     string `json:"baidu_tongji_id"`
}

type SiteFooterConfig struct {
	Copyright    string `json:"copyright"`
	ICPNumber    string `json:"icp_number"`
	ICPURL       string `json:"icp_url"`
	PoliceNumber string `json:"police_number"`
	PoliceURL    string `json:"police_url"`
}

type AuthorConfig struct {
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Email    string `json:"email"`
}

type SocialLinkConfig struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

type SkillConfig struct {
	Name     string `json:"name"`
	Category string `json:"category"` // tech, life, hobby
}

// SiteConfigAggregate is the merged view of every section. On reads all
// sections are populated (empty defaults when missing or corrupt); on
// saves only the non-nil sections are written.
type SiteConfigAggregate struct {
	Basic       *SiteBasicConfig     `json:"basic"`
	Seo         *SiteSeoConfig       `json:"seo"`
	Analytics   *SiteAnalyticsConfig `json:"analytics"`
	Footer      *SiteFooterConfig    `json:"footer"`
	Author      *AuthorConfig        `json:"author"`
	SocialLinks *[]SocialLinkConfig  `json:"social_links"`
	Skills      *[]SkillConfig       `json:"skills"`
}

// ConfigEntry is the raw key/value view used by the ad hoc config API.
type ConfigEntry struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}
