package service

import (
	"encoding/json"
	"errors"

	"blogapi/api/v1/response"
	"blogapi/dao"
	"blogapi/internal/errcode"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// Site config keys. Each one owns an independently stored JSON blob.
const (
	KeySiteBasic   = "site_basic"
	KeySiteSeo     = "site_seo"
	KeyAnalytics   = "analytics" // legacy key name, kept for old data
	KeySiteFooter  = "site_footer"
	KeyAuthor      = "author"
	KeySocialLinks = "social_links"
	KeySkills      = "skills"
)

type ConfigService struct {
	configDAO *dao.SiteConfigDAO
}

func NewConfigService(configDAO *dao.SiteConfigDAO) *ConfigService {
	return &ConfigService{configDAO: configDAO}
}

// GetAllConfigs merges every section into one aggregate. A missing or
// corrupt section degrades to its empty shape instead of failing the
// siblings.
func (s *ConfigService) GetAllConfigs() (*response.SiteConfigAggregate, error) {
	return &response.SiteConfigAggregate{
		Basic:       getSection[response.SiteBasicConfig](s, KeySiteBasic),
		Seo:         getSection[response.SiteSeoConfig](s, KeySiteSeo),
		Analytics:   getSection[response.SiteAnalyticsConfig](s, KeyAnalytics),
		Footer:      getSection[response.SiteFooterConfig](s, KeySiteFooter),
		Author:      getSection[response.AuthorConfig](s, KeyAuthor),
		SocialLinks: getSection[[]response.SocialLinkConfig](s, KeySocialLinks),
		Skills:      getSection[[]response.SkillConfig](s, KeySkills),
	}, nil
}

// SaveAllConfigs writes only the sections present in the aggregate;
// omitted (nil) sections are left untouched. Partial update, not replace.
func (s *ConfigService) SaveAllConfigs(aggregate *response.SiteConfigAggregate) error {
	if aggregate.Basic != nil {
		if err := saveSection(s, KeySiteBasic, aggregate.Basic); err != nil {
			return err
		}
	}
	if aggregate.Seo != nil {
		if err := saveSection(s, KeySiteSeo, aggregate.Seo); err != nil {
			return err
		}
	}
	if aggregate.Analytics != nil {
		if err := saveSection(s, KeyAnalytics, aggregate.Analytics); err != nil {
			return err
		}
	}
	if aggregate.Footer != nil {
		if err := saveSection(s, KeySiteFooter, aggregate.Footer); err != nil {
			return err
		}
	}
	if aggregate.Author != nil {
		if err := saveSection(s, KeyAuthor, aggregate.Author); err != nil {
			return err
		}
	}
	if aggregate.SocialLinks != nil {
		if err := saveSection(s, KeySocialLinks, aggregate.SocialLinks); err != nil {
			return err
		}
	}
	if aggregate.Skills != nil {
		if err := saveSection(s, KeySkills, aggregate.Skills); err != nil {
			return err
		}
	}
	return nil
}

// GetByKey is the raw single-key view, bypassing the shaped aggregate.
func (s *ConfigService) GetByKey(key string) (*response.ConfigEntry, error) {
	row, err := s.configDAO.GetByKey(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errcode.New(errcode.ConfigNotFound)
		}
		return nil, err
	}
	return &response.ConfigEntry{
		Key:         row.ConfigKey,
		Value:       row.ConfigValue,
		Description: row.Description,
	}, nil
}

func (s *ConfigService) GetAll() ([]response.ConfigEntry, error) {
	rows, err := s.configDAO.GetAll()
	if err != nil {
		return nil, err
	}
	entries := make([]response.ConfigEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, response.ConfigEntry{
			Key:         row.ConfigKey,
			Value:       row.ConfigValue,
			Description: row.Description,
		})
	}
	return entries, nil
}

func (s *ConfigService) Save(key, value string) (*response.ConfigEntry, error) {
	row, err := s.configDAO.Save(key, value)
	if err != nil {
		return nil, err
	}
	return &response.ConfigEntry{
		Key:         row.ConfigKey,
		Value:       row.ConfigValue,
		Description: row.Description,
	}, nil
}

func getSection[T any](s *ConfigService, key string) *T {
	var value T
	row, err := s.configDAO.GetByKey(key)
	if err != nil || row.ConfigValue == "" {
		return &value
	}
	if err := json.Unmarshal([]byte(row.ConfigValue), &value); err != nil {
		log.Warn("failed to parse config section, using defaults", "key", key, "err", err)
		var zero T
		return &zero
	}
	return &value
}

func saveSection[T any](s *ConfigService, key string, value *T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.configDAO.Save(key, string(data))
	return err
}
