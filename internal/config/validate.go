package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Manifest.Path) == "" {
		return fmt.Errorf("manifest.path is required")
	}

	if err := c.Playlist.validate(); err != nil {
		return fmt.Errorf("playlist: %w", err)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be > 0 (got %v)", c.Session.TTL)
	}
	if c.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be > 0 (got %d)", c.Session.MaxSessions)
	}

	if c.RateLimit.SessionsPerMinute < 0 {
		return fmt.Errorf("rate_limit.sessions_per_minute must be >= 0 (got %d)", c.RateLimit.SessionsPerMinute)
	}
	if c.RateLimit.SessionsPerMinute > 0 && c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit.cleanup_interval must be > 0 when limiting is enabled")
	}

	return nil
}

func (p *PlaylistConfig) validate() error {
	if p.MaxPhraseLength <= 0 {
		return fmt.Errorf("max_phrase_length must be > 0 (got %d)", p.MaxPhraseLength)
	}
	if p.OpenerDuration < 0 {
		return fmt.Errorf("opener_duration must be >= 0 (got %v)", p.OpenerDuration)
	}
	if strings.TrimSpace(p.OpenerFilename) == "" {
		return fmt.Errorf("opener_filename is required")
	}
	if p.TargetDuration <= 0 {
		return fmt.Errorf("target_duration must be > 0 (got %d)", p.TargetDuration)
	}
	if p.MaxTextLength <= 0 {
		return fmt.Errorf("max_text_length must be > 0 (got %d)", p.MaxTextLength)
	}

	p.BaseURL = strings.TrimRight(strings.TrimSpace(p.BaseURL), "/")
	if p.BaseURL != "" {
		u, err := url.Parse(p.BaseURL)
		if err != nil {
			return fmt.Errorf("base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("base_url must be an http(s) URL (got %q)", p.BaseURL)
		}
	}
	return nil
}
