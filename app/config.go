package app

import (
	"fmt"
	"time"

	coreconfig "github.com/m3rciful/prayerbot/core/config"
	"github.com/m3rciful/prayerbot/prayer"
)

// Config is the prayer bot configuration: the shared core settings plus the prayer group.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Prayer PrayerConfig `yaml:"prayer"`
}

// PrayerConfig locates the shared prayer group.
type PrayerConfig struct {
	GroupID int64 `yaml:"group_id" envconfig:"TELEGRAM_GROUP_ID"`
	// TopicID is the forum thread inside the group; 0 posts to the general chat.
	TopicID        int `yaml:"topic_id" envconfig:"TELEGRAM_TOPIC_ID"`
	CleanupDelayMS int `yaml:"cleanup_delay_ms" envconfig:"PRAYER_CLEANUP_DELAY_MS"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// Group returns the destination for prayer posts.
func (p PrayerConfig) Group() prayer.Destination {
	return prayer.Destination{ChatID: p.GroupID, ThreadID: p.TopicID}
}

// CleanupDelay returns the wait before deleting a triggering message.
func (p PrayerConfig) CleanupDelay() time.Duration {
	return time.Duration(p.CleanupDelayMS) * time.Millisecond
}

// LoadConfig reads the optional YAML file at path, overlays the environment and validates the result.
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if err := coreconfig.LoadInto(path, &cfg); err != nil {
		return nil, err
	}
	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if err := cfg.Prayer.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (p PrayerConfig) validate() error {
	if p.GroupID == 0 {
		return fmt.Errorf("prayer group id is required (TELEGRAM_GROUP_ID)")
	}
	if p.TopicID < 0 {
		return fmt.Errorf("prayer.topic_id must be >= 0")
	}
	if p.CleanupDelayMS < 0 {
		return fmt.Errorf("prayer.cleanup_delay_ms must be >= 0")
	}
	return nil
}
