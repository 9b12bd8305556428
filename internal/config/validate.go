package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4, 31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}
	if err := c.Translation.validate(); err != nil {
		return fmt.Errorf("translation: %w", err)
	}

	if c.Kanji.CacheSize <= 0 {
		return fmt.Errorf("kanji.cache_size must be > 0 (got %d)", c.Kanji.CacheSize)
	}
	if c.Kanji.Concurrency <= 0 {
		return fmt.Errorf("kanji.concurrency must be > 0 (got %d)", c.Kanji.Concurrency)
	}
	if c.Annotate.MaxRunes <= 0 {
		return fmt.Errorf("annotate.max_runes must be > 0 (got %d)", c.Annotate.MaxRunes)
	}

	return nil
}

func (s *SRSConfig) validate() error {
	if s.MinEaseFactor <= 0 {
		return fmt.Errorf("min_ease_factor must be > 0 (got %v)", s.MinEaseFactor)
	}
	if s.InitialEaseFactor < s.MinEaseFactor {
		return fmt.Errorf("initial_ease_factor %v is below min_ease_factor %v", s.InitialEaseFactor, s.MinEaseFactor)
	}
	if s.PassingGrade < 0 || s.PassingGrade > 5 {
		return fmt.Errorf("passing_grade must be in [0, 5] (got %d)", s.PassingGrade)
	}
	if s.FirstIntervalDays <= 0 || s.SecondInterval <= 0 {
		return fmt.Errorf("first_interval and second_interval must be > 0")
	}
	if s.MaxWriteAttempts < 1 {
		return fmt.Errorf("max_write_attempts must be >= 1 (got %d)", s.MaxWriteAttempts)
	}
	if s.DueQueueLimit < 1 || s.DueQueueLimit > s.DueQueueMaxLimit {
		return fmt.Errorf("due_queue_limit must be in [1, %d] (got %d)", s.DueQueueMaxLimit, s.DueQueueLimit)
	}
	return nil
}

func (t *TranslationConfig) validate() error {
	switch t.NormalizedProvider() {
	case TranslationNone, "":
		return nil
	case TranslationAnthropic, TranslationOpenAI:
		if t.APIKey == "" {
			return fmt.Errorf("api_key is required for provider %q", t.Provider)
		}
		if t.MaxTokens <= 0 {
			return fmt.Errorf("max_tokens must be > 0 (got %d)", t.MaxTokens)
		}
		return nil
	default:
		return fmt.Errorf("unknown provider %q", t.Provider)
	}
}
