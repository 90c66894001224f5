package config

import "strings"

// UploadsConfig controls where gallery images are stored on disk and how
// large a single upload may be.
type UploadsConfig struct {
	// Dir is the directory gallery images are written to.
	Dir string `env:"UPLOADS_DIR" envDefault:"uploads/gallery"`

	// MaxBytes caps the size of a single uploaded image.
	MaxBytes int64 `env:"UPLOADS_MAX_BYTES" envDefault:"5242880"`
}

// Sanitize applies guardrails to upload configuration values.
func (u *UploadsConfig) Sanitize() {
	u.Dir = strings.TrimSpace(u.Dir)
	if u.Dir == "" {
		u.Dir = "uploads/gallery"
	}
	if u.MaxBytes <= 0 {
		u.MaxBytes = 5 << 20
	}
}
