package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Rendition is one encoded output (tier × format) derived from a source image.
type Rendition struct {
	Tier      string `json:"tier"`
	Format    string `json:"format"`
	ObjectKey string `json:"object_key"`
	// URL is a short-lived download link, filled in at read time and never persisted.
	URL       string `json:"url,omitempty"`
	SizeBytes int64  `json:"size_bytes"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

type Renditions []Rendition

func (r Renditions) Value() (driver.Value, error) {
	return json.Marshal(r)
}
func (r *Renditions) Scan(src interface{}) error {
	if src == nil {
		*r = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Renditions.Scan: expected []byte, got %T", src)
	}
	return json.Unmarshal(data, r)
}

// Complete reports whether the rendition set covers all tiers in both encodings.
func (r Renditions) Complete() bool {
	return len(r) == RenditionCount
}

// Metadata describes the source image a rendition set was derived from.
type Metadata struct {
	OriginalSizeBytes  int64     `json:"original_size_bytes"`
	OptimizedSizeBytes int64     `json:"optimized_size_bytes"`
	Width              int       `json:"width"`
	Height             int       `json:"height"`
	Format             string    `json:"format"`
	Checksum           string    `json:"checksum"`
	UploadedAt         time.Time `json:"uploaded_at"`
}

func (m Metadata) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal Metadata: %w", err)
	}
	return b, nil
}
func (m *Metadata) Scan(src interface{}) error {
	if src == nil {
		*m = Metadata{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Metadata.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, m); err != nil {
		return fmt.Errorf("unmarshal Metadata: %w", err)
	}
	return nil
}

// Stats records how the optimisation of one source file went.
type Stats struct {
	CompressionRatio float64 `json:"compression_ratio"`
	DurationMs       int64   `json:"duration_ms"`
}

func (s Stats) Value() (driver.Value, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal Stats: %w", err)
	}
	return b, nil
}
func (s *Stats) Scan(src interface{}) error {
	if src == nil {
		*s = Stats{}
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Stats.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, s); err != nil {
		return fmt.Errorf("unmarshal Stats: %w", err)
	}
	return nil
}
