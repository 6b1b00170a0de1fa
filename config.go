package curved

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMinSegmentsPerQuadrant is the coarsest resolution used when
	// linearizing arcs.
	DefaultMinSegmentsPerQuadrant = 12
	// DefaultMaxSegmentsPerQuadrant bounds the resolution used to satisfy
	// small tolerances.
	DefaultMaxSegmentsPerQuadrant = 10000
)

// CoarsestTolerance requests the coarsest linearization, which uses
// [Config.MinSegmentsPerQuadrant] regardless of the arc's radius. Positive
// infinity has the same effect.
const CoarsestTolerance = math.MaxFloat64

// Config controls the resolution of arc linearization. The zero value is
// equivalent to [DefaultConfig].
type Config struct {
	// MinSegmentsPerQuadrant is the number of segments used to cover a
	// quarter circle when the tolerance is coarse, and the starting point
	// of the search for finer tolerances.
	MinSegmentsPerQuadrant int `yaml:"min_segments_per_quadrant"`
	// MaxSegmentsPerQuadrant is never exceeded, even if the requested
	// tolerance cannot be met. A tolerance of zero selects it directly.
	MaxSegmentsPerQuadrant int `yaml:"max_segments_per_quadrant"`
}

// DefaultConfig returns the configuration used by [DefaultFactory].
func DefaultConfig() Config {
	return Config{
		MinSegmentsPerQuadrant: DefaultMinSegmentsPerQuadrant,
		MaxSegmentsPerQuadrant: DefaultMaxSegmentsPerQuadrant,
	}
}

func (c Config) isZero() bool {
	return c == Config{}
}

func (c Config) orDefault() Config {
	if c.isZero() {
		return DefaultConfig()
	}
	return c
}

// Validate checks that both bounds are at least one and that the minimum
// does not exceed the maximum.
func (c Config) Validate() error {
	if c.isZero() {
		return nil
	}
	if c.MinSegmentsPerQuadrant < 1 {
		return fmt.Errorf("%w: min segments per quadrant must be at least 1, got %d",
			ErrInvalidConfig, c.MinSegmentsPerQuadrant)
	}
	if c.MaxSegmentsPerQuadrant < 1 {
		return fmt.Errorf("%w: max segments per quadrant must be at least 1, got %d",
			ErrInvalidConfig, c.MaxSegmentsPerQuadrant)
	}
	if c.MinSegmentsPerQuadrant > c.MaxSegmentsPerQuadrant {
		return fmt.Errorf("%w: min segments per quadrant (%d) exceeds max (%d)",
			ErrInvalidConfig, c.MinSegmentsPerQuadrant, c.MaxSegmentsPerQuadrant)
	}
	return nil
}

// LoadConfig reads a YAML document such as
//
//	min_segments_per_quadrant: 32
//	max_segments_per_quadrant: 20000
//
// Keys that are absent keep their default values. Unknown keys are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// chordDeviation returns the sagitta of a chord with half-length
// radius·sin(π/(2n)). That chord spans two linearization steps, so the
// estimate is conservative.
func chordDeviation(radius float64, segmentsPerQuadrant int) float64 {
	halfChord := radius * math.Sin(math.Pi/2/float64(segmentsPerQuadrant))
	apothem := math.Sqrt(radius*radius - halfChord*halfChord)
	return radius - apothem
}

// segmentsPerQuadrant picks the resolution for an arc of the given radius.
// Starting at the minimum, it halves while the deviation stays within
// tolerance, or doubles until it does, staying within [1, max].
func (c Config) segmentsPerQuadrant(radius, tolerance float64) int {
	c = c.orDefault()
	switch {
	case tolerance == 0:
		return c.MaxSegmentsPerQuadrant
	case tolerance >= CoarsestTolerance:
		return c.MinSegmentsPerQuadrant
	}

	n := c.MinSegmentsPerQuadrant
	dev := chordDeviation(radius, n)
	if dev <= tolerance {
		for n > 1 {
			next := n / 2
			if chordDeviation(radius, next) > tolerance {
				break
			}
			n = next
		}
		return n
	}

	for dev > tolerance && n < c.MaxSegmentsPerQuadrant {
		n = min(n*2, c.MaxSegmentsPerQuadrant)
		dev = chordDeviation(radius, n)
	}
	if dev > tolerance && debugEnabled() {
		Logger().Debug("tolerance not reachable within max segments per quadrant",
			slog.Float64("radius", radius),
			slog.Float64("tolerance", tolerance),
			slog.Float64("deviation", dev),
			slog.Int("segments_per_quadrant", n))
	}
	return n
}
