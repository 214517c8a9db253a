package asciiart

// Defaults used when an option is not supplied.
const (
	DefaultResolutionMultiplier = 3
	DefaultFixResolution        = 4
	DefaultThumbnailPercentage  = 1.0
)

// Config holds the parameters of a single rendering pass.
type Config struct {
	ResolutionMultiplier int     // Characters emitted per pixel
	FixResolution        int     // Brightness divisor, a power of 2 in [1, 128]
	InvertBrightness     bool    // Map dark pixels to bold glyphs
	Colored              bool    // Wrap runs in ANSI colour codes
	ThumbnailPercentage  float64 // Scale applied before the grid is built, in (0, 1]
}

type Option func(cfg *Config)

// WithColor enables ANSI colouring.
func WithColor() Option {
	return func(cfg *Config) {
		cfg.Colored = true
	}
}

// If used, brightness is inverted before the ramp lookup.
func WithInvertedBrightness() Option {
	return func(cfg *Config) {
		cfg.InvertBrightness = true
	}
}

// WithResolutionMultiplier sets how many times each character is repeated.
func WithResolutionMultiplier(n int) Option {
	return func(cfg *Config) {
		cfg.ResolutionMultiplier = n
	}
}

// WithFixResolution sets the brightness quantization divisor.
func WithFixResolution(n int) Option {
	return func(cfg *Config) {
		cfg.FixResolution = n
	}
}

// WithThumbnailPercentage sets the downscale factor applied when loading.
func WithThumbnailPercentage(pct float64) Option {
	return func(cfg *Config) {
		cfg.ThumbnailPercentage = pct
	}
}

func DefaultConfig() Config {
	return Config{
		ResolutionMultiplier: DefaultResolutionMultiplier,
		FixResolution:        DefaultFixResolution,
		ThumbnailPercentage:  DefaultThumbnailPercentage,
	}
}

func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// FixResolutions lists the divisors accepted by Validate.
var FixResolutions = []int{1, 2, 4, 8, 16, 32, 64, 128}

// Validate checks cfg against the documented parameter domains. Rendering
// itself accepts any values; Validate is for user supplied input.
func (cfg Config) Validate() error {
	if cfg.ThumbnailPercentage <= 0 || cfg.ThumbnailPercentage > 1 {
		return &InvalidArgumentError{
			Name:   "thumbnail percentage",
			Value:  cfg.ThumbnailPercentage,
			Reason: "must be in (0, 1]",
		}
	}
	if cfg.ResolutionMultiplier < 1 {
		return &InvalidArgumentError{
			Name:   "resolution multiplier",
			Value:  cfg.ResolutionMultiplier,
			Reason: "must be at least 1",
		}
	}
	for _, f := range FixResolutions {
		if cfg.FixResolution == f {
			return nil
		}
	}
	return &InvalidArgumentError{
		Name:   "fix resolution",
		Value:  cfg.FixResolution,
		Reason: "must be one of 1, 2, 4, 8, 16, 32, 64, 128",
	}
}
