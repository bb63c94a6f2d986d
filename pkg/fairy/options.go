package fairy

import (
	"io/fs"
	"log/slog"
	mathrand "math/rand/v2"
	"os"
	"time"
)

// settings collects what the options configure before construction.
type settings struct {
	locale  string
	prefix  string
	fsys    fs.FS
	rng     *mathrand.Rand
	seed    uint64
	hasSeed bool
	logger  *slog.Logger
	clock   func() time.Time
}

// Option configures a generator at construction time.
type Option func(*settings)

// WithLocale selects the data locale, e.g. "en", "de" or "en-US".
// Region subtags collapse to the base language, so "en-US" loads the
// "en" data file.
func WithLocale(code string) Option {
	return func(s *settings) { s.locale = code }
}

// WithFilePrefix changes the data file prefix from the default "fairy",
// selecting <prefix>.yml and <prefix>_<locale>.yml instead.
func WithFilePrefix(prefix string) Option {
	return func(s *settings) { s.prefix = prefix }
}

// WithSeed fixes the random seed. Two generators built with the same
// seed, data and clock produce identical value streams when called in
// the same order.
func WithSeed(seed uint64) Option {
	return func(s *settings) {
		s.seed = seed
		s.hasSeed = true
	}
}

// WithRand supplies the random source directly, overriding WithSeed.
func WithRand(rng *mathrand.Rand) Option {
	return func(s *settings) { s.rng = rng }
}

// WithDataFS reads data files from the given filesystem instead of the
// bundled locales.
func WithDataFS(fsys fs.FS) Option {
	return func(s *settings) { s.fsys = fsys }
}

// WithDataDir reads data files from a directory on disk instead of the
// bundled locales.
func WithDataDir(dir string) Option {
	return func(s *settings) { s.fsys = os.DirFS(dir) }
}

// WithLogger attaches a logger. Without one the generator is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithClock replaces the wall clock used by now-relative draws like
// birth dates and card expiries. Pin it together with WithSeed for
// fully reproducible output.
func WithClock(now func() time.Time) Option {
	return func(s *settings) { s.clock = now }
}
