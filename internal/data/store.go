// Package data loads and serves the YAML data files that back the
// producers. A store is built from two layers: the base file
// <prefix>.yml, which must exist, and the optional locale file
// <prefix>_<lang>.yml merged on top of it.
package data

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	kfs "github.com/knadh/koanf/providers/fs"
	"github.com/knadh/koanf/v2"

	"github.com/getfairy/fairy/pkg/logging"
)

// Common errors for data loading and lookup.
var (
	ErrBaseNotFound = errors.New("base data file not found")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
	ErrKeyNotFound  = errors.New("data key not found")
	ErrWrongType    = errors.New("data key has wrong type")
)

// Config describes where a store reads its data from.
type Config struct {
	// FS is the filesystem holding the data files. Required.
	FS fs.FS

	// Prefix is the data file prefix, e.g. "fairy" for fairy.yml. Required.
	Prefix string

	// Locale selects the <prefix>_<locale>.yml overlay. Empty means
	// base data only.
	Locale string

	// Logger receives debug output. Defaults to a no-op logger.
	Logger *slog.Logger
}

// Store holds the merged data tree and answers typed lookups by dotted
// key path, e.g. "person.firstNames.male". A store is immutable once
// loaded and safe for concurrent readers.
type Store struct {
	k      *koanf.Koanf
	prefix string
	locale string
}

// Load reads the base file and, when present, the locale overlay.
// A missing base file is an error; a missing locale file is tolerated
// with a warning.
func Load(cfg Config) (*Store, error) {
	if cfg.FS == nil {
		return nil, errors.New("data filesystem is required")
	}
	if cfg.Prefix == "" {
		return nil, errors.New("data file prefix is required")
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}

	k := koanf.New(".")

	base := cfg.Prefix + ".yml"
	if _, err := fs.Stat(cfg.FS, base); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBaseNotFound, base)
	}
	if err := k.Load(kfs.Provider(cfg.FS, base), kyaml.Parser()); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, base, err)
	}
	log.Debug("loaded base data file", "file", base)

	if cfg.Locale != "" {
		overlay := cfg.Prefix + "_" + cfg.Locale + ".yml"
		if _, err := fs.Stat(cfg.FS, overlay); err != nil {
			log.Warn("locale data file missing, using base data only", "file", overlay)
		} else {
			if err := k.Load(kfs.Provider(cfg.FS, overlay), kyaml.Parser(), koanf.WithMergeFunc(mergeLayers)); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrInvalidYAML, overlay, err)
			}
			log.Debug("merged locale data file", "file", overlay)
		}
	}

	return &Store{k: k, prefix: cfg.Prefix, locale: cfg.Locale}, nil
}

// Prefix returns the data file prefix the store was loaded with.
func (s *Store) Prefix() string { return s.prefix }

// Locale returns the locale code the store was loaded with. Empty when
// the store serves base data only.
func (s *Store) Locale() string { return s.locale }

// Has reports whether a key exists, including intermediate map paths.
func (s *Store) Has(key string) bool {
	return s.k.Exists(key)
}

// Keys returns all leaf key paths, sorted.
func (s *Store) Keys() []string {
	return s.k.Keys()
}

// MapKeys returns the sorted child keys of the map at the given path,
// or nil if the path does not hold a map.
func (s *Store) MapKeys(key string) []string {
	return s.k.MapKeys(key)
}

// String returns the string value at key.
func (s *Store) String(key string) (string, error) {
	v := s.k.Get(key)
	if v == nil {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s holds %T, want string", ErrWrongType, key, v)
	}
	return str, nil
}

// StringList returns the list of strings at key.
func (s *Store) StringList(key string) ([]string, error) {
	v := s.k.Get(key)
	if v == nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, nil
	case []interface{}:
		out := make([]string, 0, len(list))
		for i, item := range list {
			str, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] holds %T, want string", ErrWrongType, key, i, item)
			}
			out = append(out, str)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s holds %T, want list of strings", ErrWrongType, key, v)
	}
}

// Int returns the integer value at key. Whole floats are accepted since
// YAML numbers may parse either way.
func (s *Store) Int(key string) (int, error) {
	v := s.k.Get(key)
	if v == nil {
		return 0, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
		return 0, fmt.Errorf("%w: %s holds non-integer %v", ErrWrongType, key, n)
	default:
		return 0, fmt.Errorf("%w: %s holds %T, want int", ErrWrongType, key, v)
	}
}

// Float returns the numeric value at key as a float64.
func (s *Store) Float(key string) (float64, error) {
	v := s.k.Get(key)
	if v == nil {
		return 0, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %s holds %T, want number", ErrWrongType, key, v)
	}
	return f, nil
}

// WeightMap returns the map at key with numeric values, e.g. weighted
// choice tables like net.schemes.
func (s *Store) WeightMap(key string) (map[string]float64, error) {
	v := s.k.Get(key)
	if v == nil {
		return nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	m, ok := v.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %T, want map", ErrWrongType, key, v)
	}
	out := make(map[string]float64, len(m))
	for name, raw := range m {
		f, ok := toFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %s.%s holds %T, want number", ErrWrongType, key, name, raw)
		}
		out[name] = f
	}
	return out, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
