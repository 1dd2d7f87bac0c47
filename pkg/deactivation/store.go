package deactivation

import (
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/recordflow/pkg/errors"
	"github.com/arthur-debert/recordflow/pkg/logging"
)

// envPrefix is the prefix for environment overrides, e.g.
// RECORDFLOW_HANDLERS_OPPORTUNITY_DISABLED=true.
const envPrefix = "RECORDFLOW_"

// keyPrefix is the configuration namespace deactivation flags live under.
const keyPrefix = "handlers."

// keySuffix is the per-entity flag name.
const keySuffix = ".disabled"

// Store is a deactivation lookup backed by configuration. Flags come from
// a TOML file of the form
//
//	[handlers.opportunity]
//	disabled = true
//
// merged with RECORDFLOW_-prefixed environment variables. Entity names are
// matched case-insensitively. The Store is immutable after construction;
// re-open it to pick up configuration changes.
type Store struct {
	disabled map[string]bool
}

// Open loads a deactivation store from the given TOML file path. It is
// fail-open: a missing file, unreadable file, or malformed configuration
// logs a warning and yields an empty store in which every entity is
// active. An empty path skips the file and loads environment overrides
// only.
func Open(path string) *Store {
	store, err := Load(path)
	if err != nil {
		logger := logging.GetLogger("deactivation")
		logger.Warn().
			Err(err).
			Str("path", path).
			Msg("Failed to load deactivation config, treating all entities as active")
		return &Store{disabled: make(map[string]bool)}
	}
	return store
}

// Load is the strict variant of Open: any load or parse problem is
// returned instead of swallowed. The supervisor path never uses this;
// it exists so the CLI can validate configuration files.
func Load(path string) (*Store, error) {
	k := koanf.New(".")

	// Base layer so the handlers namespace always exists.
	base := map[string]interface{}{"handlers": map[string]interface{}{}}
	if err := k.Load(confmap.Provider(base, "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load base config")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "deactivation config %s not readable", path)
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse deactivation config %s", path)
		}
	}

	// Environment overrides win over the file.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	return fromKoanf(k)
}

// fromKoanf extracts handlers.<entity>.disabled flags into a lowercased
// entity map.
func fromKoanf(k *koanf.Koanf) (*Store, error) {
	disabled := make(map[string]bool)

	for key, value := range k.All() {
		if !strings.HasPrefix(key, keyPrefix) || !strings.HasSuffix(key, keySuffix) {
			continue
		}
		entity := strings.TrimSuffix(strings.TrimPrefix(key, keyPrefix), keySuffix)
		if entity == "" {
			continue
		}

		flag, err := toBool(value)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"disabled flag for entity '%s' is not a boolean", entity)
		}
		disabled[strings.ToLower(entity)] = flag
	}

	return &Store{disabled: disabled}, nil
}

// toBool accepts the bool values TOML produces and the string values the
// env provider produces.
func toBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	default:
		return false, errors.Newf(errors.ErrConfigParse, "unsupported value type %T", value)
	}
}

// IsDeactivated reports whether an explicit disabled=true entry exists for
// the entity. Absence means active.
func (s *Store) IsDeactivated(entity string) bool {
	if s == nil {
		return false
	}
	return s.disabled[strings.ToLower(entity)]
}

// Entities returns the entity names with an explicit entry, sorted.
func (s *Store) Entities() []string {
	names := make([]string, 0, len(s.disabled))
	for name := range s.disabled {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
