package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// configCache stores parsed configuration values keyed by their type name.
type configCache struct {
	mu      sync.RWMutex
	values  map[string]any
	loading map[string]*loadOnce
}

// loadOnce guards the first parse of a type. err is shared with every caller
// that waited on once.
type loadOnce struct {
	once sync.Once
	err  error
}

var (
	globalCache = &configCache{
		values:  make(map[string]any),
		loading: make(map[string]*loadOnce),
	}

	defaultEnvLoaded sync.Once

	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Load parses environment variables into v and checks its `validate` tags.
// Each configuration type is parsed once; later calls copy the cached value
// into v.
//
// Fields that have neither an environment variable nor an envDefault keep the
// value v already holds, so callers may pre-populate v with code defaults:
//
//	d := toast.DefaultDefaults()
//	if err := config.Load(&d); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// The default .env file is optional.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()

	if loadCached(typeName, v) {
		return nil
	}

	globalCache.mu.Lock()
	lo, exists := globalCache.loading[typeName]
	if !exists {
		lo = new(loadOnce)
		globalCache.loading[typeName] = lo
	}
	globalCache.mu.Unlock()

	lo.once.Do(func() {
		lo.err = parse(v)

		globalCache.mu.Lock()
		defer globalCache.mu.Unlock()

		if lo.err != nil {
			// Let a later call retry after the environment is fixed.
			if globalCache.loading[typeName] == lo {
				delete(globalCache.loading, typeName)
			}
			return
		}
		globalCache.values[typeName] = *v
	})
	if lo.err != nil {
		return lo.err
	}

	if loadCached(typeName, v) {
		return nil
	}
	return ErrConfigNotLoaded
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// ForceReload parses v again, bypassing and then refreshing the cache.
func ForceReload[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	if err := parse(v); err != nil {
		return err
	}

	typeName := getTypeName[T]()
	globalCache.mu.Lock()
	globalCache.values[typeName] = *v
	globalCache.mu.Unlock()
	return nil
}

// LoadEnv loads the given .env files into the process environment. Without
// arguments it loads .env from the working directory. Variables already set
// in the environment are not overridden; later files override earlier ones.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		if err := godotenv.Load(); err != nil {
			return errors.Join(ErrLoadingEnvFile, err)
		}
		return nil
	}

	env, err := godotenv.Read(paths...)
	if err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return setMissing(env)
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("Failed to load env files: %v", err))
	}
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	globalCache.mu.Lock()
	defer globalCache.mu.Unlock()

	globalCache.values = make(map[string]any)
	globalCache.loading = make(map[string]*loadOnce)
}

func parse[T any](v *T) error {
	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	if err := validate.Struct(v); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	return nil
}

func loadCached[T any](typeName string, v *T) bool {
	globalCache.mu.RLock()
	defer globalCache.mu.RUnlock()

	cached, ok := globalCache.values[typeName]
	if ok {
		*v = cached.(T)
	}
	return ok
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	return reflect.TypeFor[T]().String()
}
