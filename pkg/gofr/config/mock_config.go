package config

// NewMockConfig returns a Config holding values, for tests. A nil map is an empty config.
func NewMockConfig(values map[string]string) Config {
	return mapConfig(values)
}

type mapConfig map[string]string

func (m mapConfig) Get(key string) string { return m[key] }

func (m mapConfig) GetOrDefault(key, def string) string { return getOrDefault(m, key, def) }
