package enums

import "os"

// EnvOr gets the environment variable for the provided key,
// parses it through s,
// or returns the provided default member
// if the variable is unset or matches no member of s.
func EnvOr[T comparable](s *Set[T], key string, def T) T {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	return s.ParseOr(val, def)
}
