package config

import "os"

// DefaultHome is the settings directory used when nothing else is given.
const DefaultHome = ".hello"

// ResolveHome picks the settings directory.
// Priority: explicit value (--home) > HELLO_HOME > DefaultHome
func ResolveHome(explicit string) string {
	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	if explicit != "" {
		return explicit
	}
	return get("HELLO_HOME", DefaultHome)
}
