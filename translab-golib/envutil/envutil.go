package envutil

import (
	"log"
	"os"
)

// GetenvDefault gets the value of an environment variable, or returns the
// specified default value if that variable is not set.
func GetenvDefault(name, defaultValue string) string {
	val, found := os.LookupEnv(name)
	if !found {
		return defaultValue
	}
	return val
}

// MustGetenv gets the value of an environment variable, or exits if it has
// no value.
func MustGetenv(name string) string {
	val, found := os.LookupEnv(name)
	if !found {
		log.Fatalf("environment variable %s is required but not set", name)
	}
	return val
}
