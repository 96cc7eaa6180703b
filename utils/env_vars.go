package utils

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

// GetEnv reads an environment variable as a string, int or bool, falling back
// to defaultValue when unset or empty.
func GetEnv[T string | int | bool](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	value, err := parseEnv[T](envVar, envValue)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return value
}

// GetRequiredEnv is GetEnv without a fallback: a missing variable is fatal.
func GetRequiredEnv[T string | int | bool](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	value, err := parseEnv[T](envVar, envValue)
	if err != nil {
		log.Fatalf("%v", err)
	}
	return value
}

func parseEnv[T string | int | bool](envVar, envValue string) (T, error) {
	var value T
	switch ptr := any(&value).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			return value, fmt.Errorf(
				"environment variable %s is not valid: %q is not an integer", envVar, envValue)
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			return value, fmt.Errorf(
				"environment variable %s is not valid: %q is not a boolean", envVar, envValue)
		}
		*ptr = boolValue
	}
	return value, nil
}
