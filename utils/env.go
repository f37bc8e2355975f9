package utils

import (
	"fmt"
	"os"
	"strconv"
)

type EnvValue interface {
	~string | ~int | ~bool
}

func parseEnv[T EnvValue](key, raw string) T {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = raw
	case *int:
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s=%q is not an integer", key, raw))
		}
		*ptr = parsed
	case *bool:
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s=%q is not a boolean", key, raw))
		}
		*ptr = parsed
	}
	return out
}

func GetEnv[T EnvValue](key string, fallback T) T {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	return parseEnv[T](key, raw)
}

func GetRequiredEnv[T EnvValue](key string) T {
	raw, ok := os.LookupEnv(key)
	if !ok {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return parseEnv[T](key, raw)
}
