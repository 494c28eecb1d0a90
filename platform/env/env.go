package env

import (
	"go.uber.org/zap"
	"os"
)

// OrDefault return the value of the env var, or def when it is not set or empty
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	log.Debugw("config", "env", env, "default", def)
	return def
}

// Must return the value of the env var, and fatal when it is not set
func Must(log *zap.SugaredLogger, env string) string {
	v, ok := os.LookupEnv(env)
	if !ok || v == "" {
		log.Fatal("missing required env var ", env)
	}
	return v
}
