// Package config provides configuration helpers for go-headlink commands.
package config

import (
	"os"
	"strconv"
)

// Default stream and actuator configuration.
const (
	DefaultPosePort     = 65432
	DefaultGazePort     = 65433
	DefaultViewerPort   = "8080"
	DefaultActuatorHost = "192.168.0.100"
	DefaultPanJoint     = "head_pan"
	DefaultTiltJoint    = "head_tilt"
)

// ActuatorHost returns the actuator host from ACTUATOR_HOST env var.
// Falls back to the provided default if not set.
func ActuatorHost(defaultHost string) string {
	if host := os.Getenv("ACTUATOR_HOST"); host != "" {
		return host
	}
	return defaultHost
}

// EnvInt returns the named env var parsed as an int, or the fallback
// when unset or unparseable.
func EnvInt(name string, fallback int) int {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// EnvString returns the named env var or the fallback when unset.
func EnvString(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
