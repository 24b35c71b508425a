// Package config reads and validates the environment the host starts with.
package config
