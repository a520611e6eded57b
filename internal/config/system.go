package config

import (
	"os"

	homedir "github.com/mitchellh/go-homedir"
)

// System abstracts the environment lookups config resolution depends on.
type System interface {
	Getenv(key string) string
	HomeDir() (string, error)
}

// RealSystem implements System using the process environment.
type RealSystem struct{}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// HomeDir returns the current user's home directory.
func (RealSystem) HomeDir() (string, error) {
	return homedir.Dir()
}
