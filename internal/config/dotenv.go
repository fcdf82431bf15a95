package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv exports the variables declared in path. Variables already set
// in the environment are not overridden.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}
