package config

import "os"

// setMissing exports values that are not yet present in the environment.
func setMissing(values map[string]string) error {
	for key, value := range values {
		if _, ok := os.LookupEnv(key); ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}
	return nil
}
