package repository

import "os"

// getenvDefault resolves table names so local stacks can override them per env.
func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
