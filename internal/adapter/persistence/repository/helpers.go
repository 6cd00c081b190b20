package repository

import (
	"os"
	"strings"
	"time"
)

// tableNameFromEnv ignores blank overrides so a stray PAYMENT_RECORDS_TABLE=" "
// does not point the service at a table that cannot exist.
func tableNameFromEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
