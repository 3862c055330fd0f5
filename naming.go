package liteorm

import (
	"strings"

	"github.com/tinywasm/fmt"
)

// columnName is the column a Go field name maps to when no db tag names it.
// A trailing ID initialism stays one word: GameID -> game_id.
func columnName(goName string) string {
	if strings.HasSuffix(goName, "ID") {
		goName = strings.TrimSuffix(goName, "ID") + "Id"
	}
	return fmt.Convert(goName).SnakeLow().String()
}

// tagOptions splits a db struct tag into its comma-separated parts.
func tagOptions(tag string) []string {
	if tag == "" {
		return nil
	}
	return fmt.Convert(tag).Split(",")
}

// tagValue returns the value of key=value in a db tag.
func tagValue(tag, key string) (string, bool) {
	for _, p := range tagOptions(tag) {
		if fmt.HasPrefix(p, key+"=") {
			return strings.TrimPrefix(p, key+"="), true
		}
	}
	return "", false
}
