package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UniqueObjectName builds a collision-resistant storage object name from
// the uploading user, the original file name, the current timestamp and a
// short random suffix, keeping the original extension.
func UniqueObjectName(userID, original string) string {
	ext := filepath.Ext(original)
	base := strings.TrimSuffix(filepath.Base(original), ext)
	base = SanitizeFileName(base)

	prefix := "user_"
	if userID != "" {
		prefix = fmt.Sprintf("user_%s_", SanitizeFileName(userID))
	}

	return fmt.Sprintf("%s%s_%d_%s%s", prefix, base, time.Now().Unix(), uuid.NewString()[:8], ext)
}

// SanitizeFileName replaces everything outside [a-zA-Z0-9-_.] with '_'.
func SanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, name)
}
