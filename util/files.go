package util

import (
	"os"
	"path/filepath"
	"strings"
)

// CheckExtension reports whether the file's extension, without the leading
// dot, is one of the allowed extensions
func CheckExtension(path string, allowed []string) bool {
	extension := strings.TrimPrefix(filepath.Ext(filepath.Base(path)), ".")
	for _, candidate := range allowed {
		if candidate == extension {
			return true
		}
	}
	return false
}

// RemoveUnwantedText strips spaces, tabs and newlines from a string
func RemoveUnwantedText(s string) string {
	for _, unwanted := range []string{" ", "\n", "\r", "\t"} {
		s = strings.ReplaceAll(s, unwanted, "")
	}
	return s
}

// EnsureDir creates the directory (and any parents) if it does not exist
// and returns it
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// DeleteFile removes a single file, doing nothing when it does not exist
func DeleteFile(ctx LogContext, path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	LogInfo(ctx, "Deleting: "+path)
	if err := os.Remove(path); err != nil {
		return LogSimpleErr(ctx, "Failed to delete "+path, err)
	}
	return nil
}
