// Package archive finds input files on disk and extracts downloaded scene
// archives.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vermeulendivan/s2prep/util"
)

// SearchFiles walks root recursively and returns the files whose extension
// (without the dot) is in exts
func SearchFiles(ctx util.LogContext, root string, exts []string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, util.MissingInput("Search directory does not exist: " + root)
	}

	var found []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if util.CheckExtension(path, exts) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, util.LogSimpleErr(ctx, "Failed to search "+root, err)
	}
	return found, nil
}

// FindZips returns all zip archives under root
func FindZips(ctx util.LogContext, root string) ([]string, error) {
	return SearchFiles(ctx, root, []string{"zip"})
}

// Unzip extracts each archive into extractDir. An archive whose top-level
// folder already exists under extractDir is skipped.
func Unzip(ctx util.LogContext, zips []string, extractDir string) error {
	for _, zipPath := range zips {
		if err := extractOne(ctx, zipPath, extractDir); err != nil {
			return err
		}
	}
	return nil
}

func extractOne(ctx util.LogContext, zipPath, extractDir string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return util.LogSimpleErr(ctx, "Failed to open zip file "+zipPath, err)
	}
	defer reader.Close()

	if len(reader.File) == 0 {
		return nil
	}

	topLevel := strings.Split(reader.File[0].Name, "/")[0]
	if _, err := os.Stat(filepath.Join(extractDir, topLevel)); err == nil {
		return nil
	}

	util.LogInfo(ctx, "Extracting zip file: "+zipPath)
	for _, entry := range reader.File {
		if err := extractEntry(entry, extractDir); err != nil {
			return util.LogSimpleErr(ctx, "Failed to extract "+entry.Name+" from "+zipPath, err)
		}
	}
	return nil
}

func extractEntry(entry *zip.File, extractDir string) error {
	target := filepath.Join(extractDir, filepath.FromSlash(entry.Name))
	if !strings.HasPrefix(target, filepath.Clean(extractDir)+string(os.PathSeparator)) {
		return fmt.Errorf("zip entry escapes the extraction directory: %s", entry.Name)
	}

	if entry.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	source, err := entry.Open()
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := os.Create(target)
	if err != nil {
		return err
	}
	defer dest.Close()

	_, err = io.Copy(dest, source)
	return err
}
