// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package testcase

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/domdist/internal/ctxlog"
	"github.com/specialistvlad/domdist/internal/fsutil"
)

// Extensions lists the file extensions picked up when loading a directory.
var Extensions = []string{".txt", ".hcl", ".yaml", ".yml"}

// Load reads cases from path. A directory is searched recursively for files
// with one of the Extensions, in lexical order.
func Load(ctx context.Context, path string) ([]Case, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat case path: %w", err)
	}
	if !info.IsDir() {
		return LoadFile(ctx, path)
	}

	files, err := fsutil.FindFilesByExtension(path, Extensions...)
	if err != nil {
		return nil, fmt.Errorf("failed to search %s for case files: %w", path, err)
	}
	logger.Debug("Discovered case files.", "path", path, "count", len(files))

	var all []Case
	for _, file := range files {
		cases, err := LoadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		all = append(all, cases...)
	}
	return all, nil
}

// LoadFile reads a single case file, choosing the format by extension.
func LoadFile(ctx context.Context, path string) ([]Case, error) {
	logger := ctxlog.FromContext(ctx)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var cases []Case
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		cases, err = ReadHCL(src, path)
	case ".yaml", ".yml":
		cases, err = ReadYAML(src, path)
	default:
		cases, err = ReadText(bytes.NewReader(src), path)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded case file.", "path", path, "cases", len(cases))
	return cases, nil
}
