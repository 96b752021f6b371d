package discovery

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"tagbar/internal/domain"
)

// maxDepth bounds how deep a corpus directory is walked
const maxDepth = 5

var documentExts = map[string]bool{".txt": true, ".md": true, ".text": true}

var skipDirs = map[string]bool{
	"node_modules": true, "vendor": true, "dist": true, "build": true,
	"target": true, "__pycache__": true, "venv": true,
}

// Loader reads a search corpus from disk
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger discards log output.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{logger: logger}
}

// Load reads path. A regular file holds one document per line as
// "title<TAB>body"; blank lines and lines starting with '#' are skipped.
// A directory contributes one document per text file: the file name is the
// title and the first non-empty line the body.
func (l *Loader) Load(ctx context.Context, path string) ([]domain.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	if info.IsDir() {
		return l.scanDirectory(ctx, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()

	docs, err := ParseLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus %s: %w", path, err)
	}
	l.logger.Info("corpus loaded", "path", path, "documents", len(docs))
	return docs, nil
}

// ParseLines parses the line format described on Load. IDs count from 1.
func ParseLines(r io.Reader) ([]domain.Document, error) {
	var docs []domain.Document
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		title, body, _ := strings.Cut(line, "\t")
		docs = append(docs, domain.Document{
			ID:    len(docs) + 1,
			Title: strings.TrimSpace(title),
			Body:  strings.TrimSpace(body),
		})
	}
	return docs, scanner.Err()
}

func (l *Loader) scanDirectory(ctx context.Context, root string) ([]domain.Document, error) {
	var docs []domain.Document

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			l.logger.Warn("corpus: skipping path", "path", path, "error", err)
			return nil
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			relPath, _ := filepath.Rel(root, path)
			if strings.Count(relPath, string(filepath.Separator)) >= maxDepth ||
				strings.HasPrefix(name, ".") || skipDirs[name] {
				return fs.SkipDir
			}
			return nil
		}

		ext := strings.ToLower(filepath.Ext(name))
		if !documentExts[ext] || strings.HasPrefix(name, ".") {
			return nil
		}

		body, err := firstLine(path)
		if err != nil {
			l.logger.Warn("corpus: skipping file", "path", path, "error", err)
			return nil
		}
		docs = append(docs, domain.Document{
			ID:    len(docs) + 1,
			Title: strings.TrimSuffix(name, filepath.Ext(name)),
			Body:  body,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan corpus %s: %w", root, err)
	}

	l.logger.Info("corpus scanned", "root", root, "documents", len(docs))
	return docs, nil
}

func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimLeft(scanner.Text(), "#"))
		if line != "" {
			return line, nil
		}
	}
	return "", scanner.Err()
}
