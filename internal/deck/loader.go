package deck

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadFaces loads a face catalog from a list of paths (files or directories).
// Each non-empty line that does not start with '#' is "<name> <glyph>".
func LoadFaces(paths []string) ([]Face, error) {
	var faces []Face
	seen := make(map[string]string)

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("failed to access path %s: %w", path, err)
		}

		var files []string
		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else {
			files = append(files, path)
		}

		for _, file := range files {
			loaded, err := loadFaceFile(file)
			if err != nil {
				return nil, err
			}
			for _, f := range loaded {
				if prev, ok := seen[f.Name]; ok {
					return nil, fmt.Errorf("duplicate face %q in %s (first defined in %s)", f.Name, file, prev)
				}
				seen[f.Name] = file
				faces = append(faces, f)
			}
		}
	}

	return faces, nil
}

func loadFaceFile(path string) ([]Face, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	var faces []Face
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expected \"<name> <glyph>\", got %q", path, lineNo, line)
		}
		faces = append(faces, Face{Name: fields[0], Glyph: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan file %s: %w", path, err)
	}

	return faces, nil
}
