package envloader

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LoadEnv loads environment variables from the first .env file found in the
// current directory, the executable directory or up to 3 parents of the
// current directory. It returns the path loaded, or "" when there was none.
func LoadEnv() (string, error) {
	envPath := findEnvFile()
	if envPath == "" {
		// No .env file found, that's okay - use environment variables directly
		return "", nil
	}
	return envPath, LoadEnvFile(envPath)
}

// LoadEnvFile sets every KEY=VALUE pair in path. Values from the file win
// over the existing environment.
func LoadEnvFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open .env file: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := parseLine(scanner.Text())
		if !ok {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s: %w", key, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading .env file: %w", err)
	}
	return nil
}

// parseLine splits one .env line. Blank lines, comments and lines without
// '=' are skipped.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")

	key, value, found := strings.Cut(line, "=")
	if !found {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)
	if key == "" {
		return "", "", false
	}

	// Remove quotes if present
	if len(value) >= 2 {
		if (strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
			(strings.HasPrefix(value, `'`) && strings.HasSuffix(value, `'`)) {
			value = value[1 : len(value)-1]
		}
	}
	return key, value, true
}

// findEnvFile looks for .env file in current directory and parent directories
func findEnvFile() string {
	cwd, err := os.Getwd()
	if err == nil {
		if p := envFileIn(cwd); p != "" {
			return p
		}
	}

	if exe, err := os.Executable(); err == nil {
		if p := envFileIn(filepath.Dir(exe)); p != "" {
			return p
		}
	}

	if cwd != "" {
		dir := cwd
		for i := 0; i < 3; i++ {
			parent := filepath.Dir(dir)
			if parent == dir {
				break // Reached root
			}
			dir = parent
			if p := envFileIn(dir); p != "" {
				return p
			}
		}
	}

	return ""
}

func envFileIn(dir string) string {
	envPath := filepath.Join(dir, ".env")
	if info, err := os.Stat(envPath); err == nil && !info.IsDir() {
		return envPath
	}
	return ""
}
