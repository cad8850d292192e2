package configuration

import (
	"bufio"
	"os"
	"strings"

	"yt-catalog/infrastructure/logger"
)

// LoadEnvFromFile reads KEY=VALUE pairs from the given files into the process
// environment. Missing files are skipped silently so config.env and .env stay
// optional. Variables already present in the environment win over file values.
func LoadEnvFromFile(paths ...string) {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		loaded := 0
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			key, value, ok := parseEnvLine(scanner.Text())
			if !ok {
				continue
			}
			if _, exists := os.LookupEnv(key); exists {
				continue
			}
			if os.Setenv(key, value) == nil {
				loaded++
			}
		}
		_ = f.Close()
		logger.GetLogger().
			WithField("file", path).
			WithField("variables", loaded).
			Debug("Environment file loaded")
	}
}

// parseEnvLine handles comments, blank lines, an optional "export " prefix
// and single or double quoted values.
func parseEnvLine(line string) (string, string, bool) {
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
	if key == "" {
		return "", "", false
	}
	value = strings.Trim(strings.TrimSpace(value), `"'`)
	return key, value, true
}
