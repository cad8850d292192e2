package configuration

import "os"

// YouTubeConfig carries the resolved YouTube API settings handed to the
// client constructor. The client never reads configuration state itself.
type YouTubeConfig struct {
	APIKey           string
	APIKeyFile       string
	BaseURL          string
	WatchURL         string
	TimeoutSeconds   int
	DescriptionLimit int
	FetchConcurrency int
}

// GetYouTubeConfig returns YouTube configuration from the JSON config with
// environment variable fallback.
func GetYouTubeConfig() *YouTubeConfig {
	return &YouTubeConfig{
		APIKey:           getConfigValue(C.YouTube.APIKey, "YOUTUBE_API_KEY", ""),
		APIKeyFile:       getConfigValue(C.YouTube.APIKeyFile, "YOUTUBE_API_KEY_FILE", ""),
		BaseURL:          getConfigValue(C.YouTube.BaseURL, "YOUTUBE_BASE_URL", ""),
		WatchURL:         getConfigValue(C.YouTube.WatchURL, "YOUTUBE_WATCH_URL", ""),
		TimeoutSeconds:   C.YouTube.TimeoutSeconds,
		DescriptionLimit: C.YouTube.DescriptionLimit,
		FetchConcurrency: C.YouTube.FetchConcurrency,
	}
}

// getConfigValue gets value from the environment first, then the config
// file, then the default.
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configValue != "" {
		return configValue
	}
	return defaultValue
}
