package model

import "time"

// VideoRecord holds the imported metadata for a single video.
type VideoRecord struct {
	Title       string        `json:"title"`
	PublishedAt string        `json:"published_at"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	Tags        []string      `json:"tags,omitempty"`
	Duration    time.Duration `json:"duration"`
	RawDuration string        `json:"raw_duration"`
}

// ChannelVideos is one channel's catalog entry: the display name the import
// was requested with and every video record keyed by video identifier.
type ChannelVideos struct {
	ChannelName string                 `json:"channel_name"`
	Videos      map[string]VideoRecord `json:"videos"`
}

// Catalog maps channel identifiers to their imported video sets. Entries are
// created or replaced wholesale by an import; a Videos map is never mutated
// after it is installed.
type Catalog map[string]*ChannelVideos
