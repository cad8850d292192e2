package dto

// ImportChannelRequest is the payload for a channel import.
type ImportChannelRequest struct {
	ChannelName    string `json:"channelName" binding:"required"`
	ChannelID      string `json:"channelId"`
	PublishedAfter string `json:"publishedAfter"`
}

// ImportChannelResponse summarizes a finished import.
type ImportChannelResponse struct {
	ChannelID  string `json:"channelId"`
	VideoCount int    `json:"videoCount"`
}
