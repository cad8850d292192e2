package dto

// PageInfo is the paging block list responses carry.
type PageInfo struct {
	TotalResults   int64 `json:"totalResults"`
	ResultsPerPage int64 `json:"resultsPerPage"`
}

// ChannelListResponse is the channels endpoint payload (part=id).
type ChannelListResponse struct {
	PageInfo PageInfo      `json:"pageInfo"`
	Items    []ChannelItem `json:"items"`
}

type ChannelItem struct {
	ID string `json:"id"`
}

// SearchListResponse is the search endpoint payload (part=id, type=video).
type SearchListResponse struct {
	PageInfo      PageInfo     `json:"pageInfo"`
	NextPageToken string       `json:"nextPageToken"`
	Items         []SearchItem `json:"items"`
}

type SearchItem struct {
	ID SearchItemID `json:"id"`
}

type SearchItemID struct {
	VideoID string `json:"videoId"`
}

// VideoListResponse is the videos endpoint payload (part=snippet,contentDetails).
// Snippet and ContentDetails are pointers so a response that omits a part is
// distinguishable from one carrying zero values.
type VideoListResponse struct {
	Items []VideoItem `json:"items"`
}

type VideoItem struct {
	Snippet        *VideoSnippet        `json:"snippet"`
	ContentDetails *VideoContentDetails `json:"contentDetails"`
}

type VideoSnippet struct {
	Title       string   `json:"title"`
	PublishedAt string   `json:"publishedAt"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type VideoContentDetails struct {
	Duration string `json:"duration"`
}

// APIErrorBody is the structured error document the API returns alongside
// non-success statuses.
type APIErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
