package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"yt-catalog/domain/dto"
	"yt-catalog/domain/model"
	"yt-catalog/domain/repository"
	"yt-catalog/infrastructure/logger"

	"github.com/google/go-querystring/query"
)

const (
	defaultBaseURL          = "https://www.googleapis.com/youtube/v3"
	defaultWatchURL         = "https://www.youtube.com/watch"
	defaultTimeout          = 30 * time.Second
	defaultPageSize         = int64(50)
	defaultDescriptionLimit = 100
)

// Config represents YouTube Data API configuration. The credential is either
// given directly or read once from APIKeyFile at construction.
type Config struct {
	APIKey           string
	APIKeyFile       string
	BaseURL          string
	WatchURL         string
	Timeout          time.Duration
	DescriptionLimit int
}

// Client calls the YouTube Data API over plain HTTP GETs.
type Client struct {
	apiKey           string
	baseURL          string
	watchURL         string
	pageSize         int64
	descriptionLimit int
	httpClient       *http.Client
}

// NewClient creates a new YouTube API client. Returns an error when no
// credential can be resolved.
func NewClient(config *Config) (repository.IYouTube, error) {
	apiKey := config.APIKey
	if apiKey == "" && config.APIKeyFile != "" {
		raw, err := os.ReadFile(config.APIKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}
		apiKey = strings.TrimSpace(string(raw))
	}
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key is required")
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	watchURL := config.WatchURL
	if watchURL == "" {
		watchURL = defaultWatchURL
	}
	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	descriptionLimit := config.DescriptionLimit
	if descriptionLimit == 0 {
		descriptionLimit = defaultDescriptionLimit
	}

	return &Client{
		apiKey:           apiKey,
		baseURL:          strings.TrimRight(baseURL, "/"),
		watchURL:         watchURL,
		pageSize:         defaultPageSize,
		descriptionLimit: descriptionLimit,
		httpClient:       &http.Client{Timeout: timeout},
	}, nil
}

// ResolveChannelID retrieves the channel ID for a channel display name.
func (c *Client) ResolveChannelID(ctx context.Context, channelName string) (string, error) {
	logger.GetLogger().WithField("channel", channelName).Info("Resolving channel id")

	params := url.Values{}
	params.Set("forUsername", channelName)
	params.Set("part", "id")

	var res dto.ChannelListResponse
	if err := c.getJSON(ctx, "channels", params, &res); err != nil {
		return "", err
	}

	if res.PageInfo.TotalResults <= 0 || len(res.Items) == 0 {
		return "", &model.NotFoundError{Kind: "channel", ID: channelName}
	}
	if res.PageInfo.TotalResults > 1 {
		// One username should map to one channel; more matches means the
		// API behaved unexpectedly, not that the caller erred.
		logger.GetLogger().WithField("channel", channelName).Warn("Multiple channels matched one username; using the first")
	}
	return res.Items[0].ID, nil
}

// searchParams is the query surface of the search endpoint, encoded with
// go-querystring instead of string templating.
type searchParams struct {
	ChannelID      string `url:"channelId"`
	Part           string `url:"part"`
	Order          string `url:"order"`
	Type           string `url:"type"`
	MaxResults     int64  `url:"maxResults"`
	PublishedAfter string `url:"publishedAfter,omitempty"`
	PageToken      string `url:"pageToken,omitempty"`
}

// ListChannelVideoIDs pages through a channel's video listing, newest first,
// 50 per page. The first page's totalResults bounds the number of pages
// fetched regardless of continuation tokens.
func (c *Client) ListChannelVideoIDs(ctx context.Context, channelID, publishedAfter string) ([]string, error) {
	sp := searchParams{
		ChannelID:  channelID,
		Part:       "id",
		Order:      "date",
		Type:       "video",
		MaxResults: c.pageSize,
	}
	if publishedAfter != "" {
		day, err := time.Parse("2006-01-02", publishedAfter)
		if err != nil {
			return nil, &model.InvalidDateFormatError{Value: publishedAfter}
		}
		sp.PublishedAfter = day.UTC().Format(time.RFC3339)
	}

	var ids []string
	maxPages := 1
	for page := 1; ; page++ {
		params, err := query.Values(sp)
		if err != nil {
			return nil, fmt.Errorf("failed to encode search parameters: %w", err)
		}

		var res dto.SearchListResponse
		if err := c.getJSON(ctx, "search", params, &res); err != nil {
			return nil, err
		}
		if page == 1 {
			maxPages = int(math.Ceil(float64(res.PageInfo.TotalResults) / float64(c.pageSize)))
		}
		if len(res.Items) == 0 {
			break
		}
		for _, item := range res.Items {
			ids = append(ids, item.ID.VideoID)
		}
		// The page-count bound keeps a broken continuation token from
		// looping forever.
		if page >= maxPages || res.NextPageToken == "" {
			break
		}
		sp.PageToken = res.NextPageToken
	}

	logger.GetLogger().
		WithField("channel_id", channelID).
		WithField("videos", len(ids)).
		Debug("Channel listing finished")
	return ids, nil
}

// GetVideoDetail retrieves the detail record for a single video.
func (c *Client) GetVideoDetail(ctx context.Context, videoID string) (*model.VideoRecord, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails")
	params.Set("id", videoID)

	var res dto.VideoListResponse
	if err := c.getJSON(ctx, "videos", params, &res); err != nil {
		return nil, err
	}
	if len(res.Items) == 0 {
		// Deleted, private, or the identifier is simply wrong.
		return nil, &model.NotFoundError{Kind: "video", ID: videoID}
	}

	item := res.Items[0]
	if item.Snippet == nil {
		return nil, &model.MalformedResponseError{Endpoint: "videos", Reason: "item carries no snippet"}
	}

	record := &model.VideoRecord{
		Title:       item.Snippet.Title,
		PublishedAt: item.Snippet.PublishedAt,
		Description: truncate(item.Snippet.Description, c.descriptionLimit),
		Tags:        item.Snippet.Tags,
		URL:         c.watchVideoURL(videoID),
	}
	if item.ContentDetails != nil && item.ContentDetails.Duration != "" {
		d, err := model.ParseISODuration(item.ContentDetails.Duration)
		if err != nil {
			return nil, &model.MalformedResponseError{
				Endpoint: "videos",
				Reason:   fmt.Sprintf("unparseable duration %q", item.ContentDetails.Duration),
			}
		}
		record.Duration = d
		record.RawDuration = item.ContentDetails.Duration
	}
	return record, nil
}

// getJSON performs a GET against one API endpoint and decodes the JSON body
// into out. Non-success statuses decode the structured error document when
// possible and surface as *model.APIRequestError.
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	params.Set("key", c.apiKey)
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", endpoint, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", endpoint, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &model.APIRequestError{StatusCode: resp.StatusCode}
		var errBody dto.APIErrorBody
		if jsonErr := json.Unmarshal(body, &errBody); jsonErr == nil && errBody.Error.Message != "" {
			apiErr.Message = errBody.Error.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(body))
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &model.MalformedResponseError{Endpoint: endpoint, Reason: err.Error()}
	}
	return nil
}

// watchVideoURL derives the canonical watch URL for a video identifier.
func (c *Client) watchVideoURL(videoID string) string {
	v := url.Values{}
	v.Set("v", videoID)
	return c.watchURL + "?" + v.Encode()
}

// truncate keeps at most limit leading characters of s.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
