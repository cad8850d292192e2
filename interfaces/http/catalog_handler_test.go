package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"yt-catalog/domain/dto"
	"yt-catalog/domain/model"
	httpHandler "yt-catalog/interfaces/http"
	"yt-catalog/server"
)

type MockImporterUseCase struct {
	mock.Mock
}

func (m *MockImporterUseCase) ImportChannel(ctx context.Context, req *dto.ImportChannelRequest) (*dto.ImportChannelResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ImportChannelResponse), args.Error(1)
}

func (m *MockImporterUseCase) Catalog() model.Catalog {
	args := m.Called()
	return args.Get(0).(model.Catalog)
}

func (m *MockImporterUseCase) ChannelVideos(channelID string) (*model.ChannelVideos, bool) {
	args := m.Called(channelID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*model.ChannelVideos), args.Bool(1)
}

func newTestRouter(importer *MockImporterUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return server.InitiateRouter(httpHandler.NewCatalogHandler(importer))
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestImportChannelHandler(t *testing.T) {
	importer := new(MockImporterUseCase)
	importer.On("ImportChannel", mock.Anything, &dto.ImportChannelRequest{ChannelName: "blogilates"}).
		Return(&dto.ImportChannelResponse{ChannelID: "UC123", VideoCount: 7}, nil).Once()

	rec := performRequest(newTestRouter(importer), http.MethodPost, "/api/catalog/import",
		`{"channelName": "blogilates"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var res dto.ImportChannelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "UC123", res.ChannelID)
	assert.Equal(t, 7, res.VideoCount)
	importer.AssertExpectations(t)
}

func TestImportChannelHandler_BadBody(t *testing.T) {
	importer := new(MockImporterUseCase)
	router := newTestRouter(importer)

	rec := performRequest(router, http.MethodPost, "/api/catalog/import", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// channelName is required by the binding.
	rec = performRequest(router, http.MethodPost, "/api/catalog/import", `{"channelId": "UC123"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	importer.AssertNotCalled(t, "ImportChannel", mock.Anything, mock.Anything)
}

func TestImportChannelHandler_ErrorStatuses(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "unknown channel",
			err:  fmt.Errorf("failed to resolve channel id: %w", &model.NotFoundError{Kind: "channel", ID: "nobody"}),
			want: http.StatusNotFound,
		},
		{
			name: "bad published-after date",
			err:  fmt.Errorf("failed to list channel videos: %w", &model.InvalidDateFormatError{Value: "2020-13-40"}),
			want: http.StatusBadRequest,
		},
		{
			name: "upstream api failure",
			err:  fmt.Errorf("failed to fetch video abc: %w", &model.APIRequestError{StatusCode: 403, Message: "quotaExceeded"}),
			want: http.StatusBadGateway,
		},
		{
			name: "malformed upstream payload",
			err:  fmt.Errorf("failed to fetch video abc: %w", &model.MalformedResponseError{Endpoint: "videos", Reason: "missing snippet"}),
			want: http.StatusBadGateway,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			importer := new(MockImporterUseCase)
			importer.On("ImportChannel", mock.Anything, mock.Anything).Return(nil, c.err).Once()

			rec := performRequest(newTestRouter(importer), http.MethodPost, "/api/catalog/import",
				`{"channelName": "blogilates"}`)

			assert.Equal(t, c.want, rec.Code)
			importer.AssertExpectations(t)
		})
	}
}

func TestGetCatalogHandler(t *testing.T) {
	importer := new(MockImporterUseCase)
	importer.On("Catalog").Return(model.Catalog{
		"UC123": {
			ChannelName: "blogilates",
			Videos: map[string]model.VideoRecord{
				"abc": {Title: "workout", PublishedAt: "2020-12-05T10:00:00Z"},
			},
		},
	}).Once()

	rec := performRequest(newTestRouter(importer), http.MethodGet, "/api/catalog", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var catalog map[string]model.ChannelVideos
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	require.Contains(t, catalog, "UC123")
	assert.Equal(t, "blogilates", catalog["UC123"].ChannelName)
	assert.Equal(t, "workout", catalog["UC123"].Videos["abc"].Title)
	importer.AssertExpectations(t)
}

func TestGetChannelVideosHandler(t *testing.T) {
	importer := new(MockImporterUseCase)
	importer.On("ChannelVideos", "UC123").Return(&model.ChannelVideos{
		ChannelName: "blogilates",
		Videos:      map[string]model.VideoRecord{},
	}, true).Once()

	rec := performRequest(newTestRouter(importer), http.MethodGet, "/api/catalog/UC123", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var entry model.ChannelVideos
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.Equal(t, "blogilates", entry.ChannelName)
	importer.AssertExpectations(t)
}

func TestGetChannelVideosHandler_NotFound(t *testing.T) {
	importer := new(MockImporterUseCase)
	importer.On("ChannelVideos", "UC999").Return(nil, false).Once()

	rec := performRequest(newTestRouter(importer), http.MethodGet, "/api/catalog/UC999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	importer.AssertExpectations(t)
}

func TestHealthEndpoint(t *testing.T) {
	rec := performRequest(newTestRouter(new(MockImporterUseCase)), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
