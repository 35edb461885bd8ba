package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"balanceed_backend/internal/config"
)

type YouTubeService struct {
	config config.YouTubeConfig
	client *http.Client
}

func NewYouTubeService(cfg config.YouTubeConfig) *YouTubeService {
	return &YouTubeService{
		config: cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type VideoSearchResult struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	Thumbnail    string `json:"thumbnail"`
	URL          string `json:"url"`
}

// SearchVideos queries the YouTube Data API for supplementary lesson videos.
func (s *YouTubeService) SearchVideos(ctx context.Context, query string, maxResults int) ([]VideoSearchResult, error) {
	if maxResults <= 0 || maxResults > 25 {
		maxResults = 10
	}

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("q", query)
	params.Set("type", "video")
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))
	params.Set("key", s.config.APIKey)

	endpoint := s.config.BaseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("YouTube API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title        string `json:"title"`
				Description  string `json:"description"`
				ChannelTitle string `json:"channelTitle"`
				Thumbnails   struct {
					Medium struct {
						URL string `json:"url"`
					} `json:"medium"`
				} `json:"thumbnails"`
			} `json:"snippet"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	videos := make([]VideoSearchResult, 0, len(result.Items))
	for _, item := range result.Items {
		if item.ID.VideoID == "" {
			continue
		}
		videos = append(videos, VideoSearchResult{
			VideoID:      item.ID.VideoID,
			Title:        item.Snippet.Title,
			Description:  item.Snippet.Description,
			ChannelTitle: item.Snippet.ChannelTitle,
			Thumbnail:    item.Snippet.Thumbnails.Medium.URL,
			URL:          "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		})
	}
	return videos, nil
}
