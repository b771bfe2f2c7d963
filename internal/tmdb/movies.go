package tmdb

import (
	"context"
	"fmt"
	"net/url"

	"github.com/goccy/go-json"

	"moviedash/internal/domain"
)

type popularResponse struct {
	Page         int            `json:"page"`
	Results      []domain.Movie `json:"results"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int            `json:"total_results"`
}

type genreListResponse struct {
	Genres []domain.Genre `json:"genres"`
}

// PopularMovies returns the first results page of popular movies.
func (c *Client) PopularMovies(ctx context.Context, locale domain.Locale) ([]domain.Movie, error) {
	query := url.Values{}
	query.Set("language", locale.String())
	query.Set("page", "1")

	body, err := c.get(ctx, "/movie/popular", query)
	if err != nil {
		return nil, wrapError("popular", locale, err)
	}

	var resp popularResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("popular", locale, fmt.Errorf("parse response: %w", err))
	}

	movies := resp.Results
	if movies == nil {
		movies = []domain.Movie{}
	}
	return movies, nil
}

// Genres returns the movie genre list with names in the given locale.
func (c *Client) Genres(ctx context.Context, locale domain.Locale) ([]domain.Genre, error) {
	query := url.Values{}
	query.Set("language", locale.String())

	body, err := c.get(ctx, "/genre/movie/list", query)
	if err != nil {
		return nil, wrapError("genres", locale, err)
	}

	var resp genreListResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, wrapError("genres", locale, fmt.Errorf("parse response: %w", err))
	}

	genres := resp.Genres
	if genres == nil {
		genres = []domain.Genre{}
	}
	return genres, nil
}
