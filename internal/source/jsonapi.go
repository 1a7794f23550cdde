package source

//
// jsonapi.go
// Copyright (C) 2025 Karol Będkowski <Karol Będkowski@kkomp>
//
// Distributed under terms of the GPLv3 license.
//

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/render"
	"github.com/rs/zerolog"
	"gitlab.com/kabes/go-podcastr/internal/aerr"
	"gitlab.com/kabes/go-podcastr/internal/common"
	"gitlab.com/kabes/go-podcastr/internal/format"
)

const maxErrorBodySize = 512

// APIClient load episodes from json-server like REST api.
type APIClient struct {
	baseURL *url.URL
	client  *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) (*APIClient, error) {
	u, err := url.Parse(strings.TrimSuffix(baseURL, "/"))
	if err != nil {
		return nil, aerr.ApplyFor(aerr.ErrInvalidConf, err, "", "invalid api url")
	}

	return &APIClient{
		baseURL: u,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (a *APIClient) ListEpisodes(ctx context.Context, query ListQuery) ([]EpisodeRecord, error) {
	params := url.Values{}
	if query.Limit > 0 {
		params.Set("_limit", strconv.Itoa(query.Limit))
	}

	if query.Sort != "" {
		params.Set("_sort", query.Sort)
	}

	if query.Order != "" {
		params.Set("_order", query.Order)
	}

	var records []apiRecord
	if err := a.get(ctx, "episodes", params, &records); err != nil {
		return nil, err
	}

	res := make([]EpisodeRecord, 0, len(records))

	for _, r := range records {
		rec, err := r.toRecord()
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str(common.LogKeyEpisodeID, r.ID).Msg("skipping invalid episode")

			continue
		}

		res = append(res, rec)
	}

	return res, nil
}

func (a *APIClient) GetEpisode(ctx context.Context, id string) (EpisodeRecord, error) {
	if id == "" {
		return EpisodeRecord{}, common.ErrEmptyEpisodeID
	}

	var record apiRecord
	if err := a.get(ctx, "episodes/"+url.PathEscape(id), nil, &record); err != nil {
		return EpisodeRecord{}, err
	}

	return record.toRecord()
}

// HealthCheck check is api available.
func (a *APIClient) HealthCheck(ctx context.Context) error {
	var records []json.RawMessage

	return a.get(ctx, "episodes", url.Values{"_limit": {"1"}}, &records)
}

func (a *APIClient) get(ctx context.Context, path string, params url.Values, target any) error {
	logger := zerolog.Ctx(ctx)

	reqURL := a.baseURL.JoinPath(path)
	reqURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return aerr.Wrapf(err, "create request failed").WithTag(aerr.InternalError)
	}

	req.Header.Set("Accept", "application/json")

	start := time.Now()

	defer common.TraceRegion(ctx, "api request")()

	resp, err := a.client.Do(req)
	if err != nil {
		common.TraceErrorLazyPrintf(ctx, "source: get %s error: %s", path, err)

		return aerr.ApplyFor(aerr.ErrRemote, err).WithMeta("url", reqURL.String())
	}
	defer resp.Body.Close()

	common.TraceLazyPrintf(ctx, "source: get %s status: %d", path, resp.StatusCode)

	logger.Debug().Str("url", reqURL.String()).Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).Msg("api request finished")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return common.ErrUnknownEpisode.WithMeta("url", reqURL.String())
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

		return aerr.ErrRemote.WithMsg("unexpected response status %d", resp.StatusCode).
			WithMeta("url", reqURL.String(), "body", string(body))
	}

	if err := render.DecodeJSON(resp.Body, target); err != nil {
		return aerr.ApplyFor(common.ErrInvalidEpisode, err, "decode api response failed").
			WithMeta("url", reqURL.String())
	}

	return nil
}

//-------------------------------------------------------------

type apiRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Members     string `json:"members"`
	PublishedAt string `json:"published_at"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
	File        struct {
		URL      string       `json:"url"`
		Type     string       `json:"type"`
		Duration flexDuration `json:"duration"`
	} `json:"file"`
}

func (r *apiRecord) toRecord() (EpisodeRecord, error) {
	published, err := parseTimestamp(r.PublishedAt)
	if err != nil {
		return EpisodeRecord{}, aerr.ApplyFor(common.ErrInvalidEpisode, err, "invalid published_at").
			WithMeta("episode_id", r.ID, "published_at", r.PublishedAt)
	}

	rec := EpisodeRecord{
		ID:          r.ID,
		Title:       r.Title,
		Members:     r.Members,
		PublishedAt: published,
		Thumbnail:   r.Thumbnail,
		Description: r.Description,
		File: FileRecord{
			URL:      r.File.URL,
			Type:     r.File.Type,
			Duration: int(r.File.Duration),
		},
	}

	if err := rec.Validate(); err != nil {
		return EpisodeRecord{}, err
	}

	return rec, nil
}

// flexDuration accept number of seconds given as json number or string.
type flexDuration int

func (d *flexDuration) UnmarshalJSON(data []byte) error {
	value := strings.TrimSpace(string(data))
	if value == "null" {
		*d = 0

		return nil
	}

	if unq, err := strconv.Unquote(value); err == nil {
		value = unq
	}

	v, err := format.ParseDuration(value)
	if err != nil {
		return err //nolint:wrapcheck
	}

	*d = flexDuration(v)

	return nil
}

//nolint:gochecknoglobals
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseTimestamp parse ISO-like date; dates without zone are in UTC.
func parseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, aerr.ErrValidation.WithMsg("empty date")
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	if ts, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Unix(ts, 0).UTC(), nil
	}

	return time.Time{}, aerr.ErrValidation.WithMsg("invalid date %q", value)
}
