package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/autofeed/pkg/delivery"
	"github.com/umputun/autofeed/pkg/domain"
	"github.com/umputun/autofeed/pkg/service"
	"github.com/umputun/autofeed/server/mocks"
)

func serve(t *testing.T, feeds *mocks.FeedServiceMock, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	srv := New(testConfig(":8080", ""), feeds, "1.2.3", false)
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func notFound(id string) error {
	return fmt.Errorf("get feed %s: %w", id, domain.ErrFeedNotFound)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func TestServer_statusHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{
		StatusFunc: func(ctx context.Context) ([]domain.FeedStatus, error) {
			return []domain.FeedStatus{
				{Feed: domain.Feed{ID: "1", Active: true}, Running: true},
				{Feed: domain.Feed{ID: "2", Active: true}, Running: false},
				{Feed: domain.Feed{ID: "3", Active: false}},
			}, nil
		},
	}
	w := serve(t, feeds, http.MethodGet, "/api/v1/status", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status struct {
		Status  string         `json:"status"`
		Version string         `json:"version"`
		Time    time.Time      `json:"time"`
		Feeds   map[string]int `json:"feeds"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.2.3", status.Version)
	assert.False(t, status.Time.IsZero())
	assert.Equal(t, map[string]int{"total": 3, "active": 2, "running": 1}, status.Feeds)

	feeds.StatusFunc = func(ctx context.Context) ([]domain.FeedStatus, error) { return nil, errors.New("db down") }
	w = serve(t, feeds, http.MethodGet, "/api/v1/status", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_listFeedsHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{
		StatusFunc: func(ctx context.Context) ([]domain.FeedStatus, error) {
			return []domain.FeedStatus{{Feed: domain.Feed{ID: "1", Name: "Ping", IntervalMinutes: 5, Active: true}, Running: true}}, nil
		},
	}
	w := serve(t, feeds, http.MethodGet, "/api/v1/feeds", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Ping", resp[0]["name"])
	assert.InDelta(t, 5, resp[0]["intervalMinutes"], 0)
	assert.Equal(t, true, resp[0]["running"])
	assert.Nil(t, resp[0]["lastDeliveredAt"])
}

func TestServer_getFeedHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{
		GetFeedFunc: func(ctx context.Context, id string) (domain.Feed, error) {
			if id == "f1" {
				return domain.Feed{ID: "f1", Name: "Ping"}, nil
			}
			return domain.Feed{}, notFound(id)
		},
	}
	w := serve(t, feeds, http.MethodGet, "/api/v1/feeds/f1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var feed domain.Feed
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Equal(t, "Ping", feed.Name)

	w = serve(t, feeds, http.MethodGet, "/api/v1/feeds/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeError(t, w), "feed not found")
}

func TestServer_createFeedHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		wantCalls  int
	}{
		{name: "created", body: `{"name":"Ping","intervalMinutes":1,"destination":"chan-1","payload":{"description":"hi"}}`,
			wantStatus: http.StatusCreated, wantCalls: 1},
		{name: "bad body", body: `{"name":`, wantStatus: http.StatusBadRequest},
		{name: "validation", body: `{"name":"Ping","intervalMinutes":0}`,
			createErr:  &domain.ValidationError{Field: "intervalMinutes", Msg: "must be at least 1"},
			wantStatus: http.StatusBadRequest, wantCalls: 1},
		{name: "internal", body: `{"name":"Ping","intervalMinutes":1}`, createErr: errors.New("disk full"),
			wantStatus: http.StatusInternalServerError, wantCalls: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feeds := &mocks.FeedServiceMock{
				CreateFeedFunc: func(ctx context.Context, req service.FeedRequest) (domain.Feed, error) {
					if tt.createErr != nil {
						return domain.Feed{}, tt.createErr
					}
					return domain.Feed{ID: "f1", Name: req.Name, IntervalMinutes: req.IntervalMinutes,
						Destination: req.Destination, Payload: req.Payload, Active: true}, nil
				},
			}
			w := serve(t, feeds, http.MethodPost, "/api/v1/feeds", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			require.Len(t, feeds.CreateFeedCalls(), tt.wantCalls)
			if tt.wantStatus != http.StatusCreated {
				assert.NotEmpty(t, decodeError(t, w))
				return
			}
			req := feeds.CreateFeedCalls()[0].Req
			assert.Equal(t, "Ping", req.Name)
			assert.Equal(t, "chan-1", req.Destination)
			assert.Equal(t, "hi", req.Payload.Description)
			assert.Nil(t, req.Active)
		})
	}
}

func TestServer_updateFeedHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{
		UpdateFeedFunc: func(ctx context.Context, id string, req service.FeedRequest) (domain.Feed, error) {
			if id != "f1" {
				return domain.Feed{}, notFound(id)
			}
			return domain.Feed{ID: id, Name: req.Name, IntervalMinutes: req.IntervalMinutes}, nil
		},
	}
	w := serve(t, feeds, http.MethodPut, "/api/v1/feeds/f1", `{"name":"Ping","intervalMinutes":7,"active":false}`)
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, feeds.UpdateFeedCalls(), 1)
	call := feeds.UpdateFeedCalls()[0]
	assert.Equal(t, "f1", call.ID)
	assert.Equal(t, 7, call.Req.IntervalMinutes)
	require.NotNil(t, call.Req.Active)
	assert.False(t, *call.Req.Active)

	w = serve(t, feeds, http.MethodPut, "/api/v1/feeds/nope", `{"intervalMinutes":7}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, feeds, http.MethodPut, "/api/v1/feeds/f1", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_deleteFeedHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{
		DeleteFeedFunc: func(ctx context.Context, id string) (bool, error) {
			switch id {
			case "f1":
				return true, nil
			case "broken":
				return false, errors.New("save failed")
			}
			return false, nil
		},
	}
	w := serve(t, feeds, http.MethodDelete, "/api/v1/feeds/f1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = serve(t, feeds, http.MethodDelete, "/api/v1/feeds/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, feeds, http.MethodDelete, "/api/v1/feeds/broken", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Len(t, feeds.DeleteFeedCalls(), 3)
}

func TestServer_toggleFeedHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{
		ToggleFeedFunc: func(ctx context.Context, name string) (domain.Feed, error) {
			if name != "Ping" {
				return domain.Feed{}, fmt.Errorf("find feed %q: %w", name, domain.ErrFeedNotFound)
			}
			return domain.Feed{ID: "f1", Name: name, Active: false}, nil
		},
	}
	w := serve(t, feeds, http.MethodPost, "/api/v1/feeds/Ping/toggle", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var feed domain.Feed
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.False(t, feed.Active)

	w = serve(t, feeds, http.MethodPost, "/api/v1/feeds/Other/toggle", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_sendFeedHandler(t *testing.T) {
	feeds := &mocks.FeedServiceMock{
		SendNowFunc: func(ctx context.Context, id string) (delivery.Outcome, error) {
			switch id {
			case "f1":
				return delivery.Outcome{FeedID: id, Delivered: true}, nil
			case "f2":
				return delivery.Outcome{FeedID: id, Err: &domain.DeliveryFailure{FeedID: id, Destination: "x", Stage: "resolve"}}, nil
			}
			return delivery.Outcome{}, notFound(id)
		},
	}

	w := serve(t, feeds, http.MethodPost, "/api/v1/feeds/f1/send", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"feedId":"f1","delivered":true,"skipped":false}`, w.Body.String())

	w = serve(t, feeds, http.MethodPost, "/api/v1/feeds/f2/send", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["delivered"])
	assert.Contains(t, resp["error"], "failed at resolve")

	w = serve(t, feeds, http.MethodPost, "/api/v1/feeds/nope/send", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_legacyCreateHandler(t *testing.T) {
	created := func(ctx context.Context, req service.FeedRequest) (domain.Feed, error) {
		return domain.Feed{ID: "f1", Name: "Web Feed 1700000000000", IntervalMinutes: req.IntervalMinutes,
			Destination: req.Destination, Payload: req.Payload, Active: true}, nil
	}

	t.Run("defaults", func(t *testing.T) {
		feeds := &mocks.FeedServiceMock{CreateFeedFunc: created}
		w := serve(t, feeds, http.MethodPost, "/api/autofeed", `{"serverId":"g1","channelId":"chan-1","intervalMinutes":5}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true,"feedId":"f1","feedName":"Web Feed 1700000000000"}`, w.Body.String())

		require.Len(t, feeds.CreateFeedCalls(), 1)
		req := feeds.CreateFeedCalls()[0].Req
		assert.Empty(t, req.Name)
		assert.Equal(t, 5, req.IntervalMinutes)
		assert.Equal(t, "chan-1", req.Destination)
		assert.Equal(t, domain.Payload{Title: "Autofeed Message", Description: "This is an automated message",
			Color: "#3b82f6"}, req.Payload)
	})

	t.Run("all fields", func(t *testing.T) {
		feeds := &mocks.FeedServiceMock{CreateFeedFunc: created}
		body := `{"channelId":"chan-2","intervalMinutes":1,"title":"T","description":"D","color":"#ff0000",
			"thumbnailUrl":"https://example.com/t.png","footerText":"F"}`
		w := serve(t, feeds, http.MethodPost, "/api/autofeed", body)
		assert.Equal(t, http.StatusOK, w.Code)
		req := feeds.CreateFeedCalls()[0].Req
		assert.Equal(t, domain.Payload{Title: "T", Description: "D", Color: "#ff0000",
			Thumbnail: "https://example.com/t.png", Footer: "F"}, req.Payload)
	})

	t.Run("missing fields", func(t *testing.T) {
		feeds := &mocks.FeedServiceMock{CreateFeedFunc: created}
		w := serve(t, feeds, http.MethodPost, "/api/autofeed", `{"channelId":"chan-1"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "missing required fields: channelId, intervalMinutes", decodeError(t, w))
		assert.Empty(t, feeds.CreateFeedCalls())
	})

	t.Run("negative interval", func(t *testing.T) {
		feeds := &mocks.FeedServiceMock{
			CreateFeedFunc: func(ctx context.Context, req service.FeedRequest) (domain.Feed, error) {
				return domain.Feed{}, &domain.ValidationError{Field: "intervalMinutes", Msg: "must be at least 1"}
			},
		}
		w := serve(t, feeds, http.MethodPost, "/api/autofeed", `{"channelId":"chan-1","intervalMinutes":-1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid intervalMinutes: must be at least 1", decodeError(t, w))
	})
}

func TestRenderJSON(t *testing.T) {
	w := httptest.NewRecorder()
	renderJSON(w, nil, http.StatusAccepted, map[string]string{"k": "v"})
	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"k":"v"}`, w.Body.String())

	w = httptest.NewRecorder()
	renderError(w, nil, nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}
