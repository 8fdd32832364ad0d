package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/autofeed/pkg/domain"
	"github.com/umputun/autofeed/pkg/service"
)

// legacyFeedRequest is the flat create request of the original web form
type legacyFeedRequest struct {
	ServerID        string `json:"serverId"`
	ChannelID       string `json:"channelId"`
	IntervalMinutes int    `json:"intervalMinutes"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Color           string `json:"color"`
	ThumbnailURL    string `json:"thumbnailUrl"`
	FooterText      string `json:"footerText"`
}

// statusHandler returns server status with feed counters
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.feeds.Status(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	active, running := 0, 0
	for _, f := range feeds {
		if f.Active {
			active++
		}
		if f.Running {
			running++
		}
	}
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
		"feeds":   map[string]int{"total": len(feeds), "active": active, "running": running},
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listFeedsHandler returns all feeds with running flag
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.feeds.Status(r.Context())
	if err != nil {
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, feeds)
}

func (s *Server) getFeedHandler(w http.ResponseWriter, r *http.Request) {
	feed, err := s.feeds.GetFeed(r.Context(), r.PathValue("id"))
	if err != nil {
		renderFeedError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, feed)
}

func (s *Server) createFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req service.FeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	feed, err := s.feeds.CreateFeed(r.Context(), req)
	if err != nil {
		renderFeedError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusCreated, feed)
}

func (s *Server) updateFeedHandler(w http.ResponseWriter, r *http.Request) {
	var req service.FeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	feed, err := s.feeds.UpdateFeed(r.Context(), r.PathValue("id"), req)
	if err != nil {
		renderFeedError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, feed)
}

func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ok, err := s.feeds.DeleteFeed(r.Context(), id)
	if err != nil {
		renderFeedError(w, r, err)
		return
	}
	if !ok {
		renderFeedError(w, r, fmt.Errorf("delete feed %s: %w", id, domain.ErrFeedNotFound))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) toggleFeedHandler(w http.ResponseWriter, r *http.Request) {
	feed, err := s.feeds.ToggleFeed(r.Context(), r.PathValue("name"))
	if err != nil {
		renderFeedError(w, r, err)
		return
	}
	renderJSON(w, r, http.StatusOK, feed)
}

// sendFeedHandler delivers the feed right away and reports the outcome
func (s *Server) sendFeedHandler(w http.ResponseWriter, r *http.Request) {
	res, err := s.feeds.SendNow(r.Context(), r.PathValue("id"))
	if err != nil {
		renderFeedError(w, r, err)
		return
	}
	resp := map[string]any{"feedId": res.FeedID, "delivered": res.Delivered, "skipped": res.Skipped}
	if res.Err != nil {
		resp["error"] = res.Err.Error()
	}
	renderJSON(w, r, http.StatusOK, resp)
}

// legacyCreateHandler accepts the flat create request and fills its defaults
func (s *Server) legacyCreateHandler(w http.ResponseWriter, r *http.Request) {
	var req legacyFeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return
	}
	if req.ChannelID == "" || req.IntervalMinutes == 0 {
		renderError(w, r, fmt.Errorf("missing required fields: channelId, intervalMinutes"), http.StatusBadRequest)
		return
	}
	if req.ServerID == "" {
		req.ServerID = "unknown"
	}

	payload := domain.Payload{
		Title:       withDefault(req.Title, "Autofeed Message"),
		Description: withDefault(req.Description, "This is an automated message"),
		Color:       withDefault(req.Color, "#3b82f6"),
		Thumbnail:   req.ThumbnailURL,
		Footer:      req.FooterText,
	}
	feed, err := s.feeds.CreateFeed(r.Context(), service.FeedRequest{
		IntervalMinutes: req.IntervalMinutes,
		Destination:     req.ChannelID,
		Payload:         payload,
	})
	if err != nil {
		renderFeedError(w, r, err)
		return
	}
	lgr.Printf("[DEBUG] legacy feed %s created for server %s", feed.ID, req.ServerID)
	renderJSON(w, r, http.StatusOK, map[string]any{"success": true, "feedId": feed.ID, "feedName": feed.Name})
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// renderFeedError maps feed service errors to http status codes
func renderFeedError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case domain.IsValidation(err):
		renderError(w, r, err, http.StatusBadRequest)
	case errors.Is(err, domain.ErrFeedNotFound):
		renderError(w, r, err, http.StatusNotFound)
	default:
		lgr.Printf("[ERROR] %s %s failed: %v", r.Method, r.URL.Path, err)
		renderError(w, r, err, http.StatusInternalServerError)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
