package domain

import "time"

// Feed represents a recurring delivery job
type Feed struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	IntervalMinutes int        `json:"intervalMinutes"`
	Destination     string     `json:"destination"`
	Payload         Payload    `json:"payload"`
	Active          bool       `json:"active"`
	CreatedAt       time.Time  `json:"createdAt"`
	LastDeliveredAt *time.Time `json:"lastDeliveredAt"`
}

// Payload describes how a feed message is rendered, all fields are optional
type Payload struct {
	Title       string `json:"title,omitempty"`
	TitleURL    string `json:"titleUrl,omitempty"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"` // #RRGGBB
	Thumbnail   string `json:"thumbnail,omitempty"`
	Footer      string `json:"footer,omitempty"`
}

// Interval returns feed interval for the given unit, unit is time.Minute in production
func (f Feed) Interval(unit time.Duration) time.Duration {
	minutes := f.IntervalMinutes
	if minutes < 1 {
		minutes = 1
	}
	return time.Duration(minutes) * unit
}

// Clone returns a deep copy of the feed
func (f Feed) Clone() Feed {
	res := f
	if f.LastDeliveredAt != nil {
		ts := *f.LastDeliveredAt
		res.LastDeliveredAt = &ts
	}
	return res
}

// FeedStatus is a feed together with its runtime scheduler state
type FeedStatus struct {
	Feed
	Running bool `json:"running"`
}
