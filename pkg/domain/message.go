package domain

import "time"

// Message is a rendered payload ready to be handed to a sender
type Message struct {
	Title       string
	TitleURL    string
	Description string
	Color       int  // 0xRRGGBB
	HasColor    bool // color was set explicitly
	Thumbnail   string
	Footer      string
	Timestamp   time.Time
	HTML        string // sanitized html rendition for html-capable transports
}
