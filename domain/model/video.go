package model

import "time"

// Video is a reference table owned by another service; only id lookups happen here.
type Video struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	UploadDate time.Time `json:"uploadDate"`
}
