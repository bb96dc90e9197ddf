package model

import "time"

// User is a reference table owned by another service; only id lookups happen here.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	UserName  string    `json:"userName"`
	CreatedAt time.Time `json:"createdAt"`
}
