package domain

import "time"

type Client struct {
	ID        string
	Name      string
	PAN       string
	Services  []Service
	CreatedAt time.Time
}

// Subscribes reports whether the client has signed up for svc.
func (c *Client) Subscribes(svc Service) bool {
	for _, s := range c.Services {
		if s == svc {
			return true
		}
	}
	return false
}
