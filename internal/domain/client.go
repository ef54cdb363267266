package domain

import (
	"fmt"
	"strings"
	"time"
)

// Client is a customer record. Projects keep their own copy of the client's
// name and colour, so removing a client never touches projects.
type Client struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	Color     string    `json:"color" yaml:"color"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("client name is required")
	}
	return nil
}
