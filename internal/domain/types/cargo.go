package types

import "time"

// CargoItem is one line of medical-supply inventory.
type CargoItem struct {
	ID          CargoID   `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit,omitempty"`
	Description string    `json:"description,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
