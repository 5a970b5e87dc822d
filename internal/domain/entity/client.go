package entity

import "time"

// Client representa un cliente al que se le vende.
type Client struct {
	ID        string
	Name      string
	Document  string // CPF o CNPJ
	Email     string
	Phone     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
