package domain

import "time"

type Customer struct {
	ID        ID
	Name      string
	Email     string
	CreatedAt time.Time
}

func NewCustomer(name, email string) *Customer {
	return &Customer{
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}
}
