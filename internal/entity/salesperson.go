package entity

import (
	"context"
	"time"
)

type Salesperson struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Department string    `json:"department,omitempty"`
	Region     string    `json:"region,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type SalespersonRepositoryInterface interface {
	Upsert(ctx context.Context, p *Salesperson) error
	List(ctx context.Context) ([]Salesperson, error)
	Delete(ctx context.Context, id string) error
}
