package models

import "time"

// Product event types published after a change is committed.
const (
	EventProductCreated = "produto.criado"
	EventProductUpdated = "produto.atualizado"
	EventProductDeleted = "produto.removido"
)

// ProductEvent describes a committed change to a product.
type ProductEvent struct {
	Type       string    `json:"type"`
	ProductID  uint      `json:"produto_id"`
	Product    *Product  `json:"produto,omitempty"` // nil for deletions
	OccurredAt time.Time `json:"occurred_at"`
}
