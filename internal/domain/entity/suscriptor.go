package entity

import "time"

// Suscriptor es un email inscripto al newsletter. Email es único y el alta
// es idempotente: re-suscribirse no es un error.
type Suscriptor struct {
	ID        string
	Email     string // único
	CreatedAt time.Time
}
