package models

import "time"

// Template — modelo de mensagem de outreach. O corpo pode conter o
// placeholder {nome}, substituído só em memória na hora do contato.
type Template struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Titulo    string    `json:"titulo"`
	Corpo     string    `json:"corpo"`
	CreatedAt time.Time `json:"created_at"`
}
