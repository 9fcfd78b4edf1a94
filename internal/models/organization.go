package models

import "time"

// Organization — registro de cliente/assinatura gerido fora daqui;
// o dashboard só lê.
type Organization struct {
	ID                int       `json:"id"`
	Nome              string    `json:"nome"`
	SubscriptionValue *float64  `json:"subscription_value"` // nulo = sem assinatura
	Status            string    `json:"status"`             // active | inactive
	BotStatus         bool      `json:"bot_status"`
	CreatedAt         time.Time `json:"created_at"`
}
