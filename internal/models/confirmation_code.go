package models

import "time"

// Código gerado pelo barbeiro para liberar cadastro de cliente
type ConfirmationCode struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Code string `gorm:"size:12;uniqueIndex;not null" json:"code"`
	Used bool   `gorm:"default:false" json:"used"`

	CreatedAt time.Time `json:"created_at"`
}
