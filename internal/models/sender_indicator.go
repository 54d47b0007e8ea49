package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SenderIndicator is a configured sender tag that identifies a sector in the merchant stage
type SenderIndicator struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	SectorKey string    `gorm:"type:varchar(50);not null;index" json:"sector"`
	Indicator string    `gorm:"type:varchar(100);not null;uniqueIndex" json:"indicator"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	Note      string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (si *SenderIndicator) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

func (si *SenderIndicator) TableName() string {
	return "sender_indicators"
}

// Sector returns the parsed sector of the row, false if the stored key is not declared
func (si *SenderIndicator) Sector() (Sector, bool) {
	return ParseSector(si.SectorKey)
}
