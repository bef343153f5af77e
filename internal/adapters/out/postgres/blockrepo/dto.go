// Package blockrepo persists shipment blocks.
package blockrepo

import (
	"time"

	"tracking/internal/core/domain/model/block"
)

type BlockDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (BlockDTO) TableName() string {
	return "blocks"
}

func fromDomain(b *block.Block) BlockDTO {
	return BlockDTO{ID: b.ID(), Name: b.Name(), CreatedAt: b.CreatedAt()}
}

func toDomain(dto BlockDTO) *block.Block {
	return block.RestoreBlock(dto.ID, dto.Name, dto.CreatedAt)
}
