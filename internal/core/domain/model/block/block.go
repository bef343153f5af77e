// Package block models shipment blocks: named groups of orders that travel
// together and therefore share one workflow status.
package block

import (
	"errors"
	"time"
)

// ErrBlockIsNotConstructed is returned when a Block bypassed NewBlock/RestoreBlock.
var ErrBlockIsNotConstructed = errors.New("Block must be created via NewBlock constructor")

// MinMembers is the smallest number of orders that form a block.
const MinMembers = 2

const namePrefix = "Bloque-"

// Block is a group of orders. ID is zero until persisted.
type Block struct {
	id        int64
	name      string
	createdAt time.Time

	isConstructed bool
}

// NewBlock names the block after its creation time, e.g. "Bloque-20261014-093000".
func NewBlock(now time.Time) *Block {
	return &Block{
		name:          namePrefix + now.Format("20060102-150405"),
		createdAt:     now,
		isConstructed: true,
	}
}

// RestoreBlock rebuilds a block from persistence.
func RestoreBlock(id int64, name string, createdAt time.Time) *Block {
	return &Block{id: id, name: name, createdAt: createdAt, isConstructed: true}
}

func (b *Block) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBlockIsNotConstructed
	}
	return nil
}

func (b *Block) ID() int64 { return b.id }

func (b *Block) Name() string { return b.name }

func (b *Block) CreatedAt() time.Time { return b.createdAt }

// AssignID is called by the repository once the row exists.
func (b *Block) AssignID(id int64) {
	b.id = id
}
