package entities

import (
	"fmt"
	"math/rand"
	"time"
)

// NewProtocol builds the human-readable reference shown to payers:
// <PREFIX>-<YYYYMMDD>-<4 random digits>, e.g. EVT-20260830-4821.
//
// The protocol is a display reference, not a key: the 4-digit suffix may
// collide across transactions and uniqueness is enforced on Transaction.ID.
func NewProtocol(entityType EntityType, now time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", entityType.ProtocolPrefix(), now.UTC().Format("20060102"), rand.Intn(10000))
}
