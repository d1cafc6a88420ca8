package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewEndpointID identifies one live transport connection.
func NewEndpointID() string {
	return uuid.NewString()
}

// NewCallID builds the correlation id stamped on a push wakeup. It only has
// to be collision-avoidant across offer attempts, not cryptographically
// unique.
func NewCallID() string {
	return fmt.Sprintf("call-%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
