package catalog

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const idRandomLen = 9

// NewID joins the creation time in milliseconds with a short random
// base36 suffix. Collisions are unlikely, not impossible.
func NewID(now time.Time) string {
	u := uuid.New()
	suffix := strconv.FormatUint(binary.BigEndian.Uint64(u[:8]), 36)
	if len(suffix) > idRandomLen {
		suffix = suffix[:idRandomLen]
	}
	return strconv.FormatInt(now.UnixMilli(), 10) + "-" + suffix
}
