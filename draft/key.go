package draft

import (
	"strings"

	"github.com/google/uuid"
)

const keyLen = 5

// newKey returns a short random block key not present in taken.
func newKey(taken map[string]int) string {
	for {
		k := strings.ReplaceAll(uuid.NewString(), "-", "")[:keyLen]
		if _, ok := taken[k]; !ok {
			return k
		}
	}
}
