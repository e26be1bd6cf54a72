package publisher

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/nitinsinghh27/TDS-PR1/constants"
)

// RepoName converts a task identifier into a valid github repository name.
// The transform is a pure function of the task, so round 2 always resolves
// the repository created in round 1 without a lookup table.
func RepoName(task string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r == ' ' || r == '_':
			return '-'
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-':
			return r
		}
		return -1
	}, task)
	name = strings.Trim(name, "-")
	if len(name) > constants.MaxRepoNameLength {
		name = strings.Trim(name[:constants.MaxRepoNameLength], "-")
	}
	if name == "" {
		// nothing usable survived; still deterministic per task
		sum := sha256.Sum256([]byte(task))
		name = "task-" + hex.EncodeToString(sum[:6])
	}
	return name
}
