package avatar

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/oleksandr-romashko/goit-pythonweb-hw-12/internal/model"
)

// GravatarBaseURL prefixes every generated avatar.
const GravatarBaseURL = "https://www.gravatar.com/avatar/"

var _ model.AvatarResolver = (*Gravatar)(nil)

// Gravatar builds default avatar URLs from email addresses.
type Gravatar struct {
	size int
}

// NewGravatar creates a Gravatar resolver producing images of the given size.
func NewGravatar(size int) *Gravatar {
	if size <= 0 {
		size = 200
	}
	return &Gravatar{size: size}
}

// ResolveDefault returns the gravatar URL for email, or false when there is nothing to resolve.
func (g *Gravatar) ResolveDefault(email string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(email))
	if normalized == "" {
		return "", false
	}

	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("%s%s?d=identicon&s=%d", GravatarBaseURL, hex.EncodeToString(sum[:]), g.size), true
}

// IsGravatar reports whether url was generated by a Gravatar resolver.
func IsGravatar(url string) bool {
	return strings.HasPrefix(url, GravatarBaseURL)
}
