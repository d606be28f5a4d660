package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"strings"
)

// avatarColors are the background colors used for initials avatars.
var avatarColors = []string{
	"#1D4ED8", "#0F766E", "#B91C1C", "#7C3AED", "#C2410C",
	"#15803D", "#0369A1", "#A16207", "#BE185D", "#334155",
}

// GenerateAvatarWithInitials builds a DiceBear initials avatar URL for a
// newly registered customer.
func GenerateAvatarWithInitials(initials string) string {
	colorIndex, _ := rand.Int(rand.Reader, big.NewInt(int64(len(avatarColors))))
	color := avatarColors[colorIndex.Int64()]

	return fmt.Sprintf("https://api.dicebear.com/7.x/initials/svg?seed=%s&backgroundColor=%s",
		url.QueryEscape(initials), url.QueryEscape(color))
}

// GetInitialsFromName extracts up to two initials from a full name.
func GetInitialsFromName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "U"
	}

	initials := string([]rune(fields[0])[0])
	if len(fields) > 1 {
		initials += string([]rune(fields[len(fields)-1])[0])
	} else {
		initials += initials
	}
	return strings.ToUpper(initials)
}
