package views

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

const placeholderAvatar = "https://via.placeholder.com/120/9ca3af/ffffff?text="

// Avatars maps a username to the URL of its profile picture.
type Avatars map[string]string

// For returns the configured avatar of username, or a grey placeholder
// showing its first letter.
func (a Avatars) For(username string) string {
	if avatar, ok := a[username]; ok && avatar != "" {
		return avatar
	}
	initial := ""
	if r, _ := utf8.DecodeRuneInString(username); r != utf8.RuneError {
		initial = strings.ToUpper(string(r))
	}
	return placeholderAvatar + url.QueryEscape(initial)
}
