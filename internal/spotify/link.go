// Package spotify derives embeddable player URLs from the track links the
// dataset carries.
package spotify

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrMalformedLink marks a link that does not contain a track identifier.
// Callers disable the player for that one track; the rest of the dataset is
// unaffected.
var ErrMalformedLink = errors.New("malformed track link")

const embedURLTemplate = "https://open.spotify.com/embed/track/%s"

// TrackID extracts the track identifier from a player link such as
// "https://open.spotify.com/track/abc123?si=xyz".
func TrackID(link string) (string, error) {
	u, err := url.Parse(link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %s", ErrMalformedLink, link)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i, segment := range segments {
		if segment == "track" && i+1 < len(segments) && segments[i+1] != "" {
			return segments[i+1], nil
		}
	}

	return "", fmt.Errorf("%w: no /track/ segment in %s", ErrMalformedLink, link)
}

// EmbedURL returns the embeddable-player URL for a track link.
func EmbedURL(link string) (string, error) {
	id, err := TrackID(link)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(embedURLTemplate, id), nil
}
