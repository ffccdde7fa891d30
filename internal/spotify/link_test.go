package spotify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrackID(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		want    string
		wantErr bool
	}{
		{
			name: "standard link with query",
			link: "https://open.spotify.com/track/abc123?si=xyz",
			want: "abc123",
		},
		{
			name: "link without query",
			link: "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC",
			want: "4uLU6hMCjMI75M1A2tKUQC",
		},
		{
			name: "locale prefix before track segment",
			link: "https://open.spotify.com/intl-de/track/abc123",
			want: "abc123",
		},
		{
			name:    "no track segment",
			link:    "https://open.spotify.com/album/abc123",
			wantErr: true,
		},
		{
			name:    "track segment with no id",
			link:    "https://open.spotify.com/track/",
			wantErr: true,
		},
		{
			name:    "not a url",
			link:    "abc123",
			wantErr: true,
		},
		{
			name:    "empty",
			link:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := TrackID(tt.link)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrMalformedLink)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestEmbedURL(t *testing.T) {
	embed, err := EmbedURL("https://open.spotify.com/track/abc123?si=xyz")
	assert.NoError(t, err)
	assert.Equal(t, "https://open.spotify.com/embed/track/abc123", embed)
}

func TestEmbedURLMalformed(t *testing.T) {
	_, err := EmbedURL("https://example.com/watch?v=abc123")
	assert.ErrorIs(t, err, ErrMalformedLink)
}
