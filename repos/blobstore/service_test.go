package blobstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectPathInsideBucket(t *testing.T) {
	service := &Service{bucketName: "club-photos"}

	path, ok := service.ObjectPath("https://storage.googleapis.com/club-photos/players/abc123")

	assert.True(t, ok)
	assert.Equal(t, "players/abc123", path)
}

func TestObjectPathForeignURLs(t *testing.T) {
	service := &Service{bucketName: "club-photos"}

	cases := []string{
		"",
		"/images/players/default.jpg",
		"https://example.com/players/abc123",
		"https://storage.googleapis.com/other-bucket/players/abc123",
	}

	for _, url := range cases {
		_, ok := service.ObjectPath(url)
		assert.False(t, ok, "expected %q to be rejected", url)
	}
}

func TestObjectPathRoundTripsUploadURL(t *testing.T) {
	service := &Service{bucketName: "club-photos"}
	url := "https://storage.googleapis.com/club-photos/players/0190f7a2"

	path, ok := service.ObjectPath(url)

	assert.True(t, ok)
	assert.Equal(t, "players/0190f7a2", path)
}
