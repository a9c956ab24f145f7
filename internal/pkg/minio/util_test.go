package minio

import (
	"Inkwell/internal/api/config"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectKeyFromURLRoundTrip(t *testing.T) {
	config.Cfg = &config.Config{
		MinIO: config.MinIOConfig{ExternalEndpoint: "cdn.example.com"},
	}

	url := GetPublicURL("blog_images/7/1_abcd1234_cover.png")
	require.Equal(t, "https://cdn.example.com/"+MainBucket+"/blog_images/7/1_abcd1234_cover.png", url)
	require.Equal(t, "blog_images/7/1_abcd1234_cover.png", ObjectKeyFromURL(url))
}

func TestObjectKeyFromURLRejectsForeign(t *testing.T) {
	config.Cfg = &config.Config{
		MinIO: config.MinIOConfig{ExternalEndpoint: "cdn.example.com"},
	}

	require.Empty(t, ObjectKeyFromURL(""))
	require.Empty(t, ObjectKeyFromURL("https://other.example.com/bucket/key.png"))
}
