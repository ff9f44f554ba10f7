package models

import "strings"

// StoredImage is what a storage backend hands back for an upload. URL is either
// an absolute cloud URL or a path relative to the static root. Handle is only
// set by cloud backends and is what they need to remove the object later.
type StoredImage struct {
	URL    string
	Handle string
}

func (i StoredImage) IsRemote() bool {
	return strings.HasPrefix(i.URL, "http://") || strings.HasPrefix(i.URL, "https://")
}

func imageFrom(url, handle *string) StoredImage {
	var image StoredImage
	if url != nil {
		image.URL = *url
	}
	if handle != nil {
		image.Handle = *handle
	}
	return image
}
