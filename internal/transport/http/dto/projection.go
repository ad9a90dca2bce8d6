package dto

import "strconv"

const imageURLPrefix = "/api/images/"

// ImageURL derives the public URL for an image reference. It is a pure
// mapping: the referenced image is never looked up, a dangling id still
// yields a URL.
func ImageURL(imageID *int64) *string {
	if imageID == nil {
		return nil
	}

	url := imageURLPrefix + strconv.FormatInt(*imageID, 10)
	return &url
}
