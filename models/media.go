// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MediaKind selects one of the API's static file routes.
type MediaKind string

const (
	MediaExerciseDemo  MediaKind = "exercise/demo"
	MediaExerciseThumb MediaKind = "exercise/thumb"
	MediaAvatar        MediaKind = "avatar"
)

// AvatarFile is an image selected for upload as the user's avatar.
type AvatarFile struct {
	// Path is the local file path.
	Path string

	// Name is the multipart file name sent to the server.
	Name string

	// ContentType is the MIME type, e.g. "image/png".
	ContentType string

	// Size is the file size in bytes.
	Size int64
}
