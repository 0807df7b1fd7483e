// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Exercise is a catalog entry as returned by GET /exercises/bygroup/{group}
// and GET /exercises/{id}.
type Exercise struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Series      int    `json:"series"`
	Repetitions int    `json:"repetitions"`
	Group       string `json:"group"`

	// Demo and Thumb are file names served under /exercise/demo/ and
	// /exercise/thumb/.
	Demo  string `json:"demo"`
	Thumb string `json:"thumb"`

	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}
