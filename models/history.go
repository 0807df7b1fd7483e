// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HistoryRecord is a single completed exercise.
type HistoryRecord struct {
	ID         ID     `json:"id"`
	ExerciseID ID     `json:"exercise_id,omitempty"`
	Name       string `json:"name"`
	Group      string `json:"group"`
	Hour       string `json:"hour"`
	CreatedAt  string `json:"created_at"`
}

// HistoryByDay groups history records under a day title ("dd.mm.yy"), newest
// day first, the way GET /history returns them.
type HistoryByDay struct {
	Title string          `json:"title"`
	Data  []HistoryRecord `json:"data"`
}
