// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/go-gym-client/models"
)

func newTable(w io.Writer, headers ...string) *tabwriter.Writer {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return tw
}

func printUser(w io.Writer, user models.User, avatarURL string) {
	fmt.Fprintf(w, "ID:     %s\n", user.ID)
	fmt.Fprintf(w, "Name:   %s\n", user.Name)
	fmt.Fprintf(w, "E-mail: %s\n", user.Email)
	if avatarURL != "" {
		fmt.Fprintf(w, "Avatar: %s\n", avatarURL)
	}
}

func printExercises(w io.Writer, exercises []models.Exercise) error {
	if len(exercises) == 0 {
		fmt.Fprintln(w, "No exercises.")
		return nil
	}

	tw := newTable(w, "ID", "NAME", "SERIES", "REPETITIONS")
	for _, e := range exercises {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", e.ID, e.Name, e.Series, e.Repetitions)
	}
	return tw.Flush()
}

func printHistory(w io.Writer, days []models.HistoryByDay) error {
	if len(days) == 0 {
		fmt.Fprintln(w, "No exercises registered yet.")
		return nil
	}

	for i, day := range days {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, day.Title)

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, r := range day.Data {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.Hour, r.Name, r.Group)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
