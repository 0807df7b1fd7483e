// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/models"
)

// GroupsCommand returns the groups command.
func GroupsCommand() *cli.Command {
	return &cli.Command{
		Name:   "groups",
		Usage:  "List the muscle groups",
		Action: withAuth(listGroups),
	}
}

func listGroups(c *cli.Context, deps *Deps) error {
	groups, err := deps.Catalog.Groups(c.Context)
	if err != nil {
		return fail(err, app.MsgGroupsFailed)
	}

	for _, g := range groups {
		fmt.Fprintln(c.App.Writer, g)
	}
	return nil
}

// ExercisesCommand returns the exercises command.
func ExercisesCommand() *cli.Command {
	return &cli.Command{
		Name:  "exercises",
		Usage: "List the exercises of a muscle group",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "group", Aliases: []string{"g"}, Usage: "Muscle group", Required: true},
		},
		Action: withAuth(listExercises),
	}
}

func listExercises(c *cli.Context, deps *Deps) error {
	exercises, err := deps.Catalog.ExercisesByGroup(c.Context, c.String("group"))
	if err != nil {
		return fail(err, app.MsgExercisesFailed)
	}
	return printExercises(c.App.Writer, exercises)
}

// ExerciseCommand returns the exercise command.
func ExerciseCommand() *cli.Command {
	return &cli.Command{
		Name:      "exercise",
		Usage:     "Show exercise details",
		ArgsUsage: "EXERCISE_ID",
		Action:    withAuth(showExercise),
	}
}

func showExercise(c *cli.Context, deps *Deps) error {
	id := models.ID(c.Args().First())
	exercise, err := deps.Catalog.Exercise(c.Context, id)
	if err != nil {
		return fail(err, app.MsgExerciseFailed)
	}

	w := c.App.Writer
	fmt.Fprintf(w, "ID:          %s\n", exercise.ID)
	fmt.Fprintf(w, "Name:        %s\n", exercise.Name)
	fmt.Fprintf(w, "Group:       %s\n", exercise.Group)
	fmt.Fprintf(w, "Series:      %d\n", exercise.Series)
	fmt.Fprintf(w, "Repetitions: %d\n", exercise.Repetitions)
	if exercise.Demo != "" {
		fmt.Fprintf(w, "Demo:        %s\n", deps.Catalog.DemoURL(exercise))
	}
	if exercise.Thumb != "" {
		fmt.Fprintf(w, "Thumbnail:   %s\n", deps.Catalog.ThumbURL(exercise))
	}
	return nil
}
