// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/models"
)

// HistoryCommand returns the history command.
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:   "history",
		Usage:  "Show performed exercises by day",
		Action: withAuth(showHistory),
	}
}

func showHistory(c *cli.Context, deps *Deps) error {
	days, err := deps.History.List(c.Context)
	if err != nil {
		return fail(err, app.MsgHistoryFailed)
	}
	return printHistory(c.App.Writer, days)
}

// DoneCommand returns the done command.
func DoneCommand() *cli.Command {
	return &cli.Command{
		Name:      "done",
		Usage:     "Mark an exercise as performed",
		ArgsUsage: "EXERCISE_ID",
		Action:    withAuth(markDone),
	}
}

func markDone(c *cli.Context, deps *Deps) error {
	id := models.ID(c.Args().First())
	if err := deps.History.Register(c.Context, id); err != nil {
		return fail(err, app.MsgRegisterFailed)
	}

	fmt.Fprintln(c.App.Writer, "Exercise registered.")
	return nil
}
