// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/models"
)

// ProfileCommand returns the profile subcommand group.
func ProfileCommand() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Edit the signed-in user's profile",
		Subcommands: []*cli.Command{
			{
				Name:  "update",
				Usage: "Change the name and optionally the password",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "New display name (default: current name)"},
					&cli.StringFlag{Name: "old-password", Usage: "Current password, required to change it"},
					&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "New password"},
					&cli.StringFlag{Name: "confirm", Usage: "New password confirmation"},
				},
				Action: withAuth(updateProfile),
			},
			{
				Name:      "avatar",
				Usage:     "Upload a profile photo",
				ArgsUsage: "FILE",
				Action:    withAuth(uploadAvatar),
			},
		},
	}
}

func updateProfile(c *cli.Context, deps *Deps) error {
	name := c.String("name")
	if !c.IsSet("name") {
		current, _ := deps.Session.User()
		name = current.Name
	}

	form := models.ProfileForm{
		Name:            name,
		OldPassword:     c.String("old-password"),
		Password:        c.String("password"),
		PasswordConfirm: c.String("confirm"),
	}
	user, err := deps.Profile.Update(c.Context, form)
	if err != nil {
		return fail(err, app.MsgProfileFailed)
	}

	fmt.Fprintln(c.App.Writer, "Profile updated.")
	printUser(c.App.Writer, user, deps.Profile.AvatarURL(user))
	return nil
}

func uploadAvatar(c *cli.Context, deps *Deps) error {
	user, err := deps.Profile.UploadAvatar(c.Context, c.Args().First())
	if err != nil {
		return fail(err, app.MsgAvatarFailed)
	}

	fmt.Fprintf(c.App.Writer, "Photo updated: %s\n", deps.Profile.AvatarURL(user))
	return nil
}
