// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/MKhiriev/go-gym-client/internal/app"
	"github.com/MKhiriev/go-gym-client/internal/service"
	"github.com/MKhiriev/go-gym-client/models"
)

// SignInCommand returns the signin command.
func SignInCommand() *cli.Command {
	return &cli.Command{
		Name:  "signin",
		Usage: "Sign in with e-mail and password",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Account e-mail"},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Account password"},
		},
		Action: withSession(signIn),
	}
}

func signIn(c *cli.Context, deps *Deps) error {
	form := models.SignInForm{
		Email:    c.String("email"),
		Password: c.String("password"),
	}
	if err := deps.Auth.SignIn(c.Context, form); err != nil {
		return fail(err, app.MsgSignInFailed)
	}

	user, _ := deps.Session.User()
	fmt.Fprintf(c.App.Writer, "Signed in as %s <%s>.\n", user.Name, user.Email)
	return nil
}

// SignUpCommand returns the signup command.
func SignUpCommand() *cli.Command {
	return &cli.Command{
		Name:  "signup",
		Usage: "Create an account and sign in",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Display name"},
			&cli.StringFlag{Name: "email", Aliases: []string{"e"}, Usage: "Account e-mail"},
			&cli.StringFlag{Name: "password", Aliases: []string{"p"}, Usage: "Password (at least 6 characters)"},
			&cli.StringFlag{Name: "confirm", Usage: "Password confirmation"},
		},
		Action: withSession(signUp),
	}
}

func signUp(c *cli.Context, deps *Deps) error {
	form := models.SignUpForm{
		Name:            c.String("name"),
		Email:           c.String("email"),
		Password:        c.String("password"),
		PasswordConfirm: c.String("confirm"),
	}
	if err := deps.Auth.SignUp(c.Context, form); err != nil {
		if errors.Is(err, service.ErrEmailAlreadyUsed) {
			return fail(err, app.MsgEmailAlreadyUsed)
		}
		return fail(err, app.MsgSignUpFailed)
	}

	user, _ := deps.Session.User()
	fmt.Fprintf(c.App.Writer, "Welcome, %s!\n", user.Name)
	return nil
}

// SignOutCommand returns the signout command.
func SignOutCommand() *cli.Command {
	return &cli.Command{
		Name:   "signout",
		Usage:  "Sign out and forget the stored session",
		Action: withSession(signOut),
	}
}

func signOut(c *cli.Context, deps *Deps) error {
	deps.Auth.SignOut(c.Context)
	fmt.Fprintln(c.App.Writer, "Signed out.")
	return nil
}

// WhoAmICommand returns the whoami command.
func WhoAmICommand() *cli.Command {
	return &cli.Command{
		Name:   "whoami",
		Usage:  "Show the signed-in user",
		Action: withAuth(whoAmI),
	}
}

func whoAmI(c *cli.Context, deps *Deps) error {
	user, ok := deps.Session.User()
	if !ok {
		return fail(service.ErrNotSignedIn, "")
	}
	printUser(c.App.Writer, user, deps.Profile.AvatarURL(user))
	return nil
}
