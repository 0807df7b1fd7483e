// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli defines the command-line front-end of the gym client.
//
// The command tree is built with urfave/cli/v2. Global flags come from
// [config.Flags]. The first session-bound action hands the parsed command
// line to a [Setup] function that builds the session and the services, and
// stores them in the app metadata. Help and version output never run Setup.
//
// Every action waits until the stored session has been restored before it
// reads the session state. Failures are returned as *[Error] values whose
// text is safe to print to the user.
package cli
