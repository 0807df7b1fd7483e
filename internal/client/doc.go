// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client process lifecycle.
//
// One [App.Run] is one process run: it resolves the configuration from the
// parsed command line, opens the local storage, restores the stored session,
// starts the background workers, runs the requested command and tears
// everything down in reverse order.
package client
