// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the signed-in user and the token pair of the gym
// client.
//
// A [Manager] is created once at process start and passed to everything that
// needs the session. It restores the persisted session, signs in and out,
// keeps the persisted copy and the adapter credentials in step with memory,
// and reports transitions to subscribers.
//
// The manager moves through three states:
//
//	Restoring ──► Unauthenticated ◄──► Authenticated
//	    └─────────────────────────────────▲
//
// Restoring happens once, before [Manager.Restore] completes. Every
// transition into Authenticated installs the credentials on the adapter
// before the new state is visible; every transition into Unauthenticated
// clears them first.
//
// Mutations (sign-in, sign-out, profile update, restore) run one at a time.
// Identical concurrent sign-in or sign-out calls share a single execution
// and its outcome.
package session
