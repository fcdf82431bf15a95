// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the headless news client runtime.
//
// It restores or opens a session, seeds an empty store, loads the first
// headline page, logs every snapshot of the user's articles and keeps
// refreshing in the background until its context ends.
package client
