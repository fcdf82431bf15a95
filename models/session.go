// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the logged-in user as remembered by the preference store.
type Session struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// IsActive reports whether the session points to a user.
func (s Session) IsActive() bool {
	return s.UserID > 0
}

// Settings holds presentation preferences that outlive a session.
type Settings struct {
	DarkTheme     bool `json:"dark_theme"`
	LanguageIndex int  `json:"language_index"`
}

// Preferences is the persisted document of the preference store.
type Preferences struct {
	Session  *Session `json:"session,omitempty"`
	Settings Settings `json:"settings"`
}
