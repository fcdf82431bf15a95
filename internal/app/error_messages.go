// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing message strings shared by the services
// and the headless client.
//
// Messages are in Spanish, the language the articles are enriched into.
package app

const (
	// MsgNetworkOrConversionError is carried by a failed fetch result. It
	// covers transport failures, non-2xx answers and undecodable payloads.
	MsgNetworkOrConversionError = "Error de red o conversión de datos"

	// MsgLocalStoreError is carried by a fetch result whose articles were
	// fetched but could not be persisted.
	MsgLocalStoreError = "Error al guardar las noticias"

	// MsgNewArticlesLoaded is logged after a page was fetched and stored.
	MsgNewArticlesLoaded = "Se han cargado noticias nuevas."

	// MsgNoArticles is logged when a snapshot is empty.
	MsgNoArticles = "no hay noticias"

	// MsgFillAllFields is returned when a login form field is blank.
	MsgFillAllFields = "Por favor, rellena todos los campos."

	// MsgFillAllFieldsToRegister is returned when a registration field is
	// blank.
	MsgFillAllFieldsToRegister = "Por favor, rellena todos los campos para registrarte."

	// MsgPasswordTooShort is returned when a registration password has
	// fewer than MinPasswordLength characters.
	MsgPasswordTooShort = "La contraseña debe tener al menos 6 caracteres."

	// MsgEmailAlreadyRegistered is returned when the email is taken.
	MsgEmailAlreadyRegistered = "Este email ya está registrado"

	// MsgInvalidCredentials is returned when no user matches the pair.
	MsgInvalidCredentials = "Credenciales incorrectas."

	// MsgNoActiveSession is returned when there is no stored session.
	MsgNoActiveSession = "No hay ninguna sesión activa"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6
