package constants

import "golang.org/x/crypto/bcrypt"

const (
	// ContextKeyClaims holds the verified token claims of the caller, if any.
	ContextKeyClaims = "claims"

	// PasswordHashCost is the bcrypt work factor for stored passwords.
	PasswordHashCost = bcrypt.DefaultCost

	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72

	// MaxTextLength bounds titles, names and emails, in characters. It
	// matches the varchar(255) columns of the relational stores.
	MaxTextLength = 255

	// HealthyStatus is reported by the liveness probe.
	HealthyStatus = "OK"
)
