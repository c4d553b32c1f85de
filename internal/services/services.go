// Package services holds the identity and task business logic. Services
// return the package's sentinel errors for domain failures; any other error
// is an infrastructure failure.
package services

import "github.com/juju/loggo/v2"

var log = loggo.GetLogger("taskapi.services")
