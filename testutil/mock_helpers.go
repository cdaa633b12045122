// Package testutil exposes small helpers shared by the unit tests across the module.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockMatchContext matches any 'context.Context' argument when setting up testify mock expectations.
var MockMatchContext = mock.MatchedBy(func(_ context.Context) bool { return true })
