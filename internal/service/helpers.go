package service

import (
	"errors"

	"github.com/alexanderramin/tt/internal/repository"
	"github.com/rs/zerolog"
)

// recoverCorrupt reports whether err is unreadable persisted data. If so, a
// warning naming what is logged and the caller continues with empty data.
func recoverCorrupt(log zerolog.Logger, what string, err error) bool {
	if !errors.Is(err, repository.ErrCorrupt) {
		return false
	}
	log.Warn().Err(err).Msgf("stored %s is unreadable, starting from an empty one", what)
	return true
}
