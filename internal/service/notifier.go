package service

import (
	"context"

	"github.com/skycastapp/locsync/internal/logger"
)

// LogNotifier is a [Notifier] that only logs change notifications. Embedding
// applications replace it with a notifier that refreshes their UI.
type LogNotifier struct {
	logger *logger.Logger
}

func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) LocationsChanged(_ context.Context) {
	n.logger.Info().
		Str("func", "LogNotifier.LocationsChanged").
		Msg("saved locations changed")
}
