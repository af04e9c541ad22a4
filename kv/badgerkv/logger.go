package badgerkv

import "go.uber.org/zap"

// logger adapts a zap.SugaredLogger to badger.Logger.
type logger struct {
	*zap.SugaredLogger
}

func (l logger) Warningf(template string, args ...interface{}) {
	l.SugaredLogger.Warnf(template, args...)
}
