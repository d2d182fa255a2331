// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package analytics

import (
	"context"

	"go.uber.org/zap"
)

// LogRecorder writes events to the global zap logger at debug level.
type LogRecorder struct{}

func (LogRecorder) Record(_ context.Context, ev Event) error {
	zap.L().Debug("analytics event",
		zap.String("id", ev.ID),
		zap.String("kind", string(ev.Kind)),
		zap.String("state", string(ev.State)),
		zap.String("home_state", string(ev.HomeState)),
		zap.String("school_state", string(ev.SchoolState)),
		zap.String("selection", string(ev.Selection)),
		zap.Bool("swing", ev.Swing),
		zap.Bool("battleground", ev.Battleground),
		zap.String("handler", string(ev.Handler)),
		zap.String("method", ev.Method),
	)
	return nil
}

// MultiRecorder sends each event to every recorder in order and stops at the
// first failure.
type MultiRecorder []Recorder

func (m MultiRecorder) Record(ctx context.Context, ev Event) error {
	for _, r := range m {
		if err := r.Record(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}
