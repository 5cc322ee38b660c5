package geng

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-composite timing. Only populated when RunConfig.Debug
// is set.
type debugStats struct {
	renderTime time.Duration
	items      int
}

// debugLog reports one composite at debug level.
func (w *Window) debugLog(stats debugStats) {
	if !w.cfg.Debug {
		return
	}
	fields := []zap.Field{
		zap.Duration("render", stats.renderTime),
		zap.Int("items", stats.items),
		zap.Stringer("background", w.reg.Background()),
	}
	if id, ok := w.reg.Selected(); ok {
		_, live := w.reg.Get(id)
		fields = append(fields, zap.Uint64("selected", uint64(id)), zap.Bool("selected_live", live))
	}
	w.log.Debug("composite", fields...)
}
