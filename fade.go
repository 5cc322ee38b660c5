package geng

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// fade animates the background from one color to another, one gween tween
// per RGB channel. The visibility byte of the target is applied on every
// step.
type fade struct {
	tweens [3]*gween.Tween
	target Color
	active bool
}

// start begins a fade from -> to over duration seconds, replacing any fade
// already running.
func (f *fade) start(from, to Color, duration float32) {
	_, fr, fg, fb := from.Channels()
	_, tr, tg, tb := to.Channels()
	f.tweens[0] = gween.New(float32(fr), float32(tr), duration, ease.Linear)
	f.tweens[1] = gween.New(float32(fg), float32(tg), duration, ease.Linear)
	f.tweens[2] = gween.New(float32(fb), float32(tb), duration, ease.Linear)
	f.target = to
	f.active = true
}

// update advances the fade by dt seconds and returns the color to show.
// ok is false when no fade is running.
func (f *fade) update(dt float32) (c Color, ok bool) {
	if !f.active {
		return 0, false
	}
	var ch [3]uint8
	done := true
	for i, tw := range f.tweens {
		v, finished := tw.Update(dt)
		ch[i] = uint8(min(max(v+0.5, 0), 255))
		if !finished {
			done = false
		}
	}
	if done {
		f.active = false
		return f.target, true
	}
	return f.target&0xFF000000 | Color(ch[0])<<16 | Color(ch[1])<<8 | Color(ch[2]), true
}
