// Package geng is a small pixel-buffer sprite board for [Ebitengine].
//
// A [Registry] owns the drawables on the canvas. Each insert hands back an
// [ID]; ids of removed items are reused, oldest first, before new ones are
// minted. Items paint in insertion order, so the newest item is on top and
// wins hit tests. One item may be selected, and its outline is painted above
// everything else.
//
// # Quick start
//
//	reg := geng.NewRegistry(geng.DefaultBackground)
//	id := reg.Insert(geng.FillRect(30, 20, 0xFF00AA00), geng.Pt(40, 40))
//	reg.Select(id)
//
//	w := geng.NewWindow(reg, geng.RunConfig{Title: "board", Width: 512, Height: 512})
//	if err := geng.Run(w); err != nil {
//		log.Fatal(err)
//	}
//
// # Compositing
//
// The canvas is a CPU buffer of packed 0xAARRGGBB [Color] values. The top
// byte is a visibility flag: a zero byte is transparent and skipped when
// blitting, anything else overwrites the destination. [Registry.Render] only
// recomposites when something changed since the previous frame.
//
// # Input
//
// [Window] turns newly pressed keys into [Command] values through a
// [Keymap] and runs them with [Apply]. Holding the left mouse button selects
// the topmost item under the cursor; a right click inserts
// [RunConfig.Spawn] there when it is set.
//
// [Ebitengine]: https://ebitengine.org
package geng
