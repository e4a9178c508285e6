// Package panzoom turns pointer, touch, and wheel input on a 2D drawing
// surface into a pan/zoom view transform for [Ebitengine] programs.
//
// A [Controller] owns a [Transform] (uniform scale plus translation) and
// reports every change to a callback, which redraws the surface:
//
//	surface := panzoom.NewEbitenSurface(panzoom.Rect{Width: 800, Height: 600})
//	ctrl, err := panzoom.Apply(surface, panzoom.Config{
//		OnTransform: func(ctx panzoom.TransformContext) {
//			canvas := ctx.Canvas()
//			canvas.Clear()
//			op := &ebiten.DrawImageOptions{GeoM: ctx.Transform().GeoM()}
//			canvas.DrawImage(picture, op)
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer ctrl.Release()
//
// Call [EbitenSurface.Update] from your game's Update and
// [EbitenSurface.Draw] from its Draw.
//
// # Gestures
//
// Dragging with the primary mouse button or one finger pans. Two fingers
// pinch-zoom around their initial midpoint and follow its drift. The wheel
// zooms in or out by a fixed factor around the cursor. Scale is clamped to
// [Config.MinScale, Config.MaxScale] (0.05 to 20 by default).
//
// Input that does not fit the current gesture is ignored, so stray events
// from the host never cause errors.
//
// # Other hosts
//
// Any event source can drive a Controller by implementing [Surface]. A
// [Dispatcher] provides the listener bookkeeping: translate native events
// into [Event] values and hand them to [Dispatcher.Dispatch].
//
// # Testing
//
// [EbitenSurface] can replay synthetic input ([EbitenSurface.InjectDrag],
// [EbitenSurface.InjectWheel], [EbitenSurface.InjectPinch], ...) and whole
// JSON gesture scripts via [LoadGestureScript].
//
// [Ebitengine]: https://ebitengine.org
package panzoom
