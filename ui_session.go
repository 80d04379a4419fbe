/*
Copyright 2025 Milan Suk

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this db except in compliance with the License.
You may obtain a copy of the License at

http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

// Propagate mirrors a transform delta from one panel onto the other. The
// panels can show media with different natural sizes(different BaseScale), so
// the mirroring is relative - scale ratio and offset delta - never an absolute
// copy. Keeps the same world-point aligned on both sides.
func Propagate(srcOld, srcNew, target Viewport) Viewport {
	scaleRatio := srcNew.Scale / srcOld.Scale

	target.Scale = OsClampFloat(target.Scale*scaleRatio, VIEWPORT_MIN_SCALE, VIEWPORT_MAX_SCALE)
	target.OffsetX += srcNew.OffsetX - srcOld.OffsetX
	target.OffsetY += srcNew.OffsetY - srcOld.OffsetY
	return target
}

// Session is the single aggregate every operation sees: both panels'
// transforms, both media descriptors and the lock flag. Keeping it in one
// place makes the sync invariant auditable.
type Session struct {
	Panels [2]*Gestures
	Media  [2]*MediaInfo

	Locked bool
}

func NewSession() *Session {
	ss := &Session{Locked: true} //linked by default

	for i := range ss.Panels {
		side := i
		ss.Panels[i] = NewGestures(func(old, new Viewport) {
			ss.mirror(side, old, new)
		})
	}
	return ss
}

// mirror runs synchronously inside the input-handling step which changed the
// source panel - the sibling never lags a frame behind.
func (ss *Session) mirror(source int, old, new Viewport) {
	if !ss.Locked {
		return
	}
	other := ss.Panels[1-source]
	other.SetView(Propagate(old, new, other.View()))
}

func (ss *Session) SetMedia(side int, info *MediaInfo) {
	ss.Media[side] = info
	ss.Panels[side].SetEnabled(info != nil)
}

func (ss *Session) ClearMedia(side int) {
	ss.SetMedia(side, nil)
}

// ToggleLock freezes or re-couples the panels. Re-locking does not re-align
// them - align while unlocked, then lock to keep comparing.
func (ss *Session) ToggleLock() {
	ss.Locked = !ss.Locked
}

// ZoomStep is the -/+ toolbar operation: one multiplicative step about each
// panel's own center. While locked both panels must move by the *identical*
// ratio in a single update, so the factor is narrowed first to what both clamp
// ranges allow - otherwise one panel would hit a limit and the pair would
// drift apart.
func (ss *Session) ZoomStep(zoomIn bool) {
	factor := VIEWPORT_BUTTON_ZOOM_OUT
	if zoomIn {
		factor = VIEWPORT_BUTTON_ZOOM_IN
	}

	if ss.Locked {
		for _, p := range ss.Panels {
			s := p.View().Scale
			factor = OsClampFloat(factor, VIEWPORT_MIN_SCALE/s, VIEWPORT_MAX_SCALE/s)
		}
		for _, p := range ss.Panels {
			p.SetView(p.View().ZoomAt(factor, 0, 0))
		}
	} else {
		for _, p := range ss.Panels {
			p.SetView(p.View().ZoomAt(factor, 0, 0))
		}
	}
}

// ResetView puts both panels back to {1,0,0} in one atomic update.
func (ss *Session) ResetView() {
	for _, p := range ss.Panels {
		p.SetView(InitViewport())
	}
}

// Display returns the final render transform of one side, combining the user
// viewport with the auto-fit base scale. Without media the identity fit is
// returned.
func (ss *Session) Display(side int) DisplayTrans {
	base := 1.0
	if ss.Media[side] != nil {
		base = ss.Media[side].BaseScale
	}
	return ss.Panels[side].View().Display(base)
}

// Swap exchanges the two sides including their transforms. With the lock on,
// the relative relationship is preserved trivially(both travel together).
func (ss *Session) Swap() {
	ss.Media[0], ss.Media[1] = ss.Media[1], ss.Media[0]

	v0 := ss.Panels[0].View()
	v1 := ss.Panels[1].View()
	ss.Panels[0].SetView(v1)
	ss.Panels[1].SetView(v0)

	ss.Panels[0].SetEnabled(ss.Media[0] != nil)
	ss.Panels[1].SetEnabled(ss.Media[1] != nil)
}
