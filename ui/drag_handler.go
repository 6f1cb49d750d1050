// Copyright (c) Liam Stanley <liam@liam.sh>. All rights reserved. Use of
// this source code is governed by the MIT license that can be found in
// the LICENSE file.

package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// inBounds reports whether a mouse event falls inside a marked zone.
var inBounds = func(id string, msg tea.MouseMsg) bool {
	return zone.Get(id).InBounds(msg)
}

// stillFor is how long the pointer may rest before a release counts as
// having no velocity.
const stillFor = 100 * time.Millisecond

// DragState represents the current state of a drag operation
type DragState int

const (
	DragStateIdle DragState = iota
	DragStateDragging
)

// GesturePhase tells the host which part of a gesture a sample belongs to.
type GesturePhase int

const (
	GestureBegan GesturePhase = iota
	GestureChanged
	GestureEnded
)

// Gesture is one sample of a vertical drag. TranslationY is measured in rows
// from where the drag began, positive downwards; VelocityY is rows per
// second.
type Gesture struct {
	Phase        GesturePhase
	HandleID     string
	TranslationY float64
	VelocityY    float64
}

// DragHandler turns mouse events over a drag handle into gesture samples
type DragHandler struct {
	state        DragState
	dragHandleID string    // ID of the handle being dragged
	startY       int       // Y position where the drag began
	lastY        int       // Last known Y position during drag
	lastAt       time.Time // When lastY was seen
	velocity     float64
	now          func() time.Time
}

// NewDragHandler creates a new drag handler
func NewDragHandler() *DragHandler {
	return &DragHandler{
		state: DragStateIdle,
		now:   time.Now,
	}
}

// HandleMouseEvent processes mouse events for drag operations.
// Returns the gesture sample and true if the event was consumed.
func (d *DragHandler) HandleMouseEvent(msg tea.MouseMsg, handleIDs []string) (Gesture, bool) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			for _, handleID := range handleIDs {
				if inBounds(handleID, msg) {
					d.startDrag(handleID, msg.Y)
					return Gesture{Phase: GestureBegan, HandleID: handleID}, true
				}
			}
		}
	case tea.MouseActionMotion:
		if d.state == DragStateDragging {
			// Horizontal motion leaves the vertical gesture untouched.
			if msg.Y != d.lastY {
				d.track(msg.Y)
			}
			return d.sample(GestureChanged), true
		}
	case tea.MouseActionRelease:
		if d.state == DragStateDragging {
			if msg.Y != d.lastY {
				d.track(msg.Y)
			} else if d.now().Sub(d.lastAt) > stillFor {
				d.velocity = 0
			}
			g := d.sample(GestureEnded)
			d.stopDrag()
			return g, true
		}
	}
	return Gesture{}, false
}

// IsDragging returns true if currently in a drag operation
func (d *DragHandler) IsDragging() bool {
	return d.state == DragStateDragging
}

// GetDragHandleID returns the ID of the handle currently being dragged
func (d *DragHandler) GetDragHandleID() string {
	return d.dragHandleID
}

func (d *DragHandler) sample(phase GesturePhase) Gesture {
	return Gesture{
		Phase:        phase,
		HandleID:     d.dragHandleID,
		TranslationY: float64(d.lastY - d.startY),
		VelocityY:    d.velocity,
	}
}

// track records a new pointer row and updates the velocity estimate from the
// last two samples.
func (d *DragHandler) track(y int) {
	at := d.now()
	if dt := at.Sub(d.lastAt).Seconds(); dt > 0 {
		d.velocity = float64(y-d.lastY) / dt
	}
	d.lastY = y
	d.lastAt = at
}

// startDrag begins a drag operation
func (d *DragHandler) startDrag(handleID string, y int) {
	d.state = DragStateDragging
	d.dragHandleID = handleID
	d.startY = y
	d.lastY = y
	d.lastAt = d.now()
	d.velocity = 0
}

// stopDrag ends the current drag operation
func (d *DragHandler) stopDrag() {
	d.state = DragStateIdle
	d.dragHandleID = ""
	d.startY = 0
	d.lastY = 0
	d.velocity = 0
}
