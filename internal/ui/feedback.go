package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/pranavtiwari1/chess-master/internal/board"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{maxStack: 3}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Clear removes all toasts.
func (tm *ToastManager) Clear() {
	tm.toasts = nil
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders all active toasts centered over the board.
func (tm *ToastManager) Draw(screen *ebiten.Image) {
	y := 50.0
	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		// Fade in/out
		alpha := 1.0
		const fadeTime = 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}
		alpha = max(0, min(1, alpha))

		var bg color.RGBA
		fg := color.RGBA{255, 255, 255, uint8(255 * alpha)}
		switch t.Type {
		case ToastWarning:
			bg = color.RGBA{180, 140, 20, uint8(220 * alpha)}
			fg = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		case ToastSuccess:
			bg = color.RGBA{50, 150, 50, uint8(220 * alpha)}
		default:
			bg = color.RGBA{50, 100, 150, uint8(220 * alpha)}
		}

		w, h := MeasureText(t.Message, regularFace)
		const padding = 12.0
		boxW, boxH := w+padding*2, h+padding*2
		x := float64(BoardSize)/2 - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bg, false)
		drawText(screen, t.Message, regularFace, x+padding, y+padding, fg)

		y += boxH + 8
	}
}

// FeedbackManager turns game events into toasts and sounds.
type FeedbackManager struct {
	toasts *ToastManager
	audio  *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts: NewToastManager(),
		audio:  NewAudioManager(),
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
}

// Draw renders all feedback overlays.
func (fm *FeedbackManager) Draw(screen *ebiten.Image) {
	fm.toasts.Draw(screen)
}

// Reset clears pending notifications, e.g. when a new game starts.
func (fm *FeedbackManager) Reset() {
	fm.toasts.Clear()
}

// Notify shows a short informational message.
func (fm *FeedbackManager) Notify(message string) {
	fm.toasts.Show(message, ToastInfo, 2*time.Second)
}

// OnInvalidMove handles a rejected move attempt.
func (fm *FeedbackManager) OnInvalidMove(message string) {
	fm.toasts.Show(message, ToastWarning, 2*time.Second)
	fm.audio.Play(SoundInvalid)
}

// OnCheck handles a check event.
func (fm *FeedbackManager) OnCheck() {
	fm.toasts.Show("Check!", ToastWarning, 2*time.Second)
	fm.audio.Play(SoundCheck)
}

// OnCheckmate handles a checkmate event.
func (fm *FeedbackManager) OnCheckmate(winner board.Color) {
	fm.toasts.Show("Checkmate! "+winner.String()+" wins!", ToastSuccess, 5*time.Second)
	fm.audio.Play(SoundGameEnd)
}

// OnStalemate handles a stalemate event.
func (fm *FeedbackManager) OnStalemate() {
	fm.toasts.Show("Stalemate - Draw", ToastInfo, 5*time.Second)
	fm.audio.Play(SoundGameEnd)
}

// OnMoveMade handles a successful move.
func (fm *FeedbackManager) OnMoveMade(isCapture bool) {
	if isCapture {
		fm.audio.Play(SoundCapture)
	} else {
		fm.audio.Play(SoundMove)
	}
}
