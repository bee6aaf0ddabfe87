//go:build !ebiten

package ui

import "image"

// Button is a no-op placeholder for headless builds.
type Button struct{}

// NewButton returns nil in the headless build.
func NewButton(int, int, int, int) *Button { return nil }

// SetState is a no-op in the headless build.
func (b *Button) SetState(string, string) {}

// Update never reports a click in the headless build.
func (b *Button) Update() bool { return false }

// Draw is a no-op in the headless build.
func (b *Button) Draw(any, any) {}

// Rect returns the zero rectangle in the headless build.
func (b *Button) Rect() image.Rectangle { return image.Rectangle{} }
