package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPositiveJustPressed reports whether a confirm input was just pressed: Enter or Space,
// a left click, a touch, or the A/B buttons of a gamepad.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if isGamepadConfirmJustPressed(id) {
			return true
		}
	}
	return false
}

func isGamepadConfirmJustPressed(id ebiten.GamepadID) bool {
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		return inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom) ||
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
	}
	// The button 0/1 might not be A/B buttons.
	return inpututil.IsGamepadButtonJustPressed(id, ebiten.GamepadButton0) ||
		inpututil.IsGamepadButtonJustPressed(id, ebiten.GamepadButton1)
}

// IsNegativeJustPressed reports whether Escape or the gamepad back button was just pressed.
func IsNegativeJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) &&
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterLeft) {
			return true
		}
	}
	return false
}
