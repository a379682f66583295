package gles

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

var keyNames = map[glfw.Key]string{
	glfw.KeySpace:     "Space",
	glfw.KeyEscape:    "Escape",
	glfw.KeyEnter:     "Enter",
	glfw.KeyTab:       "Tab",
	glfw.KeyBackspace: "Backspace",
	glfw.KeyInsert:    "Insert",
	glfw.KeyDelete:    "Delete",
	glfw.KeyRight:     "Right",
	glfw.KeyLeft:      "Left",
	glfw.KeyDown:      "Down",
	glfw.KeyUp:        "Up",
	glfw.KeyPageUp:    "PageUp",
	glfw.KeyPageDown:  "PageDown",
	glfw.KeyHome:      "Home",
	glfw.KeyEnd:       "End",
	glfw.KeyF1:        "F1",
	glfw.KeyF2:        "F2",
	glfw.KeyF3:        "F3",
	glfw.KeyF4:        "F4",
	glfw.KeyF5:        "F5",
	glfw.KeyF6:        "F6",
	glfw.KeyF7:        "F7",
	glfw.KeyF8:        "F8",
	glfw.KeyF9:        "F9",
	glfw.KeyF10:       "F10",
	glfw.KeyF11:       "F11",
	glfw.KeyF12:       "F12",
}

// keyName names a key the Emacs way: "C-" for control, "M-" for alt and
// "S-" for shift. Modifier keys on their own yield "".
func keyName(key glfw.Key, scancode int, mods glfw.ModifierKey) string {
	switch key {
	case glfw.KeyLeftShift, glfw.KeyLeftControl, glfw.KeyLeftAlt, glfw.KeyLeftSuper:
		return ""
	case glfw.KeyRightShift, glfw.KeyRightControl, glfw.KeyRightAlt, glfw.KeyRightSuper:
		return ""
	}
	name, ok := keyNames[key]
	if !ok {
		name = glfw.GetKeyName(key, scancode)
	}
	if name == "" {
		return ""
	}
	return withModifiers(name, mods&glfw.ModShift != 0, mods&glfw.ModAlt != 0, mods&glfw.ModControl != 0)
}

func withModifiers(name string, shift, alt, control bool) string {
	if shift {
		name = "S-" + name
	}
	if alt {
		name = "M-" + name
	}
	if control {
		name = "C-" + name
	}
	return name
}
