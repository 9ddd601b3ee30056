package islandhop

import (
	"fmt"
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyEnter
	KeyEscape
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
)

var keyNames = map[string]Key{
	"space":      KeySpace,
	"enter":      KeyEnter,
	"escape":     KeyEscape,
	"right":      KeyRight,
	"arrowright": KeyRight,
	"left":       KeyLeft,
	"arrowleft":  KeyLeft,
	"down":       KeyDown,
	"arrowdown":  KeyDown,
	"up":         KeyUp,
	"arrowup":    KeyUp,
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[string(rune('a'+int(k-KeyA)))] = k
	}
}

// ParseKey maps a binding name such as "w", "ArrowUp" or "space" to a Key.
// Names are case-insensitive.
func ParseKey(name string) (Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return KeyUnknown, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	return k, nil
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + int(k-KeyA)))
	case k == KeySpace:
		return "space"
	case k == KeyEnter:
		return "enter"
	case k == KeyEscape:
		return "escape"
	case k == KeyRight:
		return "arrowright"
	case k == KeyLeft:
		return "arrowleft"
	case k == KeyDown:
		return "arrowdown"
	case k == KeyUp:
		return "arrowup"
	}
	return "unknown"
}

var glfwToKey = map[glfw.Key]Key{
	glfw.KeyA:      KeyA,
	glfw.KeyB:      KeyB,
	glfw.KeyC:      KeyC,
	glfw.KeyD:      KeyD,
	glfw.KeyE:      KeyE,
	glfw.KeyF:      KeyF,
	glfw.KeyG:      KeyG,
	glfw.KeyH:      KeyH,
	glfw.KeyI:      KeyI,
	glfw.KeyJ:      KeyJ,
	glfw.KeyK:      KeyK,
	glfw.KeyL:      KeyL,
	glfw.KeyM:      KeyM,
	glfw.KeyN:      KeyN,
	glfw.KeyO:      KeyO,
	glfw.KeyP:      KeyP,
	glfw.KeyQ:      KeyQ,
	glfw.KeyR:      KeyR,
	glfw.KeyS:      KeyS,
	glfw.KeyT:      KeyT,
	glfw.KeyU:      KeyU,
	glfw.KeyV:      KeyV,
	glfw.KeyW:      KeyW,
	glfw.KeyX:      KeyX,
	glfw.KeyY:      KeyY,
	glfw.KeyZ:      KeyZ,
	glfw.KeySpace:  KeySpace,
	glfw.KeyEnter:  KeyEnter,
	glfw.KeyEscape: KeyEscape,
	glfw.KeyRight:  KeyRight,
	glfw.KeyLeft:   KeyLeft,
	glfw.KeyDown:   KeyDown,
	glfw.KeyUp:     KeyUp,
}
