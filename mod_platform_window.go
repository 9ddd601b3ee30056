package islandhop

import (
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	windowGlfw   *glfw.Window
	cursors      map[CursorStyle]*glfw.Cursor
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

// PlatformWindowModule opens a GLFW window and routes its key, cursor and mouse
// button events into Input. Install it after InputModule.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if _, ok := Resource[WindowState](app); ok {
		return
	}
	input := mustResource[Input](app, "PlatformWindowModule")

	ws := createWindowState(m.Width, m.Height, m.Title)
	attachInput(ws, input)
	cmd.AddResources(ws)
	cmd.UseSystem(System(windowEventsSystem).InStage(Prelude))

	Scoped(app.Logger(), "window").Infof("%q opened at %dx%d", m.Title, m.Width, m.Height)
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	// No client API: drawing belongs to whoever consumes the scene graph.
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw: win,
		cursors: map[CursorStyle]*glfw.Cursor{
			CursorDefault: glfw.CreateStandardCursor(glfw.ArrowCursor),
			CursorPointer: glfw.CreateStandardCursor(glfw.HandCursor),
		},
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

func attachInput(s *WindowState, input *Input) {
	s.windowGlfw.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if k, ok := glfwToKey[key]; ok {
			input.KeyDown(k)
		}
	})
	s.windowGlfw.SetCursorPosCallback(func(w *glfw.Window, x, y float64) {
		width, height := w.GetSize()
		input.PointerMove(x, y, width, height)
	})
	s.windowGlfw.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button == glfw.MouseButtonLeft && action == glfw.Press {
			input.Click()
		}
	})
}

// windowEventsSystem delivers pending platform events; the callbacks run inside PollEvents.
func windowEventsSystem(s *WindowState, cmd *Commands) {
	glfw.PollEvents()
	if s.windowGlfw.ShouldClose() {
		cmd.Exit()
	}
}

func (s *WindowState) setCursor(style CursorStyle) {
	s.windowGlfw.SetCursor(s.cursors[style])
}

// Destroy closes the window and shuts GLFW down.
func (s *WindowState) Destroy() {
	for _, c := range s.cursors {
		c.Destroy()
	}
	s.windowGlfw.Destroy()
	glfw.Terminate()
}

// WindowPresenter shows the hover cursor on the window and logs selections.
type WindowPresenter struct {
	window *WindowState
	log    Logger
	// OnSelect, when set, is called with every selected anchor key.
	OnSelect func(key string)
}

func NewWindowPresenter(ws *WindowState, log Logger) *WindowPresenter {
	return &WindowPresenter{window: ws, log: log}
}

func (p *WindowPresenter) SetCursor(style CursorStyle) {
	p.window.setCursor(style)
}

func (p *WindowPresenter) Select(key string) {
	p.log.Infof("selected %s", key)
	if p.OnSelect != nil {
		p.OnSelect(key)
	}
}
