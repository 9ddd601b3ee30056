package islandhop

import (
	"fmt"
	"reflect"
	"runtime"
	"time"
)

type systemFn any

// Module installs resources and systems into an App.
type Module interface {
	Install(app *App, cmd *Commands)
}

// App owns the per-session resources and runs the staged systems once per frame.
// Everything runs on the calling goroutine; there is no locking.
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	modules   []Module
	built     bool
	exit      bool

	// frameInterval paces Run; zero runs frames back to back.
	frameInterval time.Duration
	newTicker     func(d time.Duration) (<-chan time.Time, func())
}

func NewApp() *App {
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
		newTicker: wallTicker,
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.initStage(stage)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// UseModules queues modules; they are installed in order on the first Step or Run.
func (app *App) UseModules(modules ...Module) *App {
	app.modules = append(app.modules, modules...)
	return app
}

func (app *App) build() {
	if app.built {
		return
	}
	app.built = true

	cmd := app.Commands()
	for _, module := range app.modules {
		module.Install(app, cmd)
	}
	app.modules = nil
}

// Run steps frames until a system calls Commands.Exit. With a frame rate set,
// each frame waits for the next tick, so at most one frame runs per interval.
func (app *App) Run() {
	app.build()
	log := app.Logger()

	var ticks <-chan time.Time
	if app.frameInterval > 0 {
		c, stop := app.newTicker(app.frameInterval)
		defer stop()
		ticks = c
		log.Infof("running %d stages every %v", len(app.stages), app.frameInterval)
	} else {
		log.Infof("running %d stages unpaced", len(app.stages))
	}

	for !app.exit {
		if ticks != nil {
			<-ticks
		}
		app.Step()
	}
	log.Infof("exit requested, stopping")
}

// SetFrameRate paces Run at hz frames per second. Zero or less removes pacing.
func (app *App) SetFrameRate(hz int) *App {
	if hz <= 0 {
		app.frameInterval = 0
		return app
	}
	app.frameInterval = time.Second / time.Duration(hz)
	return app
}

func wallTicker(d time.Duration) (<-chan time.Time, func()) {
	ticker := time.NewTicker(d)
	return ticker.C, ticker.Stop
}

// Step runs every stage once.
func (app *App) Step() {
	app.build()
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
	}
}

// Exiting reports whether a system asked the run loop to stop.
func (app *App) Exiting() bool {
	return app.exit
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("resource %s must be a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// Resource returns the installed resource of type T.
func Resource[T any](app *App) (*T, bool) {
	res, ok := app.resources[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	return res.(*T), true
}

func mustResource[T any](app *App, installer string) *T {
	res, ok := Resource[T](app)
	if !ok {
		var zero T
		panic(fmt.Sprintf("%s requires resource %T; install its module first", installer, zero))
	}
	return res
}

var typeOfCommands = reflect.TypeOf(Commands{})

// callSystem resolves each parameter of system from the resources: *Commands,
// pointers to installed resources, or an interface satisfied by one of them.
func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)

		switch {
		case argType.Kind() == reflect.Pointer && argType.Elem() == typeOfCommands:
			args[i] = reflect.ValueOf(&Commands{app: app})
		case argType.Kind() == reflect.Pointer:
			if resource, ok := app.resources[argType.Elem()]; ok {
				args[i] = reflect.ValueOf(resource)
				continue
			}
			app.unresolved(systemValue, systemType, argType)
		case argType.Kind() == reflect.Interface:
			resource, ok := app.findImplementation(argType)
			if !ok {
				app.unresolved(systemValue, systemType, argType)
			}
			args[i] = reflect.ValueOf(resource)
		default:
			app.unresolved(systemValue, systemType, argType)
		}
	}
	systemValue.Call(args)
}

func (app *App) findImplementation(iface reflect.Type) (any, bool) {
	for _, resource := range app.resources {
		if reflect.TypeOf(resource).Implements(iface) {
			return resource, true
		}
	}
	return nil, false
}

func (app *App) unresolved(systemValue reflect.Value, systemType, argType reflect.Type) {
	msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
		runtime.FuncForPC(systemValue.Pointer()).Name(),
		fmt.Sprint(systemType),
		fmt.Sprint(argType),
	)
	panic(msg)
}
