package islandhop

// Commands is the handle systems and modules use to change the App itself.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

func (cmd *Commands) UseSystem(system systemScheduleBuilder) *Commands {
	cmd.app.UseSystem(system)
	return cmd
}

// SetFrameRate paces App.Run; see App.SetFrameRate.
func (cmd *Commands) SetFrameRate(hz int) *Commands {
	cmd.app.SetFrameRate(hz)
	return cmd
}

// Exit stops App.Run after the current frame completes.
func (cmd *Commands) Exit() {
	cmd.app.exit = true
}
