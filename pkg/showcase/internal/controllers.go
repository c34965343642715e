package internal

import "github.com/veandco/go-sdl2/sdl"

var controllers = map[sdl.JoystickID]*sdl.GameController{}

func openControllers() {
	for i := 0; i < sdl.NumJoysticks(); i++ {
		OpenController(i)
	}
}

// OpenController opens the joystick at device index i if it is a game controller.
func OpenController(i int) {
	if !sdl.IsGameController(i) {
		return
	}
	gc := sdl.GameControllerOpen(i)
	if gc == nil {
		GetInternalLogger().Warn("Failed to open controller", "index", i, "error", sdl.GetError())
		return
	}
	id := gc.Joystick().InstanceID()
	controllers[id] = gc
	GetInternalLogger().Debug("Controller opened", "name", gc.Name(), "instance", id)
}

// CloseController closes a controller that was removed.
func CloseController(id sdl.JoystickID) {
	if gc, ok := controllers[id]; ok {
		gc.Close()
		delete(controllers, id)
	}
}

func closeControllers() {
	for id, gc := range controllers {
		gc.Close()
		delete(controllers, id)
	}
}
