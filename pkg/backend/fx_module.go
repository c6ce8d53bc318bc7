package backend

import "go.uber.org/fx"

// FXModule provides the inference.Client selected by Config.Type.
var FXModule = fx.Module(
	"backend",
	fx.Provide(NewClientWithDI),
	fx.Invoke(RegisterBackendLifecycle),
)
