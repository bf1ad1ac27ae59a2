// Package pluginloader implements the startup hook spec §3/§6 describe as
// "plugin enablement": a process-wide flag that, when set, causes
// third-party converter packages to register themselves into the
// dispatch registry before the server starts handling requests.
//
// Go has no portable runtime plugin system (the standard library's
// plugin package is Linux/amd64-only and version-locked to the building
// toolchain), so discovery here is a compile-time registration list
// rather than dynamic loading: a fork that vendors a third-party
// converter package adds its registration func to registrars and
// rebuilds. This mirrors how the upstream project's own plugin flag
// works once namespace-packaged entry points are replaced with a
// statically linked Go binary.
package pluginloader

import (
	"log/slog"

	"github.com/voidlight/voidlight-markitdown/internal/dispatch"
)

// registrar is a third-party converter package's registration hook.
type registrar func(*dispatch.Registry)

// registrars lists every compiled-in plugin registration hook. Empty by
// default: no third-party converter package is vendored into this build.
var registrars []registrar

// DiscoverAndRegister runs every compiled-in registrar when enabled is
// true. When false (the default), built-ins are the only participants.
func DiscoverAndRegister(registry *dispatch.Registry, enabled bool, logger *slog.Logger) {
	if !enabled {
		logger.Debug("plugin discovery disabled")
		return
	}
	logger.Info("plugin discovery enabled", "registered_plugins", len(registrars))
	for _, reg := range registrars {
		reg(registry)
	}
}
