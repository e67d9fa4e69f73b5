// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

/*
Package supervisor provides process supervision for Galleria using suture v4.

The tree separates background maintenance from request serving so that a
failing warm-up loop never takes the HTTP server down with it:

	RootSupervisor ("galleria")
	├── DataSupervisor ("data-layer")
	│   └── GraphWarmService (if warm.enabled)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are
logged through sutureslog into the zerolog pipeline via the slog adapter in
the logging package.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewGraphWarmService(engine, graphCache, cfg.Warm.Buildings, cfg.Warm.Interval))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	err = tree.Serve(ctx)
*/
package supervisor
