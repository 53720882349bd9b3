package statica

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/mitchellh/mapstructure"

	"github.com/statica/statica/pkg/fingerprint"
	"github.com/statica/statica/pkg/mediatype"
	"github.com/statica/statica/pkg/resource"
	"github.com/statica/statica/pkg/resource/file"
)

// application implements the application.
type application struct {
	config *config
	logger *slog.Logger
	state  *applicationState
	osStat func(name string) (fs.FileInfo, error)
}

// applicationState implements the application state.
type applicationState struct {
	serverConfig    *serverConfig
	resourcesConfig map[string]resourceConfig
	store           resource.Store
	server          *server
}

// serverConfig implements the server configuration.
type serverConfig struct {
	Listen       string `mapstructure:"listen"`
	ReadTimeout  *int   `mapstructure:"readTimeout"`
	WriteTimeout *int   `mapstructure:"writeTimeout"`
}

// resourceConfig implements a resource configuration.
type resourceConfig struct {
	Path  string `mapstructure:"path"`
	Route string `mapstructure:"route"`
}

const (
	serverConfigDefaultListen       string = ":8080"
	serverConfigDefaultReadTimeout  int    = 60
	serverConfigDefaultWriteTimeout int    = 60

	applicationStopTimeout time.Duration = 30 * time.Second
)

// init initializes the application.
func (a *application) init() error {
	a.logger.Debug("Initializing application")

	var sc serverConfig
	if a.config.Server != nil {
		if err := mapstructure.Decode(a.config.Server.Config, &sc); err != nil {
			a.logger.Error("Failed to parse server configuration", "err", err)
			return fmt.Errorf("parse server config: %w", err)
		}
	}

	var errConfig bool

	if sc.Listen == "" {
		sc.Listen = serverConfigDefaultListen
	}
	if sc.ReadTimeout == nil {
		defaultValue := serverConfigDefaultReadTimeout
		sc.ReadTimeout = &defaultValue
	}
	if *sc.ReadTimeout < 0 {
		a.logger.Error("Invalid option value", "option", "ReadTimeout", "value", *sc.ReadTimeout)
		errConfig = true
	}
	if sc.WriteTimeout == nil {
		defaultValue := serverConfigDefaultWriteTimeout
		sc.WriteTimeout = &defaultValue
	}
	if *sc.WriteTimeout < 0 {
		a.logger.Error("Invalid option value", "option", "WriteTimeout", "value", *sc.WriteTimeout)
		errConfig = true
	}

	resources := make(map[string]resourceConfig)
	if a.config.Resources != nil {
		for name, rcConfig := range a.config.Resources.Config {
			var rc resourceConfig
			if err := mapstructure.Decode(rcConfig, &rc); err != nil {
				a.logger.Error("Failed to parse resource configuration", "resource", name, "err", err)
				return fmt.Errorf("parse resource %s config: %w", name, err)
			}
			if rc.Path == "" {
				a.logger.Error("Missing option or value", "resource", name, "option", "Path")
				errConfig = true
			}
			if rc.Route == "" || !strings.HasPrefix(rc.Route, "/") {
				a.logger.Error("Invalid option value", "resource", name, "option", "Route", "value", rc.Route)
				errConfig = true
			}
			resources[name] = rc
		}
	}
	if len(resources) == 0 {
		a.logger.Error("No resource defined")
		errConfig = true
	}
	routes := make(map[string]string)
	for name, rc := range resources {
		if other, ok := routes[rc.Route]; ok {
			a.logger.Error("Duplicate route", "route", rc.Route, "resources", other+","+name)
			errConfig = true
		}
		routes[rc.Route] = name
	}

	if errConfig {
		return errors.New("config")
	}

	a.state.serverConfig = &sc
	a.state.resourcesConfig = resources
	a.state.store = file.New(fingerprint.New(), mediatype.New())

	return nil
}

// Check checks the application configuration.
func (a *application) Check() error {
	if err := a.init(); err != nil {
		return err
	}

	var errCheck bool

	for name, rc := range a.state.resourcesConfig {
		info, err := a.osStat(rc.Path)
		if err != nil {
			a.logger.Error("Failed to stat resource file", "resource", name, "file", rc.Path, "err", err)
			errCheck = true
			continue
		}
		if info.IsDir() {
			a.logger.Error("Resource file is a directory", "resource", name, "file", rc.Path)
			errCheck = true
		}
	}

	if errCheck {
		return errors.New("check")
	}

	return nil
}

// Serve runs the application instance.
func (a *application) Serve() error {
	if err := a.init(); err != nil {
		return err
	}

	for name, rc := range a.state.resourcesConfig {
		if err := a.state.store.Register(name, rc.Path); err != nil {
			a.logger.Error("Failed to register resource", "resource", name, "err", err)
			return fmt.Errorf("register resource %s: %w", name, err)
		}
		a.logger.Debug("Resource registered", "resource", name, "file", rc.Path, "route", rc.Route)
	}

	a.state.server = newServer(a.state.serverConfig, a.state.store, a.state.resourcesConfig)
	if err := a.state.server.Start(); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	a.logger.Info("Instance started", "listen", a.state.serverConfig.Listen)

	exit := make(chan os.Signal, 1)
	signal.Notify(exit, syscall.SIGINT, syscall.SIGTERM)
	reload := make(chan os.Signal, 1)
	signal.Notify(reload, syscall.SIGHUP)

	for {
		select {
		case <-exit:
			a.logger.Info("Signal received, stopping instance")

			ctx, cancel := context.WithTimeout(context.Background(), applicationStopTimeout)
			err := a.state.server.Stop(ctx)
			cancel()
			if err != nil {
				return fmt.Errorf("stop server: %w", err)
			}

		case <-reload:
			a.logger.Info("Signal SIGHUP received, reloading resources")

			if err := a.state.store.ReloadAll(); err != nil {
				a.logger.Error("Failed to reload resources", "err", err)
			}

			continue
		}

		break
	}

	signal.Stop(exit)
	signal.Stop(reload)

	return nil
}
