// Copyright (c) 2026 MOVA Logística, Lda.
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package command provides the root and sub-commands for the MOVA
// logistics marketplace backend. Commands are organized using the
// cobra library. The root command starts the web server itself while
// the "db" sub-command manages the supporting database tables.
//
//	./movaweb [-c /path/of/main/config.yaml]        # start web server
//	./movaweb db init [-c /path/of/main/config.yaml]
//	./movaweb stream emit --table proposals --op insert --new '{...}'
package command

import (
	"context"
	"fmt"
	"os"

	"github.com/mova-mz/mova-core/pkg/adapter/config"
	"github.com/mova-mz/mova-core/pkg/adapter/restful/gin"
	"github.com/mova-mz/mova-core/pkg/adapter/restful/gin/routes"
	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "movaweb",
	Short: "The MOVA logistics marketplace backend",
	Long: `The MOVA logistics marketplace backend for agricultural
freight transport in Mozambique. It serves the transport price
estimation REST APIs over the persisted route distance and cargo rate
tables, and aggregates the marketplace change events (new proposals,
chat messages, and transport status transitions) into a bounded
in-memory notification list with its own REST APIs.
Change events are consumed from Kafka topics which are populated by
the marketplace backend, one topic per changed table.`,
	RunE: startWebServer,
}

func startWebServer(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	c, err := config.LoadFile(cfgPath)
	if err != nil {
		return fmt.Errorf("loading configs: %w", err)
	}
	p, err := c.Database.ConnectionPool(ctx)
	if err != nil {
		return fmt.Errorf("creating DB pool: %w", err)
	}
	defer p.Close()
	s, err := c.Kafka.NewStream()
	if err != nil {
		return fmt.Errorf("creating change-event stream: %w", err)
	}
	var e *gin.Engine = c.Gin.NewEngine()
	notifs, err := routes.Register(ctx, e, p, s, c.Usecases)
	if err != nil {
		return fmt.Errorf("registering routes: %w", err)
	}
	defer notifs.Deactivate()
	if err = e.Run(); err != nil {
		return fmt.Errorf("running Gin engine: %w", err)
	}
	return nil
}

// Execute runs the rootCmd which in turn parses CLI arguments and
// flags and runs the most specific cobra command. The exit code may
// be a boolean (zero for success and non-zero for failure) or may be
// chosen based on the error condition (if it is desired to report
// several error conditions in the CLI of this program).
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(fixConfigPath)
	rootCmd.PersistentFlags().StringVarP(
		&cfgPath, "config", "c", "", "config file path",
	)
}

// fixConfigPath ensures that cfgPath is set respectively by either the
// CLI args, the CONFIG_FILE environment variable, or its default value.
func fixConfigPath() {
	if cfgPath != "" {
		return
	}
	var found bool
	if cfgPath, found = os.LookupEnv("CONFIG_FILE"); !found {
		cfgPath = "configs/mova.yaml"
	}
}
