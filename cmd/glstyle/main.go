// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
// Command glstyle compiles style files into GLSL expressions.
//
// Usage:
//
//	glstyle compile style.yaml --var width=2 --output json
//	glstyle pack "rgba(0, 255, 255, 0.5)"
package main

import (
	"log/slog"
	"os"

	"github.com/gx-org/glstyle/base/logger"
	"github.com/spf13/cobra"
)

// Set via -ldflags at build time.
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "glstyle",
		Short:         "Compile styles into GLSL expressions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(cmd)
		},
	}
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default warn, env GLSTYLE_LOG_LEVEL)")
	root.AddCommand(newCompileCmd(), newPackCmd())
	return root
}

func setupLogger(cmd *cobra.Command) error {
	name := envOrDefault("GLSTYLE_LOG_LEVEL", "warn")
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		name = v
	}
	level, err := logger.ParseLevel(name)
	if err != nil {
		return err
	}
	logger.Set(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		root.PrintErrf("%+v\n", err)
		os.Exit(1)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
