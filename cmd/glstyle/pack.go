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
package main

import (
	"fmt"

	"github.com/gx-org/glstyle/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <color>",
		Short: "Print a color packed into two floats",
		Long: `Print a color packed into two floats, as stored in attributes and uniforms.
The color is a CSS color string or an array of numbers, for example "[255, 0, 0, 0.5]".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packed, err := packArg(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g %g\n", packed[0], packed[1])
			return err
		},
	}
}

func packArg(arg string) (color.Packed, error) {
	var val any = arg
	var arr []any
	if err := yaml.Unmarshal([]byte(arg), &arr); err == nil && arr != nil {
		val = arr
	}
	c, err := color.Parse(val)
	if err != nil {
		return color.Packed{}, err
	}
	return color.Pack(c), nil
}
