/* Copyright 2018-2019 Comcast Cable Communications Management, LLC
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Comcast/gesturenet/docgen"
	"github.com/Comcast/gesturenet/gestures"
)

func newDocCommand(rootOpts *RootOptions) *cobra.Command {
	var output string
	var format string

	cmd := &cobra.Command{
		Use:   "doc <source.yaml>",
		Short: "Render a gesture source's documentation as an HTML page or a Graphviz dot graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			switch format {
			case "html":
				return docgen.ReadAndRenderSourcePage(args[0], nil, out)
			case "dot":
				bs, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				src, err := gestures.LoadSource(bs)
				if err != nil {
					return err
				}
				return docgen.RenderSourceDot(src, out)
			default:
				return fmt.Errorf("unknown doc format %q (want html or dot)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path (default: stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html or dot")
	return cmd
}
