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
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Comcast/gesturenet/gestures"
)

var titleCaser = cases.Title(language.English)

func newCompileCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile <source.yaml>",
		Short: "Parse and compile a gesture source, reporting any error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd, args[0], rootOpts)
		},
	}
	return cmd
}

func runCompile(cmd *cobra.Command, filename string, rootOpts *RootOptions) error {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	src, err := gestures.LoadSource(bs)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if _, err := gestures.Build(src); err != nil {
		return fmt.Errorf("compile: %w", err)
	}

	stats := countNodes(src.Root)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: ok\n", titleCaser.String(src.Name))
	if rootOpts.Verbose {
		fmt.Fprintf(out, "  ground: %d  seq: %d  par: %d  choice: %d  iter: %d\n",
			stats.ground, stats.seq, stats.par, stats.choice, stats.iter)
	}
	for _, problem := range gestures.Lint(src) {
		fmt.Fprintf(out, "  warning: %s\n", problem)
	}
	return nil
}

type nodeStats struct {
	ground, seq, par, choice, iter int
}

func countNodes(n *gestures.Node) nodeStats {
	var s nodeStats
	walkNodes(n, &s)
	return s
}

func walkNodes(n *gestures.Node, s *nodeStats) {
	if n == nil {
		return
	}
	switch {
	case n.Feature != "":
		s.ground++
	case n.Seq != nil:
		s.seq++
		for _, child := range n.Seq {
			walkNodes(child, s)
		}
	case n.Par != nil:
		s.par++
		for _, child := range n.Par {
			walkNodes(child, s)
		}
	case n.Choice != nil:
		s.choice++
		for _, child := range n.Choice {
			walkNodes(child, s)
		}
	case n.Iter != nil:
		s.iter++
		walkNodes(n.Iter, s)
	}
}
