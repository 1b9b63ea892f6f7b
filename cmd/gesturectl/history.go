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
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Comcast/gesturenet/history"
)

func newHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		limit  int
		sqlite bool
	)

	cmd := &cobra.Command{
		Use:   "history <db-file>",
		Short: "List the most recently recorded gesture recognitions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var sink interface {
				Recent(context.Context, int) ([]history.Event, error)
				Close() error
			}

			if sqlite {
				s, err := history.OpenSQLiteSink(args[0])
				if err != nil {
					return err
				}
				sink = s
			} else {
				s, err := history.OpenBoltSink(args[0])
				if err != nil {
					return err
				}
				sink = s
			}
			defer sink.Close()

			events, err := sink.Recent(ctx, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, ev := range events {
				fmt.Fprintf(out, "%s  %s  %v\n", ev.At.Format("2006-01-02T15:04:05"), ev.Gesture, ev.Payload)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum events to show")
	cmd.Flags().BoolVar(&sqlite, "sqlite", false, "open the db file as SQLite rather than bbolt")
	return cmd
}
