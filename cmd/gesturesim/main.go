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

// Package main is gesturesim, a command-line driver that feeds a
// scripted sequence of sensor events into one gesture Source compiled
// against an in-process sensor.Mock, and prints every recognition as
// it fires.
//
// Events are read one per line as JSON objects:
//
//	{"feature": "down", "payload": {"x": 10, "y": 20}}
//
// in the spirit of mqshell's line-oriented shell, but scripted rather
// than interactive.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Comcast/gesturenet/core"
	"github.com/Comcast/gesturenet/gestures"
	"github.com/Comcast/gesturenet/sensor"
)

func main() {
	var (
		sourceFilename = flag.String("s", "", "gesture source YAML filename (required)")
		eventsFilename = flag.String("e", "", "events filename (default: stdin)")
		verbose        = flag.Bool("v", false, "log every delivered event, not just recognitions")
	)
	flag.Parse()

	if *sourceFilename == "" {
		log.Fatal("gesturesim: -s is required")
	}

	bs, err := os.ReadFile(*sourceFilename)
	if err != nil {
		log.Fatal(err)
	}

	src, err := gestures.LoadSource(bs)
	if err != nil {
		log.Fatalf("gesturesim: bad source: %s", err)
	}

	expr, err := gestures.Build(src)
	if err != nil {
		log.Fatalf("gesturesim: bad source: %s", err)
	}

	in := os.Stdin
	if *eventsFilename != "" {
		f, err := os.Open(*eventsFilename)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	mock := sensor.NewMock()
	rec := expr.Compile(mock)

	count := 0
	rec.Gesture().Subscribe(func() {
		count++
		fmt.Printf("# recognized %s (%d)\n", src.Name, count)
	})

	if err := run(in, mock, *verbose); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("# done: %d recognition(s) of %s\n", count, src.Name)
}

type scriptedEvent struct {
	Feature string      `json:"feature"`
	Payload interface{} `json:"payload"`
}

func run(in io.Reader, mock *sensor.Mock, verbose bool) error {
	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}

		var se scriptedEvent
		if err := json.Unmarshal([]byte(line), &se); err != nil {
			return fmt.Errorf("gesturesim: line %d: %w", lineNum, err)
		}

		if verbose {
			fmt.Printf("# publish %s %v\n", se.Feature, se.Payload)
		}

		mock.Publish(core.Event{Feature: core.Feature(se.Feature), Payload: se.Payload})
	}
	return scanner.Err()
}
