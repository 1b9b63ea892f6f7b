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

// Package main is gesturemq, a single-process gesture recognition
// daemon that subscribes to an MQTT broker and recognizes every
// gesture Source found in a directory of YAML files against it.
//
// Command-line flags follow mosquitto_sub / cmd/siomq convention.
package main

import (
	"context"
	"crypto/tls"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/Comcast/gesturenet/gestures"
	"github.com/Comcast/gesturenet/history"
	"github.com/Comcast/gesturenet/sensor"
)

func main() {
	var (
		broker    = flag.String("h", "tcp://localhost", "broker hostname")
		port      = flag.Int("p", 1883, "broker port")
		clientID  = flag.String("i", "", "MQTT client id")
		keepAlive = flag.Int("k", 10, "keep-alive in seconds")
		userName  = flag.String("u", "", "username")
		password  = flag.String("P", "", "password")
		qos       = flag.Int("q", 0, "subscription QoS")
		insecure  = flag.Bool("insecure", false, "skip broker cert checking")
		reconnect = flag.Bool("reconnect", true, "automatically attempt to reconnect")

		sourcesDir = flag.String("sources", "sources", "directory of gesture source YAML files")
		configFile = flag.String("conf", "", "optional gestures.Config YAML file")
		historyDB  = flag.String("history", "", "optional bbolt file to record recognitions into")
	)
	flag.Parse()

	conf := &gestures.Config{}
	if *configFile != "" {
		bs, err := os.ReadFile(*configFile)
		if err != nil {
			log.Fatal(err)
		}
		conf, err = gestures.LoadConfig(bs)
		if err != nil {
			log.Fatal(err)
		}
	}
	brokerURL := fmt.Sprintf("%s:%d", *broker, *port)
	if conf.MQTTBroker != "" {
		// The config's broker is a full URL, port included.
		brokerURL = conf.MQTTBroker
	}
	if conf.HistoryPath != "" && *historyDB == "" {
		*historyDB = conf.HistoryPath
	}

	lib, err := loadLibrary(*sourcesDir)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("gesturemq: loaded %d source(s) from %s", len(lib.Names()), *sourcesDir)

	var sink history.Sink
	if *historyDB != "" {
		sink, err = history.OpenBoltSink(*historyDB)
		if err != nil {
			log.Fatal(err)
		}
		defer sink.Close()
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(*clientID)
	opts.SetKeepAlive(time.Second * time.Duration(*keepAlive))
	opts.Username = *userName
	opts.Password = *password
	opts.AutoReconnect = *reconnect
	opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: *insecure})
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Printf("gesturemq: connection lost: %s", err)
	}

	client := mqtt.NewClient(opts)
	if t := client.Connect(); t.Wait() && t.Error() != nil {
		log.Fatalf("gesturemq: connect: %s", t.Error())
	}
	defer client.Disconnect(250)

	mq := sensor.NewMQTT(client, byte(*qos))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for _, name := range lib.Names() {
		name := name
		expr, err := lib.Build(name)
		if err != nil {
			log.Printf("gesturemq: %s: %s", name, err)
			continue
		}
		rec := expr.Compile(mq)
		rec.Gesture().Subscribe(func() {
			log.Printf("gesturemq: recognized %s", name)
			if sink != nil {
				if err := sink.Record(ctx, history.Event{Gesture: name, At: time.Now()}); err != nil {
					log.Printf("gesturemq: record %s: %s", name, err)
				}
			}
		})
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	log.Printf("gesturemq: shutting down")
}

func loadLibrary(dir string) (*gestures.Library, error) {
	lib := gestures.NewLibrary()

	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	for _, filename := range matches {
		bs, err := os.ReadFile(filename)
		if err != nil {
			return nil, err
		}
		src, err := gestures.LoadSource(bs)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		lib.Set(src)
	}
	return lib, nil
}
