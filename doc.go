// Package gesturenet provides a gesture-recognition engine: a
// combinator algebra (package core) compiled into a token-flow
// network that consumes sensor events and recognizes composite
// gestures built from them.
//
// gestures provides a declarative, data-driven front end for
// building core.Expression values from YAML; sensor provides
// core.Sensor adapters for MQTT, websockets, cron schedules and
// tests; predicate provides the three predicate kinds gestures
// supports; docgen and history provide documentation rendering and
// recognition-event persistence respectively. Command-line entry
// points live under cmd.
package gesturenet
