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

package docgen

// dot -Tpng g.dot > g.png

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/Comcast/gesturenet/gestures"
)

var combinatorColor = map[string]string{
	"seq":    "#2d93ad",
	"par":    "#52aa5e",
	"choice": "#e3a13b",
	"iter":   "#b25bc9",
}

// RenderSourceDot writes src's expression tree as a Graphviz dot
// graph: one node per gestures.Node, labeled with its combinator or
// feature, and children linked by edges labeled with the child's
// 1-based position (an iter's single edge has no label).
func RenderSourceDot(src *gestures.Source, out io.Writer) error {
	fmt.Fprintf(out, "digraph %s {\n", dotID(src.Name))
	fmt.Fprintf(out, "  graph [ordering=out,rankdir=TB,nodesep=0.3,ranksep=0.6]\n")
	fmt.Fprintf(out, "  node [shape=\"record\" style=\"rounded,filled\"]\n")
	fmt.Fprintf(out, "  edge [fontsize=\"12\"]\n")

	seq := 0
	dotNode(out, src.Root, &seq)

	fmt.Fprintf(out, "}\n")
	return nil
}

// dotNode writes n and its children, returning n's own dot
// identifier. seq supplies a fresh identifier ("n1", "n2", ...) for
// every node, ground terms included.
func dotNode(out io.Writer, n *gestures.Node, seq *int) string {
	*seq++
	id := fmt.Sprintf("n%d", *seq)

	if n == nil {
		fmt.Fprintf(out, "  %s [label=\"(empty)\" fillcolor=\"#dddddd\"]\n", id)
		return id
	}

	switch {
	case n.Feature != "":
		label := "feature: " + string(n.Feature)
		if n.Predicate != nil {
			label += `\n` + dotPredicateLabel(n.Predicate)
		}
		fmt.Fprintf(out, "  %s [label=\"%s\" fillcolor=\"#99ddc8\"]\n", id, escapeDot(label))
		return id

	case n.Seq != nil:
		return dotCombinator(out, "seq", n.Seq, seq, id)

	case n.Par != nil:
		return dotCombinator(out, "par", n.Par, seq, id)

	case n.Choice != nil:
		return dotCombinator(out, "choice", n.Choice, seq, id)

	case n.Iter != nil:
		fmt.Fprintf(out, "  %s [label=\"iter\" shape=\"diamond\" fillcolor=\"%s\"]\n", id, combinatorColor["iter"])
		child := dotNode(out, n.Iter, seq)
		fmt.Fprintf(out, "  %s -> %s\n", id, child)
		return id

	default:
		fmt.Fprintf(out, "  %s [label=\"(empty)\" fillcolor=\"#dddddd\"]\n", id)
		return id
	}
}

func dotCombinator(out io.Writer, name string, children []*gestures.Node, seq *int, id string) string {
	fmt.Fprintf(out, "  %s [label=\"%s\" fillcolor=\"%s\"]\n", id, name, combinatorColor[name])
	for i, child := range children {
		childID := dotNode(out, child, seq)
		fmt.Fprintf(out, "  %s -> %s [label=\"%d\"]\n", id, childID, i+1)
	}
	return id
}

func dotPredicateLabel(p *gestures.PredicateSource) string {
	switch {
	case p.Pattern != nil:
		bs, err := yaml.Marshal(p.Pattern)
		if err != nil {
			return "pattern: " + err.Error()
		}
		return "pattern: " + strings.TrimSpace(string(bs))
	case p.Script != "":
		return "script"
	case p.Field != "":
		op, threshold := inequalityLabel(p)
		return fmt.Sprintf("%s %s %v", p.Field, op, threshold)
	}
	return ""
}

func escapeDot(s string) string {
	s = strings.Replace(s, `"`, `\"`, -1)
	return strings.Replace(s, "\n", `\n`, -1)
}

func dotID(name string) string {
	if name == "" {
		return "gesture"
	}
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
