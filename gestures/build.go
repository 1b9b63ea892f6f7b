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

package gestures

import (
	"fmt"

	"github.com/Comcast/gesturenet/core"
	"github.com/Comcast/gesturenet/match"
	"github.com/Comcast/gesturenet/predicate"
)

// Build recursively compiles a Source's expression tree into a
// core.Expression, resolving every Node's Predicate via the
// predicate package. The returned Expression is not yet compiled
// against a Sensor; call its Compile method (or pass it to a
// Library-driven loader) to get a live core.Recognizer.
func Build(src *Source) (core.Expression, error) {
	if src == nil || src.Root == nil {
		return nil, fmt.Errorf("gestures: Source %q has no root node", srcName(src))
	}
	return buildNode(src.Root)
}

func srcName(src *Source) string {
	if src == nil {
		return "<nil>"
	}
	return src.Name
}

func buildNode(n *Node) (core.Expression, error) {
	if n == nil {
		return nil, fmt.Errorf("gestures: nil node")
	}

	kinds := 0
	if n.Feature != "" {
		kinds++
	}
	if n.Seq != nil {
		kinds++
	}
	if n.Par != nil {
		kinds++
	}
	if n.Choice != nil {
		kinds++
	}
	if n.Iter != nil {
		kinds++
	}
	if kinds != 1 {
		return nil, fmt.Errorf("gestures: node must set exactly one of feature/seq/par/choice/iter, got %d", kinds)
	}

	switch {
	case n.Feature != "":
		pred, err := buildPredicate(n.Predicate)
		if err != nil {
			return nil, err
		}
		return core.Ground(core.Feature(n.Feature), pred), nil

	case n.Seq != nil:
		return buildFold(n.Seq, core.Seq, "seq")

	case n.Par != nil:
		return buildFold(n.Par, core.Par, "par")

	case n.Choice != nil:
		return buildFold(n.Choice, core.Choice, "choice")

	case n.Iter != nil:
		body, err := buildNode(n.Iter)
		if err != nil {
			return nil, err
		}
		return core.Iter(body), nil
	}

	panic("gestures: unreachable")
}

// buildFold builds each of children and combines them left-to-right
// with combine, e.g. [a, b, c] becomes combine(combine(a, b), c).
func buildFold(children []*Node, combine func(l, r core.Expression) core.Expression, what string) (core.Expression, error) {
	if len(children) < 2 {
		return nil, fmt.Errorf("gestures: %s needs at least 2 children, got %d", what, len(children))
	}

	acc, err := buildNode(children[0])
	if err != nil {
		return nil, err
	}
	for _, child := range children[1:] {
		next, err := buildNode(child)
		if err != nil {
			return nil, err
		}
		acc = combine(acc, next)
	}
	return acc, nil
}

func buildPredicate(p *PredicateSource) (core.Predicate, error) {
	if p == nil {
		return nil, nil
	}

	ops := inequalityOps(p)
	if len(ops) > 1 {
		return nil, fmt.Errorf("gestures: predicate must set at most one inequality operator, got %d", len(ops))
	}

	set := 0
	if p.Pattern != nil {
		set++
	}
	if p.Script != "" {
		set++
	}
	if len(ops) == 1 {
		set++
	}
	if set > 1 {
		return nil, fmt.Errorf("gestures: predicate must set at most one of pattern/script/inequality")
	}

	switch {
	case p.Pattern != nil:
		return predicate.Pattern(match.DefaultMatcher, p.Pattern)
	case p.Script != "":
		return predicate.Script(p.Script)
	case len(ops) == 1:
		for op, threshold := range ops {
			return predicate.Inequality(p.Field, op, threshold)
		}
	}
	return nil, nil
}

func inequalityOps(p *PredicateSource) map[predicate.Op]float64 {
	ops := make(map[predicate.Op]float64, 1)
	if p.LT != nil {
		ops[predicate.LT] = *p.LT
	}
	if p.LE != nil {
		ops[predicate.LE] = *p.LE
	}
	if p.GT != nil {
		ops[predicate.GT] = *p.GT
	}
	if p.GE != nil {
		ops[predicate.GE] = *p.GE
	}
	if p.NE != nil {
		ops[predicate.NE] = *p.NE
	}
	return ops
}
