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

import "fmt"

// Lint walks src's expression tree looking for a Node that can never
// complete upward placed anywhere but the last position of a Seq
// list — an Iter whose front resets instead of completing, stalling
// every sibling that comes after it in that Seq. Build does not
// reject this pattern (core.Seq's own doc comment states the same
// stall exists and core does not guard against it either); Lint is a
// separate, opt-in check a loader can run over author-supplied
// Sources before registering them in a Library.
func Lint(src *Source) []string {
	if src == nil || src.Root == nil {
		return nil
	}
	var problems []string
	lintNode(src.Root, &problems)
	return problems
}

func lintNode(n *Node, problems *[]string) {
	if n == nil {
		return
	}

	switch {
	case n.Seq != nil:
		for i, child := range n.Seq {
			if i < len(n.Seq)-1 && neverCompletes(child) {
				*problems = append(*problems, fmt.Sprintf(
					"seq child %d of %d never completes, so every later child in this seq never starts",
					i+1, len(n.Seq)))
			}
			lintNode(child, problems)
		}
	case n.Par != nil:
		for _, child := range n.Par {
			lintNode(child, problems)
		}
	case n.Choice != nil:
		for _, child := range n.Choice {
			lintNode(child, problems)
		}
	case n.Iter != nil:
		lintNode(n.Iter, problems)
	}
}

// neverCompletes reports whether n's compiled form can never complete
// upward to its parent combinator: directly, because n is an Iter; or
// transitively, through a Seq whose last child never completes, a Par
// with any child that never completes, or a Choice whose every child
// never completes.
func neverCompletes(n *Node) bool {
	if n == nil {
		return false
	}
	switch {
	case n.Iter != nil:
		return true
	case n.Seq != nil:
		return len(n.Seq) > 0 && neverCompletes(n.Seq[len(n.Seq)-1])
	case n.Par != nil:
		for _, child := range n.Par {
			if neverCompletes(child) {
				return true
			}
		}
		return false
	case n.Choice != nil:
		for _, child := range n.Choice {
			if !neverCompletes(child) {
				return false
			}
		}
		return len(n.Choice) > 0
	}
	return false
}
