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

// Source is a named, versioned description of an expression tree,
// the data-authored counterpart of a hand-built core.Expression.  It
// plays the role Comcast-sheens/crew's SpecSource plays for a
// Machine: something a host loads from a file or a message and hands
// to Build rather than wiring Go closures directly.
type Source struct {
	Name    string `yaml:"name" json:"name"`
	Version string `yaml:"version,omitempty" json:"version,omitempty"`
	Doc     string `yaml:"doc,omitempty" json:"doc,omitempty"`
	Root    *Node  `yaml:"root" json:"root"`
}

// Copy returns a deep copy of the Source, the way crew.SpecSource.Copy
// does for a Machine's spec — used by Library so a caller's Source
// value can't be mutated out from under a registered entry. A
// predicate's Pattern value is the one exception: it is shared with
// the original, not copied.
func (s *Source) Copy() *Source {
	if s == nil {
		return nil
	}
	return &Source{
		Name:    s.Name,
		Version: s.Version,
		Doc:     s.Doc,
		Root:    s.Root.copy(),
	}
}

// Node is one node of a Source's expression tree. Exactly one of
// Feature, Seq, Par, Choice or Iter should be set; Build reports an
// error for a Node that sets none or more than one.
type Node struct {
	// Doc is Markdown documentation for this node, rendered by the
	// docgen package; it has no effect on Build.
	Doc string `yaml:"doc,omitempty" json:"doc,omitempty"`

	// Feature, with an optional Predicate, makes this node a Ground
	// term.
	Feature   string           `yaml:"feature,omitempty" json:"feature,omitempty"`
	Predicate *PredicateSource `yaml:"predicate,omitempty" json:"predicate,omitempty"`

	// Seq, Par and Choice each combine two or more children
	// left-associatively: [a, b, c] under Seq means Seq(Seq(a, b), c).
	Seq    []*Node `yaml:"seq,omitempty" json:"seq,omitempty"`
	Par    []*Node `yaml:"par,omitempty" json:"par,omitempty"`
	Choice []*Node `yaml:"choice,omitempty" json:"choice,omitempty"`

	// Iter repeats a single child indefinitely.
	Iter *Node `yaml:"iter,omitempty" json:"iter,omitempty"`
}

func (n *Node) copy() *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		Doc:       n.Doc,
		Feature:   n.Feature,
		Predicate: n.Predicate.copy(),
		Iter:      n.Iter.copy(),
	}
	c.Seq = copyNodes(n.Seq)
	c.Par = copyNodes(n.Par)
	c.Choice = copyNodes(n.Choice)
	return c
}

func copyNodes(ns []*Node) []*Node {
	if ns == nil {
		return nil
	}
	out := make([]*Node, len(ns))
	for i, n := range ns {
		out[i] = n.copy()
	}
	return out
}

// PredicateSource describes a core.Predicate to attach to a Ground
// term. Exactly one field group should be set: Pattern alone, Script
// alone, or Field with exactly one of the inequality operators.
type PredicateSource struct {
	Pattern interface{} `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Script  string      `yaml:"script,omitempty" json:"script,omitempty"`

	Field string   `yaml:"field,omitempty" json:"field,omitempty"`
	LT    *float64 `yaml:"lt,omitempty" json:"lt,omitempty"`
	LE    *float64 `yaml:"le,omitempty" json:"le,omitempty"`
	GT    *float64 `yaml:"gt,omitempty" json:"gt,omitempty"`
	GE    *float64 `yaml:"ge,omitempty" json:"ge,omitempty"`
	NE    *float64 `yaml:"ne,omitempty" json:"ne,omitempty"`
}

func (p *PredicateSource) copy() *PredicateSource {
	if p == nil {
		return nil
	}
	c := *p
	for _, f := range []**float64{&c.LT, &c.LE, &c.GT, &c.GE, &c.NE} {
		if *f != nil {
			v := **f
			*f = &v
		}
	}
	return &c
}
