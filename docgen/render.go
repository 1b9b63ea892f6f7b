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

import (
	"fmt"
	"html"
	"io"
	"io/ioutil"

	"github.com/russross/blackfriday/v2"

	"github.com/Comcast/gesturenet/gestures"
)

// RenderSourceHTML writes src's expression tree as an HTML fragment:
// the Source's own Doc, then each Node rendered as a row in a nested
// table, recursively.
func RenderSourceHTML(src *gestures.Source, out io.Writer) error {
	f := func(format string, args ...interface{}) {
		fmt.Fprintf(out, format+"\n", args...)
	}

	f(`<div class="sourceName"><h2>%s</h2></div>`, src.Name)
	if src.Version != "" {
		f(`<div class="sourceVersion">version %s</div>`, src.Version)
	}
	if src.Doc != "" {
		f(`<div class="sourceDoc doc">%s</div>`, blackfriday.Run([]byte(src.Doc)))
	}

	f(`<div class="nodes">`)
	renderNode(f, src.Root)
	f(`</div>`)

	return nil
}

func renderNode(f func(string, ...interface{}), n *gestures.Node) {
	if n == nil {
		f(`<div class="node empty">(empty)</div>`)
		return
	}

	f(`<table class="node"><tr><td>`)
	if n.Doc != "" {
		f(`<div class="nodeDoc doc">%s</div>`, blackfriday.Run([]byte(n.Doc)))
	}

	switch {
	case n.Feature != "":
		f(`<div class="feature">feature: <code>%s</code></div>`, n.Feature)
		renderPredicate(f, n.Predicate)

	case n.Seq != nil:
		renderCombinator(f, "seq", n.Seq)

	case n.Par != nil:
		renderCombinator(f, "par", n.Par)

	case n.Choice != nil:
		renderCombinator(f, "choice", n.Choice)

	case n.Iter != nil:
		f(`<div class="combinator">iter</div>`)
		renderNode(f, n.Iter)

	default:
		f(`<div class="node empty">(empty)</div>`)
	}

	f(`</td></tr></table>`)
}

func renderCombinator(f func(string, ...interface{}), name string, children []*gestures.Node) {
	f(`<div class="combinator">%s</div><table class="combinatorChildren">`, name)
	for _, child := range children {
		f(`<tr><td>`)
		renderNode(f, child)
		f(`</td></tr>`)
	}
	f(`</table>`)
}

func renderPredicate(f func(string, ...interface{}), p *gestures.PredicateSource) {
	if p == nil {
		return
	}
	switch {
	case p.Pattern != nil:
		f(`<div class="predicate">pattern: <code>%v</code></div>`, p.Pattern)
	case p.Script != "":
		f(`<div class="predicate">script: <pre>%s</pre></div>`, p.Script)
	case p.Field != "":
		op, threshold := inequalityLabel(p)
		f(`<div class="predicate">%s %s %v</div>`, p.Field, html.EscapeString(op), threshold)
	}
}

func inequalityLabel(p *gestures.PredicateSource) (string, float64) {
	switch {
	case p.LT != nil:
		return "<", *p.LT
	case p.LE != nil:
		return "<=", *p.LE
	case p.GT != nil:
		return ">", *p.GT
	case p.GE != nil:
		return ">=", *p.GE
	case p.NE != nil:
		return "!=", *p.NE
	}
	return "", 0
}

// RenderSourcePage wraps RenderSourceHTML in a full HTML document,
// linking the given stylesheets.
func RenderSourcePage(src *gestures.Source, out io.Writer, cssFiles []string) error {
	if cssFiles == nil {
		cssFiles = []string{"/static/docgen.css"}
	}

	fmt.Fprintf(out, `<!DOCTYPE html>
<meta charset="utf-8">
<html>
  <head>
  <title>%s</title>
`, src.Name)

	for _, cssFile := range cssFiles {
		fmt.Fprintf(out, "  <link href=\"%s\" rel=\"stylesheet\">\n", cssFile)
	}

	fmt.Fprintf(out, `
  </head>
  <body>
`)

	if err := RenderSourceHTML(src, out); err != nil {
		return err
	}

	fmt.Fprintf(out, `
  </body>
</html>
`)

	return nil
}

// ReadAndRenderSourcePage loads a Source from filename and renders it
// as a full HTML page.
func ReadAndRenderSourcePage(filename string, cssFiles []string, out io.Writer) error {
	bs, err := ioutil.ReadFile(filename)
	if err != nil {
		return err
	}
	src, err := gestures.LoadSource(bs)
	if err != nil {
		return err
	}
	return RenderSourcePage(src, out, cssFiles)
}
