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

package predicate

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/Comcast/gesturenet/core"
)

// Script builds a core.Predicate from ECMAScript source, compiled
// once by Script and then run once per Event. src is the body of a
// function, so it must `return` its result (e.g.
// "return payload.speed > 5;"); the payload is bound to the variable
// "payload".
//
// The predicate holds only when the script returns the boolean true;
// any other result, truthy or not, is a non-match. A
// script that throws panics instead: predicate evaluation runs ahead
// of any network mutation, so a throw propagates out of the Sensor
// callback with engine state still consistent, exactly as a raise
// from any other predicate kind would.
func Script(src string) (core.Predicate, error) {
	prog, err := goja.Compile("", wrapExpr(src), true)
	if err != nil {
		return nil, fmt.Errorf("predicate: bad script: %w", err)
	}

	return func(payload interface{}) bool {
		vm := goja.New()
		vm.Set("payload", payload)

		v, err := vm.RunProgram(prog)
		if err != nil {
			panic(err)
		}
		b, is := v.Export().(bool)
		return is && b
	}, nil
}

func wrapExpr(src string) string {
	return "(function(){ " + src + " })()"
}
