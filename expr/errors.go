//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package expr

import "errors"

// Every failure returned by Parse and Eval wraps exactly one of these.
// The UI presents them all identically; the distinction exists for
// diagnostics and tests.
var (
	ErrSyntax           = errors.New("syntax error")
	ErrDisallowed       = errors.New("disallowed construct")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrInvalidOperation = errors.New("invalid operation")
)
