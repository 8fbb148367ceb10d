// Copyright 2025 The Relay Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package typerr

import "go.uber.org/multierr"

// Appender accumulates errors from independent checking sessions.
// A single session stops at its first error: the appender only combines
// errors across sessions, one per failed session.
type Appender struct {
	errs error
}

// Append adds an error to the appender. Appending nil is a no-op.
func (a *Appender) Append(err error) {
	a.errs = multierr.Append(a.errs, err)
}

// Empty returns true if no error has been appended.
func (a *Appender) Empty() bool {
	return a.errs == nil
}

// Error returns all appended errors combined, or nil.
func (a *Appender) Error() error {
	return a.errs
}
