// Copyright 2025 The Rivaas Authors
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

package dumper

import "fmt"

// Operations reported in [Error.Op].
const (
	OpEncode = "encode"
	OpCreate = "create"
	OpWrite  = "write"
	OpSync   = "sync"
	OpClose  = "close"
	OpRename = "rename"
)

// Error describes a failed dump: the destination, the step that failed, and the cause.
type Error struct {
	Path string
	Op   string
	Err  error
}

// Error returns a formatted error message.
func (e *Error) Error() string {
	return fmt.Sprintf("dump %s: %s failed: %v", e.Path, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}
