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

import (
	"context"
	"os"
	"path/filepath"

	"rivaas.dev/taskdocs/codec"
)

// File writes encoded values to a file on disk.
//
// Writes are atomic: data goes to a temporary file in the destination
// directory, which is synced and renamed over the destination. A failed Dump
// leaves any existing destination untouched and removes the temporary file.
type File struct {
	path        string
	encoder     codec.Encoder
	permissions os.FileMode
}

const (
	// DefaultFilePermissions is the mode of written files (0644).
	DefaultFilePermissions = 0o644
)

// NewFile creates a File dumper that writes to path using encoder.
func NewFile(path string, encoder codec.Encoder) *File {
	return &File{
		path:        path,
		encoder:     encoder,
		permissions: DefaultFilePermissions,
	}
}

// NewFileWithPermissions creates a File dumper with custom file permissions.
func NewFileWithPermissions(path string, encoder codec.Encoder, permissions os.FileMode) *File {
	return &File{
		path:        path,
		encoder:     encoder,
		permissions: permissions,
	}
}

// Path returns the destination path.
func (f *File) Path() string {
	return f.path
}

// Dump encodes v and writes it to the destination atomically.
//
// Errors are returned as *[Error]. Filesystem failures wrap the underlying
// error, so errors.Is(err, fs.ErrNotExist) holds for a missing directory.
func (f *File) Dump(ctx context.Context, v any) error {
	if err := ctx.Err(); err != nil {
		return &Error{Path: f.path, Op: OpEncode, Err: err}
	}

	data, err := f.encoder.Encode(v)
	if err != nil {
		return &Error{Path: f.path, Op: OpEncode, Err: err}
	}

	return f.write(data)
}

// write performs the temp-file-and-rename sequence.
func (f *File) write(data []byte) (err error) {
	dir, base := filepath.Split(f.path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return &Error{Path: f.path, Op: OpCreate, Err: err}
	}
	tmpName := tmp.Name()

	closed := false
	defer func() {
		if err == nil {
			return
		}
		if !closed {
			_ = tmp.Close()
		}
		_ = os.Remove(tmpName)
	}()

	if _, err = tmp.Write(data); err != nil {
		return &Error{Path: f.path, Op: OpWrite, Err: err}
	}
	if err = tmp.Chmod(f.permissions); err != nil {
		return &Error{Path: f.path, Op: OpWrite, Err: err}
	}
	if err = tmp.Sync(); err != nil {
		return &Error{Path: f.path, Op: OpSync, Err: err}
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return &Error{Path: f.path, Op: OpClose, Err: err}
	}
	if err = os.Rename(tmpName, f.path); err != nil {
		return &Error{Path: f.path, Op: OpRename, Err: err}
	}

	return nil
}
