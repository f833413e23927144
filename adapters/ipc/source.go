// Copyright 2025 Magnus Pierre
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

// Package ipc adapts an Arrow IPC stream to the tableview batch source
// contract.
package ipc

import (
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/ipc"
)

// Source pulls record batches from an Arrow IPC stream.
type Source struct {
	reader *ipc.Reader
	done   bool
}

// NewSource creates a source over the IPC stream read from r.
func NewSource(r io.Reader, opts ...ipc.Option) (*Source, error) {
	reader, err := ipc.NewReader(r, opts...)
	if err != nil {
		return nil, err
	}
	return &Source{reader: reader}, nil
}

// Schema implements tableview.BatchSource.
func (s *Source) Schema() (*arrow.Schema, error) {
	return s.reader.Schema(), nil
}

// Next implements tableview.BatchSource. The stream's record is retained
// before handing it over, so it stays valid across subsequent reads.
func (s *Source) Next() (arrow.Record, error) {
	if s.done {
		return nil, io.EOF
	}
	if !s.reader.Next() {
		s.done = true
		if err := s.reader.Err(); err != nil && err != io.EOF {
			return nil, err
		}
		return nil, io.EOF
	}
	rec := s.reader.Record()
	rec.Retain()
	return rec, nil
}

// Close implements tableview.BatchSource.
func (s *Source) Close() error {
	s.done = true
	s.reader.Release()
	return nil
}
