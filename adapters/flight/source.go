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

// Package flight adapts an Arrow Flight DoGet stream to the tableview batch
// source contract.
package flight

import (
	"context"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/flight"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Option configures a Source.
type Option func(*Source)

// WithLogger sets the logger used for stream diagnostics.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Source) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Connect dials a Flight server. Without explicit dial options the
// connection uses insecure transport credentials, which is what development
// Flight servers expect; pass grpc.WithTransportCredentials to override.
func Connect(addr string, opts ...grpc.DialOption) (flight.Client, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	return flight.NewClientWithMiddleware(addr, nil, nil, opts...)
}

// Source pulls record batches from a Flight DoGet stream.
type Source struct {
	reader  *flight.Reader
	logger  *zap.Logger
	batches int64
	rows    int64
	done    bool
}

// DoGet issues a DoGet for ticket on client and returns a source over the
// resulting stream.
func DoGet(ctx context.Context, client flight.Client, ticket *flight.Ticket, opts ...Option) (*Source, error) {
	stream, err := client.DoGet(ctx, ticket)
	if err != nil {
		return nil, err
	}
	reader, err := flight.NewRecordReader(stream)
	if err != nil {
		return nil, err
	}
	return NewSource(reader, opts...), nil
}

// NewSource wraps an already-open Flight record reader.
func NewSource(reader *flight.Reader, opts ...Option) *Source {
	s := &Source{reader: reader, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schema implements tableview.BatchSource.
func (s *Source) Schema() (*arrow.Schema, error) {
	return s.reader.Schema(), nil
}

// Next implements tableview.BatchSource.
func (s *Source) Next() (arrow.Record, error) {
	if s.done {
		return nil, io.EOF
	}
	if !s.reader.Next() {
		s.done = true
		if err := s.reader.Err(); err != nil && err != io.EOF {
			s.logger.Warn("flight stream failed",
				zap.Int64("batches", s.batches),
				zap.Error(err))
			return nil, err
		}
		s.logger.Debug("flight stream drained",
			zap.Int64("batches", s.batches),
			zap.Int64("rows", s.rows))
		return nil, io.EOF
	}
	rec := s.reader.Record()
	rec.Retain()
	s.batches++
	s.rows += rec.NumRows()
	return rec, nil
}

// Close implements tableview.BatchSource. It releases the stream reader but
// leaves the Flight client open for further calls.
func (s *Source) Close() error {
	s.done = true
	s.reader.Release()
	return nil
}
