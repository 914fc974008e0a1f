/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package driver

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tracer writes one JSON record per Run call to a single JSON array
// file, correlating each record by a fresh uuid so a reader can match a
// run against the frame counts it left behind.
type Tracer struct {
	file    io.WriteCloser
	m       sync.Mutex
	isFirst bool
}

type runRecord struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	OK           bool   `json:"ok"`
	Error        string `json:"error,omitempty"`
	FramesBefore int    `json:"frames_before"`
	FramesAfter  int    `json:"frames_after"`
	Timestamp    int64  `json:"ts"`
}

func NewTracer(file io.WriteCloser) *Tracer {
	file.Write([]byte("["))
	return &Tracer{file: file, isFirst: true}
}

func (t *Tracer) Close() {
	t.file.Write([]byte("]"))
	t.file.Close()
}

func (s *Session) logRun(id uuid.UUID, source string, ok bool, errMsg string, before, after int) {
	if s.trace == nil {
		return
	}
	s.trace.write(runRecord{
		ID:           id.String(),
		Source:       source,
		OK:           ok,
		Error:        errMsg,
		FramesBefore: before,
		FramesAfter:  after,
		Timestamp:    time.Now().UnixMicro(),
	})
}

func (t *Tracer) write(rec runRecord) {
	t.m.Lock()
	defer t.m.Unlock()
	if t.isFirst {
		t.isFirst = false
	} else {
		t.file.Write([]byte(",\n"))
	}
	b, _ := json.Marshal(rec)
	t.file.Write(b)
}
