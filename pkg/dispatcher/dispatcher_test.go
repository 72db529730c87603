// Copyright (c) 2026, NVIDIA CORPORATION.  All rights reserved.
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

package dispatcher

import (
	"bufio"
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/logq/pkg/defaults"
	"github.com/NVIDIA/logq/pkg/level"
)

type logged struct {
	message string
	level   level.Level
}

type fakeTarget struct {
	mu         sync.Mutex
	logs       []logged
	thresholds []level.Level
	logErr     error
}

func (f *fakeTarget) Log(_ context.Context, message string, l level.Level) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.logErr != nil {
		return f.logErr
	}
	f.logs = append(f.logs, logged{message, l})
	return nil
}

func (f *fakeTarget) SetThreshold(l level.Level) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.thresholds = append(f.thresholds, l)
	return nil
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "log", KindLog.String())
	assert.Equal(t, "set-level", KindSetLevel.String())
	assert.Equal(t, "exit", KindExit.String())
	assert.Equal(t, "unknown", Kind(9).String())
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    Command
		wantErr bool
	}{
		{"exit", "exit", Command{Kind: KindExit}, false},
		{"exit with space is a message", "exit ", Command{Kind: KindLog, Message: "exit ", Level: level.Medium}, false},
		{"set level", "SET_LEVEL HIGH", Command{Kind: KindSetLevel, Level: level.High}, false},
		{"set level extra spaces", "  SET_LEVEL   LOW  ", Command{Kind: KindSetLevel, Level: level.Low}, false},
		{"set level invalid", "SET_LEVEL VERBOSE", Command{Kind: KindSetLevel}, true},
		{"set level missing", "SET_LEVEL", Command{Kind: KindSetLevel}, true},
		{"set level lowercase", "SET_LEVEL high", Command{Kind: KindSetLevel}, true},
		{"level prefix", "HIGH disk almost full", Command{Kind: KindLog, Message: "disk almost full", Level: level.High}, false},
		{"level prefix keeps extra spaces", "LOW   spaced", Command{Kind: KindLog, Message: "  spaced", Level: level.Low}, false},
		{"level prefix leading whitespace", "  MEDIUM x", Command{Kind: KindLog, Message: "x", Level: level.Medium}, false},
		{"level only", "HIGH", Command{Kind: KindLog, Message: "", Level: level.High}, false},
		{"level prefix tab", "HIGH\tx", Command{Kind: KindLog, Message: "\tx", Level: level.High}, false},
		{"nbsp before level is plain text", "\u00a0HIGH disk full", Command{Kind: KindLog, Message: "\u00a0HIGH disk full", Level: level.Medium}, false},
		{"em space before level is plain text", "\u2003HIGH disk full", Command{Kind: KindLog, Message: "\u2003HIGH disk full", Level: level.Medium}, false},
		{"nel before level is plain text", "\u0085LOW x", Command{Kind: KindLog, Message: "\u0085LOW x", Level: level.Medium}, false},
		{"nbsp after level joins the token", "HIGH\u00a0x", Command{Kind: KindLog, Message: "HIGH\u00a0x", Level: level.Medium}, false},
		{"nbsp after set level is plain text", "SET_LEVEL\u00a0LOW", Command{Kind: KindLog, Message: "SET_LEVEL\u00a0LOW", Level: level.Medium}, false},
		{"lowercase level is plain text", "high not a level", Command{Kind: KindLog, Message: "high not a level", Level: level.Medium}, false},
		{"plain line", "cache warmed", Command{Kind: KindLog, Message: "cache warmed", Level: level.Medium}, false},
		{"empty line", "", Command{Kind: KindLog, Message: "", Level: level.Medium}, false},
		{"blank line", "   ", Command{Kind: KindLog, Message: "   ", Level: level.Medium}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.line, level.Medium)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, level.ErrInvalidLevel)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRun(t *testing.T) {
	input := strings.Join([]string{
		"HIGH boot ok",
		"debug detail",
		"SET_LEVEL HIGH",
		"SET_LEVEL LOUD",
		"MEDIUM cache miss",
		"exit",
		"HIGH after exit",
	}, "\n")

	target := &fakeTarget{}
	var out, errOut bytes.Buffer
	d := New(target, level.Low, WithOutput(&out, &errOut))

	require.NoError(t, d.Run(context.Background(), strings.NewReader(input)))

	assert.Equal(t, []logged{
		{"boot ok", level.High},
		{"debug detail", level.Low},
		{"cache miss", level.Medium},
	}, target.logs)
	assert.Equal(t, []level.Level{level.High}, target.thresholds)
	assert.Contains(t, out.String(), "LEVEL CHANGED TO -> HIGH")
	assert.Contains(t, errOut.String(), "wrong level for SET_LEVEL")
	assert.True(t, d.Exited())
}

func TestRunEOF(t *testing.T) {
	target := &fakeTarget{}
	d := New(target, level.Medium, WithOutput(&bytes.Buffer{}, &bytes.Buffer{}))

	require.NoError(t, d.Run(context.Background(), strings.NewReader("one\r\ntwo")))
	assert.Equal(t, []logged{{"one", level.Medium}, {"two", level.Medium}}, target.logs)
	assert.False(t, d.Exited())
}

func TestRunSkipsOversizedLine(t *testing.T) {
	target := &fakeTarget{}
	var errOut bytes.Buffer
	d := New(target, level.Medium, WithOutput(&bytes.Buffer{}, &errOut))

	huge := "HIGH " + strings.Repeat("x", defaults.MaxLineBytes)
	input := "before\n" + huge + "\nafter\n"

	require.NoError(t, d.Run(context.Background(), strings.NewReader(input)))
	assert.Equal(t, []logged{{"before", level.Medium}, {"after", level.Medium}}, target.logs)
	assert.Contains(t, errOut.String(), "exceeds the")
}

func TestReadLine(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		limit   int
		want    []string
		tooLong []bool
	}{
		{"lines", "a\nbb\n", 4, []string{"a", "bb"}, []bool{false, false}},
		{"crlf", "a\r\nb", 4, []string{"a", "b"}, []bool{false, false}},
		{"exact limit", "abcd\n", 4, []string{"abcd"}, []bool{false}},
		{"over limit", "abcde\nok\n", 4, []string{"", "ok"}, []bool{true, false}},
		{"over limit without newline", "abcdefgh", 4, []string{""}, []bool{true}},
		{"blank line", "\n", 4, []string{""}, []bool{false}},
		{"empty input", "", 4, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// the smallest reader buffer forces lines to span several reads
			br := bufio.NewReaderSize(strings.NewReader(tt.input), 16)
			var got []string
			var tooLong []bool
			for {
				line, n, long, err := readLine(br, tt.limit)
				if n > 0 {
					got = append(got, line)
					tooLong = append(tooLong, long)
				}
				if err != nil {
					require.ErrorIs(t, err, io.EOF)
					break
				}
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.tooLong, tooLong)
		})
	}
}

func TestRunStopsOnLogError(t *testing.T) {
	sentinel := stderrors.New("closed")
	target := &fakeTarget{logErr: sentinel}
	d := New(target, level.Medium, WithOutput(&bytes.Buffer{}, &bytes.Buffer{}))

	err := d.Run(context.Background(), strings.NewReader("x\ny\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, sentinel)
}

func TestRunContextCanceled(t *testing.T) {
	target := &fakeTarget{}
	d := New(target, level.Medium, WithOutput(&bytes.Buffer{}, &bytes.Buffer{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Run(ctx, strings.NewReader("x\n"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, target.logs)
}

func TestQuiet(t *testing.T) {
	target := &fakeTarget{}
	var out, errOut bytes.Buffer
	d := New(target, level.Medium, WithOutput(&out, &errOut), WithQuiet(true))

	d.PrintBanner()
	require.NoError(t, d.Run(context.Background(), strings.NewReader("SET_LEVEL LOW\nSET_LEVEL nope\n")))

	assert.Empty(t, out.String())
	assert.NotEmpty(t, errOut.String())
}

func TestPrintBanner(t *testing.T) {
	var out bytes.Buffer
	d := New(&fakeTarget{}, level.High, WithOutput(&out, nil))
	d.PrintBanner()

	assert.Contains(t, out.String(), "default level 'HIGH'")
	assert.Contains(t, out.String(), "Type 'exit' to quit.")
}
