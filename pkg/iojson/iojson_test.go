package iojson

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWith_Indented(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, map[string]int{"bars": 4}))

	assert.Equal(t, "{\n  \"bars\": 4\n}\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestWriteWith_MarshalFailure(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, WriteWith(&out, &errOut, map[string]any{"f": func() {}}))

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), `"json_error"`)
}

func TestWriteError(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteError(&out, "bad chord", map[string]any{"input": "H7"}))

	assert.Equal(t, `{"message":"bad chord","data":{"input":"H7"}}`+"\n", out.String())
}

func TestWriteLines(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, WriteLines(&out, []string{"C", "F#-7"}))

	assert.Equal(t, "\"C\"\n\"F#-7\"\n", out.String())
}

func TestTokenReader(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		stdin   string
		isTerm  bool
		want    []string
		wantErr error
	}{
		{name: "arguments win", args: []string{"C", "G7"}, stdin: "ignored", want: []string{"C", "G7"}},
		{name: "piped stdin split on whitespace", stdin: "C  F#-7\nBb^/D\n", want: []string{"C", "F#-7", "Bb^/D"}},
		{name: "empty pipe", stdin: "", want: nil},
		{name: "terminal without arguments", isTerm: true, wantErr: ErrNoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := TokenReader{
				Stdin:      strings.NewReader(tt.stdin),
				IsTerminal: func() bool { return tt.isTerm },
			}

			got, err := tr.Read(tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
