package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aires/internal/result"
)

func TestOutputFormatterSuccessJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	err := f.Success("/out/booklet_b-1_1.json", "corr-1")
	require.NoError(t, err)

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "/out/booklet_b-1_1.json", resp.Data)
	assert.Equal(t, "corr-1", resp.CorrelationID)
	assert.Nil(t, resp.Error)
}

func TestOutputFormatterSuccessText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	require.NoError(t, f.Success("done", ""))
	assert.Equal(t, "done\n", buf.String())
}

func TestOutputFormatterFailureJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "json", Writer: buf}

	err := f.Failure(result.CodeNotFound, "no booklet found at path /x", "corr-2")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp Response
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, result.CodeNotFound, resp.Error.Code)
	assert.Equal(t, "no booklet found at path /x", resp.Error.Message)
	assert.Equal(t, "corr-2", resp.CorrelationID)
}

func TestOutputFormatterFailureText(t *testing.T) {
	buf := &bytes.Buffer{}
	f := &OutputFormatter{Format: "text", Writer: buf}

	err := f.Failure(result.CodeInvalidInput, "booklet must not be nil", "")
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Error [INVALID_INPUT]: booklet must not be nil")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExitCodeMapping(t *testing.T) {
	tests := []struct {
		code string
		want int
	}{
		{result.CodeInvalidInput, ExitCommandError},
		{result.CodeNotFound, ExitFailure},
		{result.CodeSaveError, ExitFailure},
		{result.CodeLoadError, ExitFailure},
		{result.CodeListError, ExitFailure},
		{result.CodeDeleteError, ExitFailure},
		{result.CodeCancelled, ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeFor(tt.code))
		})
	}
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "bad flag")))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain error")))

	wrapped := WrapExitError(ExitCommandError, "outer", errors.New("inner"))
	assert.Equal(t, ExitCommandError, GetExitCode(wrapped))
	assert.Contains(t, wrapped.Error(), "outer: inner")
	assert.EqualError(t, errors.Unwrap(wrapped), "inner")
}

func TestVerboseLog(t *testing.T) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}

	f := &OutputFormatter{Format: "json", Writer: out, ErrWriter: errOut, Verbose: true}
	f.VerboseLog("saving %d bytes", 42)
	assert.Empty(t, out.String(), "verbose output must not corrupt JSON output")
	assert.Equal(t, "saving 42 bytes\n", errOut.String())

	quiet := &OutputFormatter{Format: "text", Writer: out, ErrWriter: errOut, Verbose: false}
	errOut.Reset()
	quiet.VerboseLog("hidden")
	assert.Empty(t, errOut.String())
}
