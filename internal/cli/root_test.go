package cli_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/fivesquare/internal/cli"
	"github.com/macropower/fivesquare/pkg/squareerrors"
)

func newTestConfig(t *testing.T) cli.Config {
	t.Helper()

	dir := t.TempDir()

	cfg := cli.DefaultConfig()
	cfg.InputFile = filepath.Join(dir, cli.DefaultInputFile)
	cfg.OutputFile = filepath.Join(dir, cli.DefaultOutputFile)

	return cfg
}

func TestRootCmd(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		err     error
		input   *string
		want    string
		wantMsg string
	}{
		"lower bound": {
			input: ptr("5\n"),
			want:  "25\n",
		},
		"upper bound": {
			input: ptr("400000"),
			want:  "160000000000\n",
		},
		"not a multiple": {
			input:   ptr("12"),
			err:     squareerrors.ErrInvalidArgument,
			wantMsg: "Argument 12 must be a multiple of 5",
		},
		"zero": {
			input:   ptr("0"),
			err:     squareerrors.ErrOutOfRange,
			wantMsg: "Argument 0 doesn't fall in the range [5, 400000]",
		},
		"above range": {
			input:   ptr("400005"),
			err:     squareerrors.ErrOutOfRange,
			wantMsg: "Argument 400005 doesn't fall in the range [5, 400000]",
		},
		"not a number": {
			input:   ptr("abc"),
			err:     squareerrors.ErrFileRead,
			wantMsg: "Error reading %s at line 1",
		},
		"missing input": {
			err:     squareerrors.ErrFileOpen,
			wantMsg: "Unable to open %s",
		},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			cfg := newTestConfig(t)
			if tc.input != nil {
				require.NoError(t, os.WriteFile(cfg.InputFile, []byte(*tc.input), 0o600))
			}

			cmd := cli.NewRootCmd("test_run", "", "", cli.WithConfig(cfg))
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}

			cmd.SetArgs([]string{})
			cmd.SetOut(stdout)
			cmd.SetErr(stderr)

			err := cmd.Execute()
			assert.Empty(t, stdout.String(), "stdout should be empty")
			assert.Empty(t, stderr.String(), "stderr should be empty")

			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				assert.Equal(t, formatMsg(tc.wantMsg, cfg.InputFile), cli.Message(err))
				assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
				assert.NoFileExists(t, cfg.OutputFile)

				return
			}

			require.NoError(t, err)

			got, err := os.ReadFile(cfg.OutputFile)
			require.NoError(t, err)
			assert.Equal(t, tc.want, string(got))
		})
	}
}

func TestRootCmdWriteFailure(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)
	cfg.OutputFile = filepath.Join(filepath.Dir(cfg.OutputFile), "missing", cli.DefaultOutputFile)
	require.NoError(t, os.WriteFile(cfg.InputFile, []byte("10"), 0o600))

	tc := cli.NewRootCmd("test_run", "", "", cli.WithConfig(cfg))
	tc.SetArgs([]string{})
	tc.SetOut(&bytes.Buffer{})
	tc.SetErr(&bytes.Buffer{})

	err := tc.Execute()
	require.ErrorIs(t, err, squareerrors.ErrFileOpen)
	assert.Equal(t, "Unable to open "+cfg.OutputFile, cli.Message(err))
}

func TestRootCmdDebugLogging(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)
	cfg.LogLevel = "debug"
	cfg.LogFormat = "logfmt"
	require.NoError(t, os.WriteFile(cfg.InputFile, []byte("7"), 0o600))

	tc := cli.NewRootCmd("test_run", "", "", cli.WithConfig(cfg))
	stderr := &bytes.Buffer{}

	tc.SetArgs([]string{})
	tc.SetOut(&bytes.Buffer{})
	tc.SetErr(stderr)

	err := tc.Execute()
	require.ErrorIs(t, err, squareerrors.ErrInvalidArgument)

	assert.Contains(t, stderr.String(), "operation_name=read")
	assert.Contains(t, stderr.String(), "operation_name=compute")
	assert.NotContains(t, stderr.String(), "operation_name=write")
	assert.Contains(t, stderr.String(), "kind=invalid_argument")
	assert.Contains(t, stderr.String(), "status=ok")
	assert.Contains(t, stderr.String(), "status=failed")
	assert.Contains(t, stderr.String(), "error_kind=invalid_argument")
}

func TestRootCmdBadLogConfig(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)
	cfg.LogLevel = "loud"

	tc := cli.NewRootCmd("test_run", "", "", cli.WithConfig(cfg))
	tc.SetArgs([]string{})
	tc.SetOut(&bytes.Buffer{})
	tc.SetErr(&bytes.Buffer{})

	err := tc.Execute()
	require.ErrorIs(t, err, cli.ErrLogHandlerFailed)
	assert.Equal(t, cli.GenericErrorMessage, cli.Message(err))
}

func TestRootCmdRejectsArgs(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)

	tc := cli.NewRootCmd("test_run", "", "", cli.WithConfig(cfg))
	tc.SetArgs([]string{"input.txt"})
	tc.SetOut(&bytes.Buffer{})
	tc.SetErr(&bytes.Buffer{})

	err := tc.Execute()
	require.Error(t, err)
	assert.Equal(t, cli.GenericErrorMessage, cli.Message(err))
}

func BenchmarkRun(b *testing.B) {
	dir := b.TempDir()

	cfg := cli.DefaultConfig()
	cfg.InputFile = filepath.Join(dir, cli.DefaultInputFile)
	cfg.OutputFile = filepath.Join(dir, cli.DefaultOutputFile)
	require.NoError(b, os.WriteFile(cfg.InputFile, []byte("400000\n"), 0o600))

	for range b.N {
		tc := cli.NewRootCmd("bench_run", "", "", cli.WithConfig(cfg))
		tc.SetArgs([]string{})
		tc.SetOut(&bytes.Buffer{})
		tc.SetErr(&bytes.Buffer{})

		err := tc.Execute()
		require.NoError(b, err)
	}
}

func ptr(s string) *string {
	return &s
}

func formatMsg(msg, fileName string) string {
	if !strings.Contains(msg, "%s") {
		return msg
	}

	return fmt.Sprintf(msg, fileName)
}
