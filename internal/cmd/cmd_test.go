package cmd_test

import (
	"errors"
	"fmt"
	"testing"

	"go.followtheprocess.codes/lox/internal/cmd"
	"go.followtheprocess.codes/lox/internal/lox"
	"go.followtheprocess.codes/test"
)

func TestSmoke(t *testing.T) {
	_, err := cmd.Build()
	test.Ok(t, err)
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err      error // Error returned from the CLI
		name     string
		want     int  // Expected exit code
		reported bool // Whether the error was already shown
	}{
		{
			name:     "nil",
			err:      nil,
			want:     cmd.ExitOK,
			reported: false,
		},
		{
			name:     "source",
			err:      fmt.Errorf("%w: parse error", lox.ErrSource),
			want:     65,
			reported: true,
		},
		{
			name:     "runtime",
			err:      fmt.Errorf("%w: [line 1] Error: Division by zero.", lox.ErrRuntime),
			want:     70,
			reported: true,
		},
		{
			name:     "other",
			err:      errors.New("could not read file"),
			want:     cmd.ExitFailure,
			reported: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			test.Equal(t, cmd.ExitCode(tt.err), tt.want)
			test.Equal(t, cmd.Reported(tt.err), tt.reported)
		})
	}
}
