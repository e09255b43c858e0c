package cli_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/doxymd/internal/cli"
	"github.com/yaklabco/doxymd/pkg/fsutil"
	"github.com/yaklabco/doxymd/pkg/xmldoc"
)

func TestExitCodeForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"invalid xml", fmt.Errorf("convert: %w", xmldoc.ErrInvalidXML), cli.ExitDataError},
		{"not found", fmt.Errorf("input: %w", fsutil.ErrNotFound), cli.ExitIOError},
		{"permission", fsutil.ErrPermissionDenied, cli.ExitIOError},
		{"directory", fsutil.ErrIsDirectory, cli.ExitIOError},
		{"all failed", cli.ErrAllInputsFailed, cli.ExitFailure},
		{"generic", errors.New("boom"), cli.ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, cli.ExitCodeForError(tt.err))
		})
	}
}
