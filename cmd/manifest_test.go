package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/stamp/internal/domain"
)

func TestManifestCmd(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		static bool
	}{
		{name: "default", args: []string{"manifest"}},
		{name: "static", args: []string{"manifest", "--static"}, static: true},
		{name: "static shorthand", args: []string{"manifest", "-s"}, static: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, mockWorkflow := setupCmd(t, newManifestCmd())

			mockWorkflow.On("Manifest", mock.Anything, mock.MatchedBy(func(args domain.ManifestArgs) bool {
				return args.Static == tt.static
			})).Return(nil)

			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
		})
	}
}

func TestNewManifestCmd(t *testing.T) {
	cmd := newManifestCmd()

	assert.Equal(t, "manifest [paths...]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("static"))
}
