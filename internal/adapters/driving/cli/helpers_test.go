package cli

import (
	"testing"

	"github.com/spf13/pflag"

	configfile "github.com/open-technology-foundation/deltags/internal/adapters/driven/config/file"
	"github.com/open-technology-foundation/deltags/internal/core/services"
	"github.com/open-technology-foundation/deltags/internal/parsers"
	"github.com/open-technology-foundation/deltags/internal/postprocessors"
)

// setupTestServices injects a real pipeline with an isolated config dir
// and resets all flag state. The returned cleanup restores everything.
func setupTestServices(t *testing.T) func() {
	t.Helper()

	oldService := detagService
	oldStore := configStore

	store, err := configfile.NewConfigStore(t.TempDir())
	if err != nil {
		t.Fatalf("creating config store: %v", err)
	}
	configStore = store
	detagService = services.NewDetagService(
		parsers.NewDefaultRegistry(),
		postprocessors.NewDefaultRegistry(),
		parsers.DefaultParser,
	)

	resetFlags()

	return func() {
		detagService = oldService
		configStore = oldStore
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}
}

// resetFlags clears flag values left over from a previous Execute.
func resetFlags() {
	outputPath = ""
	deleteTags = nil
	keywordSpecs = nil
	selectors = nil
	parserName = ""
	matchAttrs = false
	sanitizeFlag = false
	watchFlag = false
	verboseFlag = false
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) { f.Changed = false })
}
