package main

import (
	"context"

	"github.com/bnema/docklayout/internal/cli/cmd"
	"github.com/bnema/docklayout/internal/domain/build"
	"github.com/bnema/docklayout/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	ctx := logging.WithContext(context.Background(), logging.NewFromEnv())
	defer logging.RecoverPanic(ctx)

	cmd.SetBuildInfo(build.New(version, commit, buildDate))
	cmd.Execute()
}
