package main

import (
	"os"

	"github.com/nickromney/looppager/internal/cli"
	"github.com/nickromney/looppager/internal/tui"
)

var (
	// Set via -ldflags at build time.
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	runTUI := func(opts tui.Options) (int, bool, error) {
		m, err := tui.New(opts)
		if err != nil {
			return 0, false, err
		}
		final, err := tui.Run(m)
		if err != nil {
			return 0, false, err
		}
		idx, picked := final.Selected()
		return idx, picked, nil
	}

	buildInfo := cli.BuildInfo{
		Version:   Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	root := cli.NewRootCmd(runTUI, buildInfo)
	os.Exit(cli.Report(root.Execute()))
}
