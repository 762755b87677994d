package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ZenLiuCN/dino/launcher"
	"github.com/urfave/cli/v2"
)

func main() {
	os.Exit(Main())
}

// Main runs dinex over the process arguments and returns the exit code.
func Main() int {
	l := launcher.New()
	app := cli.NewApp()
	app.Name = "dinex"
	app.Usage = "native module launcher"
	app.UsageText = "dinex [-option=value...] <module> [args...]"
	app.Description = "dinex loads a shared library, resolves its entrypoint and runs it with the remaining arguments.\n" +
		"Options: -s|-silent[=bool] -d|-dir|-directory=path -e|-entry|-entrypoint=symbol -v|-verbose[=bool]"
	app.SkipFlagParsing = true
	app.HideHelp = true
	app.HideVersion = true
	app.Writer = l.Stdout
	app.ErrWriter = l.Stderr
	app.ExitErrHandler = func(*cli.Context, error) {}
	app.Action = func(ctx *cli.Context) error {
		if code := l.Run(os.Args[0], ctx.Args().Slice()); code != 0 {
			return cli.Exit("", code)
		}
		return nil
	}
	err := app.Run(os.Args)
	var exit cli.ExitCoder
	if errors.As(err, &exit) {
		return exit.ExitCode()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failure %s\n", err)
		return launcher.ErrorCode
	}
	return 0
}
