package launcher

import (
	cli "gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-osu-format/flags"
)

// newApp assembles the CLI: global flags plus the decode, encode and presets commands.
func newApp() *cli.App {
	app := flags.NewApp()
	app.Flags = flags.CommonFlags()
	app.Commands = []cli.Command{
		decodeCommand,
		encodeCommand,
		presetsCommand,
	}
	return app
}

// Launch parses args (including the program name) and runs the selected command.
func Launch(args []string) error {
	return newApp().Run(args)
}
