package app

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/homegym/spotter/internal/config"
	"github.com/homegym/spotter/internal/osutil"
)

// editConfigAction opens the config file in the user's editor. The file is
// written with the defaults first if it does not exist yet.
func editConfigAction(_ *cli.Context) error {
	path := config.ConfigFilePath()

	if _, err := config.New(config.WithViperConfig(path)); err != nil {
		return err
	}

	cmd, err := osutil.Command(osutil.Editor())
	if err != nil {
		return err
	}

	cmd.Args = append(cmd.Args, path)
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}
