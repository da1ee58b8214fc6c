package commands

import (
	"runtime"

	"github.com/joho/godotenv"
	_ "github.com/joho/godotenv/autoload"
	"github.com/kirsle/configdir"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/entur/openapi-validator-cli/src/config"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/print"
)

const configFolderName = "oav-install"

// cfg holds the persisted defaults loaded in app.Before; flags and
// environment take precedence over it per-run.
var cfg *config.Config

func Run(args []string, version string) error {
	configDir := configdir.LocalConfig(configFolderName)
	err := configdir.MakePath(configDir)
	if err != nil {
		return errors.Wrap(err, "failed to create config path")
	}

	app := cli.NewApp()

	app.Authors = []cli.Author{
		{
			Name:  "Entur AS",
			Email: "plattform@entur.org",
		},
	}
	app.Name = "oav-install"
	app.Usage = "Installs the oav OpenAPI validator from its prebuilt release archives."
	app.Version = version

	// --version is the install override, the app version lives on -V
	cli.VersionFlag = cli.BoolFlag{
		Name:  "appVersion, V",
		Usage: "oav-install version",
	}

	globalFlags := []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "output all detailed information - useful for debugging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:        "install",
			Usage:       "oav-install install [--version 0.2.0]",
			Description: "Resolves an oav release, verifies its checksum and installs the executable onto the PATH.",
			Action:      oavInstall,
			Flags:       append(globalFlags, oavInstallFlags...),
		},
		{
			Name:        "version",
			Description: "Show the installer version number.",
			Action:      cli.VersionPrinter,
		},
	}

	app.Flags = globalFlags
	app.Before = func(c *cli.Context) error {
		err = godotenv.Load(".env")
		if err != nil {
			print.Verb(err)
		}

		if c.GlobalBool("verbose") {
			print.SetVerbose()
			print.Verb("Verbose logging active")
		}
		if runtime.GOOS != "windows" {
			print.SetColoured()
		}

		cfg, err = config.LoadOrCreateConfig(configDir)
		if err != nil {
			return errors.Wrapf(err, "failed to load or create oav-install config in %s", configDir)
		}

		return nil
	}
	app.OnUsageError = func(c *cli.Context, err error, isSubcommand bool) error {
		return err
	}

	return app.Run(args)
}
