package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/urfave/cli.v1"

	"github.com/entur/openapi-validator-cli/src/config"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/checksum"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/download"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/install"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/platform"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/print"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/release"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/source"
	"github.com/entur/openapi-validator-cli/src/pkg/infrastructure/workspace"
)

var oavInstallFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "repo",
		EnvVar: "OAV_REPO",
		Usage:  "`org/name` repository to install releases from",
	},
	cli.StringFlag{
		Name:   "version",
		EnvVar: "OAV_VERSION",
		Usage:  "exact version to install, skipping release resolution",
	},
	cli.StringFlag{
		Name:   "dir",
		EnvVar: "OAV_INSTALL_DIR",
		Usage:  "install destination directory, skipping the writability heuristic",
	},
	cli.StringFlag{
		Name:   "token",
		EnvVar: "OAV_GITHUB_TOKEN,GITHUB_TOKEN",
		Usage:  "token attached to all network reads, for private or enterprise hosts",
	},
	cli.StringFlag{
		Name:   "host",
		EnvVar: "OAV_GITHUB_HOST,GITHUB_HOST",
		Usage:  "release host, e.g. a GitHub Enterprise instance",
	},
	cli.StringFlag{
		Name:   "api-url",
		EnvVar: "OAV_GITHUB_API_URL,GITHUB_API_URL",
		Usage:  "release index endpoint, overrides the host-derived default",
	},
}

func oavInstall(c *cli.Context) error {
	if c.GlobalBool("verbose") || c.Bool("verbose") {
		print.SetVerbose()
	}

	src, err := buildSource(c)
	if err != nil {
		return err
	}

	api, err := release.NewReleasesAPI(src)
	if err != nil {
		return err
	}

	// An interrupt cancels in-flight reads; the error path then unwinds
	// through the deferred workspace removal.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return installRelease(ctx, api, src)
}

// buildSource merges per-run flags and environment with the persisted config
// into the immutable source passed through the pipeline.
func buildSource(c *cli.Context) (source.Source, error) {
	fileCfg := cfg
	if fileCfg == nil {
		fileCfg = &config.Config{Repo: config.DefaultRepo}
	}

	return source.New(
		pick(c.String("repo"), fileCfg.Repo, config.DefaultRepo),
		pick(c.String("host"), fileCfg.GitHubHost),
		pick(c.String("api-url"), fileCfg.GitHubAPIURL),
		pick(c.String("token"), fileCfg.GitHubToken),
		c.String("version"),
		pick(c.String("dir"), fileCfg.InstallDir),
	)
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// installRelease runs the pipeline: platform, resolution, download, verify,
// extract, install, advise. Each stage failure aborts the whole run.
func installRelease(ctx context.Context, api release.ReleasesAPI, src source.Source) error {
	triple, err := platform.Detect()
	if err != nil {
		return err
	}

	version, err := release.Resolve(ctx, api, src)
	if err != nil {
		return err
	}
	print.Info("installing", release.BinaryName, version, "for", triple.String())

	pair := release.AssetPairFor(src, version, triple)
	printPlan(src, version, triple, pair)

	ws, err := workspace.New("oav-install")
	if err != nil {
		return err
	}
	defer ws.Remove()

	archivePath := ws.Path(pair.ArchiveName)
	if err := download.Fetch(ctx, pair.ArchiveURL(), archivePath, src.Token); err != nil {
		return err
	}
	sumPath := ws.Path(pair.ChecksumName)
	if err := download.Fetch(ctx, pair.ChecksumURL(), sumPath, src.Token); err != nil {
		return err
	}

	print.Verb("verifying", pair.ArchiveName, "against", pair.ChecksumName)
	if err := checksum.VerifyFile(archivePath, sumPath, pair.ArchiveName); err != nil {
		return err
	}

	files, err := download.Untar(archivePath, ws.Dir())
	if err != nil {
		return err
	}
	print.Verb("extracted", len(files), "files from", pair.ArchiveName)

	dest, err := install.Destination(src.InstallDir)
	if err != nil {
		return err
	}
	target, err := install.Binary(ws.Path(release.BinaryName), dest)
	if err != nil {
		return err
	}

	print.Info("installed", release.BinaryName, version, "to", target)
	install.AdvisePath(dest)

	return nil
}

func printPlan(src source.Source, version string, triple platform.Triple, pair release.AssetPair) {
	if !print.IsVerbose() {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Repository", "Version", "Target", "Archive"})
	t.AppendRows([]table.Row{
		{src.RepoSlug(), version, triple.String(), pair.ArchiveURL()},
	})
	t.Render()
}
