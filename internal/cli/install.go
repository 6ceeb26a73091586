package cli

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/wheelhouse-py/wheelhouse/pkg/requirements"
)

// installCommand creates the install command.
func (c *CLI) installCommand() *cobra.Command {
	var (
		flags     runnerFlags
		reqFile   string
		pyproject string
	)

	cmd := &cobra.Command{
		Use:   "install [name==version ...]",
		Short: "Resolve, download, validate, and store pinned wheels",
		Long: `Install processes each exact pin strictly in order: fetch the package's
simple-index page, pick the first py3-none-any wheel for the pinned version,
download it, validate the archive, and store it. The first failing pin aborts
the batch; earlier pins stay installed.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reqs, err := collectRequirements(args, reqFile, pyproject)
			if err != nil {
				return err
			}
			if len(reqs) == 0 {
				printWarning("Nothing to install")
				return nil
			}

			runner, err := c.newRunner(&flags)
			if err != nil {
				return err
			}

			spinner := newSpinnerWithContext(cmd.Context(), "Installing...")
			spinner.Start()
			report, err := runner.Install(cmd.Context(), reqs)
			spinner.Stop()

			for _, installed := range report.Installed {
				printFile(installed.LocalPath)
			}
			if err != nil {
				printError("Installed %d of %d, then: %v", len(report.Installed), report.Stats.Requirements, err)
				return err
			}

			printSuccess("Installed %d package(s) in %s", len(report.Installed),
				report.Stats.Elapsed.Round(time.Millisecond))
			printDetail("Store: %s", runner.Store().Dir())
			printDetail("Downloaded: %d bytes", report.Stats.Downloaded)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&reqFile, "requirements", "r", "", "requirements file with one name==version pin per line")
	cmd.Flags().StringVar(&pyproject, "pyproject", "", "read pins from a pyproject.toml [project] dependencies list")

	return cmd
}

// collectRequirements merges pins from a requirements file, a pyproject file,
// and positional arguments, preserving that order.
func collectRequirements(args []string, reqFile, pyproject string) ([]requirements.Requirement, error) {
	var reqs []requirements.Requirement

	if reqFile != "" {
		fromFile, err := requirements.ParseFile(reqFile)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, fromFile...)
	}
	if pyproject != "" {
		fromProject, err := requirements.ParsePyproject(pyproject)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, fromProject...)
	}
	if len(args) > 0 {
		fromArgs, err := requirements.ParseString(strings.Join(args, "\n"))
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, fromArgs...)
	}
	return reqs, nil
}
