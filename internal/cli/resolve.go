package cli

import (
	"github.com/spf13/cobra"

	"github.com/wheelhouse-py/wheelhouse/pkg/requirements"
)

// resolveCommand creates the resolve command, a dry run of the install
// pipeline that stops after artifact selection.
func (c *CLI) resolveCommand() *cobra.Command {
	var flags runnerFlags

	cmd := &cobra.Command{
		Use:   "resolve name==version [name==version ...]",
		Short: "Resolve pins to wheel URLs without installing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := c.newRunner(&flags)
			if err != nil {
				return err
			}

			for _, arg := range args {
				reqs, err := requirements.ParseString(arg)
				if err != nil {
					return err
				}
				for _, req := range reqs {
					artifact, err := runner.Resolve(cmd.Context(), req)
					if err != nil {
						printError("%s: %v", req.String(), err)
						return err
					}
					printKeyValue(req.String(), StyleLink.Render(artifact.URL))
				}
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
