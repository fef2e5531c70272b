package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"makeabet/internal/deploy"
)

func syncEnvCmd(e *env) *cobra.Command {
	var (
		root       string
		deployment string
	)
	cmd := &cobra.Command{
		Use:   "sync-env",
		Short: "Write .env.local files from the local contract deployment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root == "" {
				root = e.workDir
			}
			if root == "" {
				root = "."
			}
			path := deployment
			if path == "" {
				path = filepath.Join(root, deploy.DefaultArtifactPath)
			}

			artifact, err := deploy.Load(path)
			if errors.Is(err, deploy.ErrNoDeployment) {
				return fmt.Errorf("%w, run the local deploy first", err)
			}
			if err != nil {
				return err
			}

			written, err := deploy.Sync(root, artifact)
			if err != nil {
				return err
			}
			styles := e.styles()
			for _, f := range written {
				fmt.Fprintf(e.out, "%s %s\n", styles.Success.Render("✔"), f)
			}
			fmt.Fprintf(e.out, "Synced local deployment (chain %d) to %d env files\n",
				artifact.EffectiveChainID(), len(written))
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "monorepo root (default current directory)")
	cmd.Flags().StringVar(&deployment, "deployment", "", "deployment artifact (default <root>/apps/contracts/deployments/local.json)")
	return cmd
}
