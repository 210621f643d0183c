package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [state]",
	Short: "Render a cube state in the terminal",
	Long: `Render a cube state string as a colored unfolded net.

The state is the flat string serialization: 6*N*N color letters (g, o, b,
r, w, y) in face order front, left, back, right, top, bottom, each face
row by row. Pass "-" to read the state from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cube, err := cubeFromArg(args[0])
	if err != nil {
		return err
	}
	fmt.Print(RenderCube(cube))
	return nil
}
