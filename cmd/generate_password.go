package cmd

import (
	"fmt"
	"strconv"

	"github.com/PolarWolf314/titan/internal/passgen"
	"github.com/PolarWolf314/titan/internal/ui"
	"github.com/spf13/cobra"
)

var generatePasswordCmd = &cobra.Command{
	Use:     "generate-password <length>",
	Aliases: []string{"gen"},
	Short:   "Print a random password",
	Long: fmt.Sprintf(`Prints a random password of the given length, drawn from letters, digits
and the symbols ?)(/%%#!=. The length must be between 1 and %d.`, passgen.MaxLength),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		length, err := strconv.Atoi(args[0])
		if err != nil {
			return failf("Invalid length %s", ui.Highlight.Sprint(args[0]))
		}

		password, err := passgen.Generate(length)
		if err != nil {
			return fail(nil, err)
		}

		fmt.Println(password)
		return nil
	},
}
