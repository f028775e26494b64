package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/sweeper"
)

var (
	flagDump         bool
	flagPrintDefault bool
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List available difficulties",
	Long: `Shows the difficulties and power-ups from the active configuration.

Configuration is read from --config, then ~/.sweeper/configs/sweeper.yaml,
then ./configs/sweeper.yaml, then the built-in defaults. Use --dump to
print the effective configuration as YAML, or --print-default for the
built-in sweeper.yaml, a starting point for your own.`,
	Args: cobra.NoArgs,
	Run:  runDifficulties,
}

func init() {
	difficultiesCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the effective configuration as YAML")
	difficultiesCmd.Flags().BoolVar(&flagPrintDefault, "print-default", false, "Print the built-in sweeper.yaml")
}

func runDifficulties(_ *cobra.Command, _ []string) {
	if flagPrintDefault {
		if err := writeDefaultConfig(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	s := loadSettings()

	if flagDump {
		data, err := config.Marshal(s.config)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	fmt.Printf("Difficulties (config: %s):\n", s.source)
	fmt.Println()
	fmt.Printf("  %-8s  %-8s  %-7s  %s\n", "Key", "Name", "Board", "Mines")
	fmt.Printf("  %-8s  %-8s  %-7s  %s\n", "---", "----", "-----", "-----")
	for _, d := range s.catalog {
		marker := ""
		if d.Key == s.difficulty {
			marker = "  (default)"
		}
		board := fmt.Sprintf("%dx%d", d.Rows, d.Cols)
		fmt.Printf("  %-8s  %-8s  %-7s  %d%s\n", d.Key, d.Name, board, d.Mines, marker)
	}

	fmt.Println()
	fmt.Println("Power-ups:")
	for _, p := range s.rules.PowerUps {
		slot := slices.Index(sweeper.PowerUpIDs, p.ID) + 1
		fmt.Printf("  [%d] %-12s  %d uses, %ds cooldown  %s\n", slot, p.Name, p.MaxUses, p.CooldownSeconds, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'sweeper play --difficulty <key>' to play.")
}

// writeDefaultConfig writes the built-in sweeper.yaml.
func writeDefaultConfig(w io.Writer) error {
	_, err := w.Write(config.DefaultYAML())
	return err
}
