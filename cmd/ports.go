package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strumkit/fretfinder/internal/audio"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List available MIDI ports",
	Long:  `Lists the MIDI output ports playback can use, plus the input ports visible on this machine.`,
	Run: func(cmd *cobra.Command, args []string) {
		listPorts()
	},
}

func listPorts() {
	m := audio.NewManager(zap.NewNop())
	defer m.Close()

	outs := m.ListOutPorts()
	fmt.Println("Output ports:")
	if len(outs) == 0 {
		fmt.Println("  (none)")
	}
	for _, name := range outs {
		fmt.Printf("  %s\n", name)
	}

	ins := m.ListInPorts()
	fmt.Println("Input ports:")
	if len(ins) == 0 {
		fmt.Println("  (none)")
	}
	for _, name := range ins {
		fmt.Printf("  %s\n", name)
	}
}
