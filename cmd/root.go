// Package cmd provides the root command and CLI setup for scalist.
package cmd

import (
	"fmt"
	"os"

	"github.com/mouse-blink/scalist/internal/adapter"
	"github.com/mouse-blink/scalist/internal/config"
	"github.com/mouse-blink/scalist/internal/controller"
	"github.com/mouse-blink/scalist/internal/domain"
	m "github.com/mouse-blink/scalist/internal/model"
	"github.com/spf13/cobra"
)

var sceneStore adapter.SceneStore
var ui controller.UI
var workflow domain.Workflow
var cfg config.Config

var cfgFileFlag string

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	sceneStore = adapter.NewSceneStore()
	workflow = domain.NewWorkflow(sceneStore, ui)

	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFileFlag, "config", "",
		"config file (default: <user config dir>/scalist/config.yaml)")
}

func initConfig() {
	loaded, err := config.Load(cfgFileFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg = loaded
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scalist",
		Short: "Keyframe curve scaling tool",
		Long:  rootLongDescription,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
