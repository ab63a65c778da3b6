package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/scalist/internal/adapter"
	"github.com/mouse-blink/scalist/internal/controller"
	m "github.com/mouse-blink/scalist/internal/model"
)

// uiCmd represents the ui command.
var uiCmd = newUICmd()

func newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui <scene>",
		Short: "Open the interactive scaling panel",
		Long:  uiLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := m.Path(args[0])

			scene, err := sceneStore.Load(path)
			if err != nil {
				return err
			}

			host := adapter.NewSceneHost(scene)

			panel := controller.NewScalePanel(cmd.OutOrStdout(), controller.PanelOptions{
				ScenePath: path,
				Presets:   cfg.UI.Presets,
				SliderMin: cfg.UI.SliderMin,
				SliderMax: cfg.UI.SliderMax,
				FieldMin:  cfg.Scale.FieldMin,
				FieldMax:  cfg.Scale.FieldMax,
				Apply: func(req m.ScaleRequest) (controller.ScaleResult, error) {
					res, err := workflow.ScaleScene(host, req)
					if err != nil || res.Rejected {
						return res, err
					}

					if err := sceneStore.Save(path, host.Scene()); err != nil {
						return res, err
					}

					return res, nil
				},
			})

			return panel.Run()
		},
	}
}

func init() {
	rootCmd.AddCommand(uiCmd)
}
