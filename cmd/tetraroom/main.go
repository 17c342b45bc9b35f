package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/tetraroom/internal/app"
	"github.com/solarlune/tetraroom/internal/config"
	"github.com/solarlune/tetraroom/internal/link"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {

	env, envErr := config.ParseEnv(nil)

	root := &cobra.Command{
		Use:          "tetraroom",
		Short:        "An interactive 3D birthday room",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return envErr
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), env)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&env.AssetsDir, "assets", env.AssetsDir, "directory holding the room's model, textures, and fonts")
	flags.StringVar(&env.LayoutPath, "layout", env.LayoutPath, "layout file to use instead of the built-in one")
	flags.IntVar(&env.Width, "width", env.Width, "window width")
	flags.IntVar(&env.Height, "height", env.Height, "window height")
	flags.IntVar(&env.SmallScreenMaxWidth, "small-screen", env.SmallScreenMaxWidth, "widest window that gets the small-screen layout")
	flags.BoolVar(&env.Debug, "debug", env.Debug, "log extra detail and show render stats")
	flags.StringVar(&env.OverlayURL, "overlay-url", env.OverlayURL, "page opened when the celebration overlay can't be shown")

	root.AddCommand(&cobra.Command{
		Use:   "layout",
		Short: "Print the effective room layout as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			layout, err := loadLayout(env)
			if err != nil {
				return err
			}
			out, err := yaml.Marshal(layout)
			if err != nil {
				return fmt.Errorf("encode layout: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})

	return root

}

func loadLayout(env config.Env) (*config.Layout, error) {
	if env.LayoutPath == "" {
		return config.DefaultLayout()
	}
	return config.LoadLayout(os.DirFS(filepath.Dir(env.LayoutPath)), filepath.Base(env.LayoutPath))
}

func run(ctx context.Context, env config.Env) error {

	layout, err := loadLayout(env)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	game := app.NewGame(env, layout, os.DirFS(env.AssetsDir), link.NewBrowser(env.AssetsDir))
	game.Start(ctx)

	ebiten.SetWindowTitle("Happy Birthday")
	ebiten.SetWindowSize(env.Width, env.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Printf("tetraroom: serving assets from %s", env.AssetsDir)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return err
	}

	return nil

}
