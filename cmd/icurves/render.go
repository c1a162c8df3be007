package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/icurves/description"
	"github.com/katalvlaran/icurves/layout"
	"github.com/katalvlaran/icurves/render"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type renderFlags struct {
	out     string
	format  string
	example string
	watch   string
	showMED bool
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render [description]",
		Short: "Lay out a description and draw it as SVG or PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(f.format, f.out)
			if err != nil {
				return err
			}
			opts := render.DefaultOptions()
			opts.ShowMED = f.showMED
			run := func(d description.Description) error {
				return a.render(cmd.Context(), cmd.OutOrStdout(), d, f.out, format, opts)
			}
			if f.watch != "" {
				path, err := homedir.Expand(f.watch)
				if err != nil {
					return err
				}

				return watch(cmd.Context(), path, a.log, func(data []byte) error {
					d, err := description.Parse(strings.TrimSpace(string(data)))
					if err != nil {
						return err
					}

					return run(d)
				})
			}
			d, err := resolveDescription(f.example, args)
			if err != nil {
				return err
			}

			return run(d)
		},
	}
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "output file, stdout when empty")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "svg or png, from --out when empty")
	cmd.Flags().StringVarP(&f.example, "example", "e", "", "render a catalogue example by name")
	cmd.Flags().StringVarP(&f.watch, "watch", "w", "", "re-render whenever this description file changes")
	cmd.Flags().BoolVar(&f.showMED, "med", false, "overlay the last dual graph")

	return cmd
}

// outputFormat resolves the format flag, falling back to the output file
// extension and then to SVG.
func outputFormat(flag, out string) (render.Format, error) {
	if flag != "" {
		return render.ParseFormat(flag)
	}
	if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext != "" {
		return render.ParseFormat(ext)
	}

	return render.SVG, nil
}

func (a *app) render(ctx context.Context, stdout io.Writer, d description.Description, out string, format render.Format, opts render.Options) error {
	layoutOpts := a.opts
	if opts.ShowMED {
		layoutOpts = append(append([]layout.Option(nil), a.opts...), layout.WithKeepMED())
	}
	diag, err := layout.NewCreator(layoutOpts...).Create(ctx, d)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := render.Write(&buf, diag, format, opts); err != nil {
		return err
	}
	if out == "" {
		_, err := buf.WriteTo(stdout)

		return err
	}
	path, err := homedir.Expand(out)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("icurves: %w", err)
	}
	a.log.Info("diagram written",
		zap.String("description", d.Informal()),
		zap.String("path", path),
		zap.Int("curves", len(diag.Curves)),
		zap.Int("shaded", len(diag.Shaded)))

	return nil
}
