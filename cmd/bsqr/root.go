package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/prasetyowira/bsqr/constant"
	"github.com/prasetyowira/bsqr/domain/bsqr"
	appLogger "github.com/prasetyowira/bsqr/infrastructure/logger"
	"github.com/prasetyowira/bsqr/infrastructure/preset"
	"github.com/prasetyowira/bsqr/infrastructure/qrcode"
	"github.com/prasetyowira/bsqr/infrastructure/resource"
	"github.com/prasetyowira/bsqr/infrastructure/svg"
	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "none"
)

// renderOpts holds the flags of the render command that are not preset fields
type renderOpts struct {
	payload    string
	presetFile string
	resources  string
	output     string
	noBorder   bool
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "bsqr",
		Short:        "bsqr renders bysquare payment QR codes as SVG",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := "warn"
			if verbose {
				level = "debug"
			}
			return appLogger.InitializeLevel(level, false)
		},
	}
	root.SetOut(stdout)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	root.AddCommand(newRenderCommand())
	root.AddCommand(newVersionCommand())

	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bsqr %s (%s)\n", version, commit)
		},
	}
}

func newRenderCommand() *cobra.Command {
	var (
		opts                renderOpts
		flags               preset.Preset
		size, width, height float64
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a bysquare payload to SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			if f.Changed("no-border") {
				border := !opts.noBorder
				flags.Border = &border
			}
			if f.Changed("size") {
				flags.InnerSize = &size
			}
			if f.Changed("width") {
				flags.OuterWidth = &width
			}
			if f.Changed("height") {
				flags.OuterHeight = &height
			}
			return runRender(cmd, opts, flags)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.payload, "payload", "p", "", "encoded bysquare payload (no QR code when empty)")
	f.StringVar(&flags.Logo, "logo", "", "logo kind: PAY (default), NONE, INVOICE")
	f.StringVar(&flags.LogoPosition, "position", "", "logo position: BOTTOM (default), TOP, LEFT, RIGHT, NONE")
	f.BoolVar(&opts.noBorder, "no-border", false, "omit the rounded border")
	f.StringVar(&flags.Primary, "primary", "", "border and logo color")
	f.StringVar(&flags.Secondary, "secondary", "", "caption color")
	f.StringVar(&flags.CodeColor, "code-color", "", "QR module color")
	f.StringVar(&flags.ECLevel, "ec", "", "error correction level: L (default), M, Q, H")
	f.Float64Var(&size, "size", 0, "side of the QR square in output units")
	f.Float64Var(&width, "width", 0, "outer width in output units, with --height")
	f.Float64Var(&height, "height", 0, "outer height in output units, with --width")
	f.StringVar(&flags.Unit, "unit", "", "unit appended to width and height, e.g. mm")
	f.StringVar(&opts.presetFile, "preset", "", "TOML preset applied before the flags")
	f.StringVar(&opts.resources, "resources", "", "directory overriding the bundled logo artwork")
	f.StringVarP(&opts.output, "out", "o", "", "output file (stdout if empty)")
	cmd.MarkFlagsMutuallyExclusive("size", "width")
	cmd.MarkFlagsMutuallyExclusive("size", "height")

	return cmd
}

func runRender(cmd *cobra.Command, opts renderOpts, flags preset.Preset) error {
	ctx := cmd.Context()

	var base preset.Preset
	if opts.presetFile != "" {
		loaded, err := preset.Load(opts.presetFile)
		if err != nil {
			return err
		}
		base = loaded
	}
	options := base.Merge(flags)

	logo, err := options.LogoKind()
	if err != nil {
		return err
	}

	loader := resource.NewLoader()
	if opts.resources != "" {
		loader = resource.NewDirLoader(opts.resources)
	}

	renderer := bsqr.NewRenderer(qrcode.NewEncoder(), svg.NewConverter(), loader)
	if err := options.Apply(renderer); err != nil {
		return err
	}

	doc, err := renderer.Render(ctx, opts.payload, logo)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = "-"
		if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
			return err
		}
	} else if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	appLogger.CtxDebug(ctx, constant.MsgImageWritten, appLogger.LoggerInfo{
		ContextFunction: constant.CtxCLI,
		Data: map[string]interface{}{
			constant.DataOutput:  output,
			constant.DataSize:    buf.Len(),
			constant.DataViewBox: doc.ViewBox(),
		},
	})

	return nil
}
