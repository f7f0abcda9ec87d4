package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/openclaw/qrgen/config"
	"github.com/openclaw/qrgen/generator"
	"github.com/openclaw/qrgen/output"
	"github.com/openclaw/qrgen/prompt"
	"github.com/openclaw/qrgen/vcard"
)

var version = "v0.1.0"

// flags holds the command-line request; an empty Type selects interactive mode.
type flags struct {
	ConfigPath string
	Type       string
	URL        string
	Name       string
	Phone      string
	Email      string
	Website    string
	Output     string
	Preview    bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:   "qrgen",
		Short: "Generate QR codes for websites and contact information",
		Long: "Generate QR codes for websites and contact information.\n\n" +
			"Without --type an interactive menu is shown.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, stdout)
		},
	}
	root.SetOut(stdout)

	root.PersistentFlags().StringVarP(&f.ConfigPath, "config", "c", "config.yaml", "Path to config file")

	fl := root.Flags()
	fl.StringVar(&f.Type, "type", "", "Type of QR code to generate (website or contact)")
	fl.StringVar(&f.URL, "url", "", "Website URL (for website QR codes)")
	fl.StringVar(&f.Name, "name", "", "Full name (for contact QR codes)")
	fl.StringVar(&f.Phone, "phone", "", "Phone number (for contact QR codes)")
	fl.StringVar(&f.Email, "email", "", "Email address (for contact QR codes)")
	fl.StringVar(&f.Website, "website", "", "Website URL (for contact QR codes, optional)")
	fl.StringVar(&f.Output, "output", "", "Output file path (optional, auto-generated if not provided)")
	fl.BoolVar(&f.Preview, "preview", false, "Also print the QR code to the terminal")

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qrgen %s\n", version)
		},
	})

	return root
}

// run loads config, builds the generator and dispatches to flag or
// interactive mode.
func run(cmd *cobra.Command, f flags, stdout io.Writer) error {
	cfg, err := config.Load(f.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(log)

	var opts []generator.Option
	if cfg.Preview || f.Preview {
		opts = append(opts, generator.WithPreview(stdout))
	}
	gen := generator.New(cfg, log, opts...)

	if f.Type == "" {
		rl, err := prompt.NewReadline(stdout)
		if err != nil {
			return err
		}
		defer rl.Close()
		return prompt.NewMenu(rl, stdout, gen).Run()
	}

	path, err := runFlags(gen, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "QR code saved to %s\n", path)
	return nil
}

// runFlags generates the QR code described by the command-line flags.
func runFlags(gen *generator.Service, f flags) (string, error) {
	kind, err := output.ParseKind(f.Type)
	if err != nil {
		return "", err
	}

	switch kind {
	case output.Website:
		path, err := gen.Website(f.URL, f.Output)
		if errors.Is(err, generator.ErrMissingURL) {
			return "", &flagError{msg: "--url is required for website QR codes", err: err}
		}
		return path, err
	default:
		path, err := gen.Contact(vcard.Contact{
			Name:    strings.TrimSpace(f.Name),
			Phone:   strings.TrimSpace(f.Phone),
			Email:   strings.TrimSpace(f.Email),
			Website: strings.TrimSpace(f.Website),
		}, f.Output)
		if errors.Is(err, vcard.ErrInvalidRecord) {
			return "", &flagError{msg: "--name, --phone, and --email are required for contact QR codes", err: err}
		}
		return path, err
	}
}

// flagError reports a missing flag. Its message names only the flags; the
// underlying validation error stays reachable through errors.Is.
type flagError struct {
	msg string
	err error
}

func (e *flagError) Error() string { return e.msg }

func (e *flagError) Unwrap() error { return e.err }
