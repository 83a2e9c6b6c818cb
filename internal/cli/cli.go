// Package cli is the terminal client for recording and reviewing cash closings.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	portssvc "github.com/SscSPs/cashclose_app/internal/core/ports/services"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	services *portssvc.ServiceContainer
	session  *SessionFile
	out      io.Writer
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Services    *portssvc.ServiceContainer
	SessionPath string
	Output      io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.SessionPath == "" {
		opts.SessionPath = DefaultSessionPath()
	}

	cli := &CLI{
		services: opts.Services,
		session:  NewSessionFile(opts.SessionPath),
		out:      opts.Output,
	}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

// Execute runs the command line in os.Args.
func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides os.Args, for tests and embedding.
func (cli *CLI) SetArgs(args ...string) {
	cli.rootCmd.SetArgs(args)
}

// FormatError renders err for the terminal.
func FormatError(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		return errorStyle.Render("Sessão não encontrada. Use `cashclose login` primeiro.")
	case errors.Is(err, apperrors.ErrForbidden):
		return errorStyle.Render("Acesso restrito ao administrador.")
	case errors.Is(err, apperrors.ErrInvalidCredential):
		return errorStyle.Render("Senha incorreta.")
	default:
		return errorStyle.Render("Erro: " + err.Error())
	}
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cashclose",
		Short:         "Daily cash closing tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(cli.out)

	cmd.AddCommand(NewLoginCmd(cli))
	cmd.AddCommand(NewLogoutCmd(cli))
	cmd.AddCommand(NewWhoamiCmd(cli))
	cmd.AddCommand(NewAddCmd(cli))
	cmd.AddCommand(NewListCmd(cli))
	cmd.AddCommand(NewSummaryCmd(cli))
	cmd.AddCommand(NewAnalyzeCmd(cli))
	cmd.AddCommand(NewExportCmd(cli))

	return cmd
}

// requireRole loads the session and checks it against allowed.
func (cli *CLI) requireRole(allowed func(domain.Role) bool) (domain.Role, error) {
	role, err := cli.session.Load()
	if err != nil {
		return "", err
	}
	if !allowed(role) {
		return role, fmt.Errorf("%w: role %s", apperrors.ErrForbidden, role)
	}
	return role, nil
}
