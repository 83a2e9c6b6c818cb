package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/SscSPs/cashclose_app/internal/apperrors"
	"github.com/SscSPs/cashclose_app/internal/core/domain"
	"github.com/SscSPs/cashclose_app/internal/utils/export"
	"github.com/spf13/cobra"
)

// --- login / logout / whoami ---

type LoginCmd struct {
	cli *CLI
}

func NewLoginCmd(cli *CLI) *cobra.Command {
	lc := &LoginCmd{cli: cli}
	return &cobra.Command{
		Use:   "login [secret]",
		Short: "Log in with the admin or staff secret",
		Long:  "Log in with the admin or staff secret. Without an argument the secret is read from stdin.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  lc.run,
	}
}

func (lc *LoginCmd) run(cmd *cobra.Command, args []string) error {
	var secret string
	if len(args) == 1 {
		secret = args[0]
	} else {
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("read secret: %w", err)
		}
		secret = strings.TrimSpace(line)
	}

	session, err := lc.cli.services.Session.Login(cmd.Context(), secret)
	if err != nil {
		return err
	}
	if err := lc.cli.session.Save(session.Role); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Logado como "+session.Role.String()))
	return nil
}

func NewLogoutCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cli.session.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("Sessão encerrada."))
			return nil
		},
	}
}

func NewWhoamiCmd(cli *CLI) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			role, err := cli.session.Load()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), role.String())
			return nil
		},
	}
}

// --- add ---

type AddCmd struct {
	cli  *CLI
	form domain.RawClosingForm
}

func NewAddCmd(cli *CLI) *cobra.Command {
	ac := &AddCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a daily closing",
		Args:  cobra.NoArgs,
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.form.Date, "date", "", "Closing date (YYYY-MM-DD), defaults to today")
	cmd.Flags().StringVar(&ac.form.OpeningBalance, "opening", "", "Opening balance")
	cmd.Flags().StringVar(&ac.form.CreditCard, "credit", "", "Credit card sales")
	cmd.Flags().StringVar(&ac.form.DebitCard, "debit", "", "Debit card sales")
	cmd.Flags().StringVar(&ac.form.Pix, "pix", "", "PIX sales")
	cmd.Flags().StringVar(&ac.form.Cash, "cash", "", "Cash sales")
	cmd.Flags().StringVar(&ac.form.Boleto, "boleto", "", "Boleto sales")
	cmd.Flags().StringVar(&ac.form.Notes, "notes", "", "Free-form notes")

	return cmd
}

func (ac *AddCmd) run(cmd *cobra.Command, _ []string) error {
	role, err := ac.cli.requireRole(domain.Role.CanSubmitClosings)
	if err != nil {
		return err
	}

	form := ac.form
	if form.Date == "" {
		form.Date = today()
	}

	record, err := ac.cli.services.Closing.CreateClosing(cmd.Context(), form, role)
	if err != nil {
		return err
	}
	renderClosing(cmd.OutOrStdout(), record)
	return nil
}

// --- list / summary / export ---

type periodFlags struct {
	start string
	end   string
}

func (p *periodFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.start, "start", "", "Start date (YYYY-MM-DD), inclusive")
	cmd.Flags().StringVar(&p.end, "end", "", "End date (YYYY-MM-DD), inclusive")
}

func (p *periodFlags) dateRange() (domain.DateRange, error) {
	r, err := domain.NewDateRange(p.start, p.end)
	if err != nil {
		return domain.DateRange{}, err
	}
	return r, r.Validate()
}

type ListCmd struct {
	cli *CLI
	periodFlags
}

func NewListCmd(cli *CLI) *cobra.Command {
	lc := &ListCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List closings, newest first",
		Args:  cobra.NoArgs,
		RunE:  lc.run,
	}
	lc.register(cmd)
	return cmd
}

func (lc *ListCmd) run(cmd *cobra.Command, _ []string) error {
	if _, err := lc.cli.requireRole(domain.Role.CanViewDashboard); err != nil {
		return err
	}
	r, err := lc.dateRange()
	if err != nil {
		return err
	}

	records, err := lc.cli.services.Closing.ListClosings(cmd.Context(), r)
	if err != nil && !errors.Is(err, apperrors.ErrStoreUnavailable) {
		return err
	}
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("Armazenamento indisponível; exibindo últimos dados conhecidos."))
	}
	renderClosings(cmd.OutOrStdout(), records)
	return nil
}

type SummaryCmd struct {
	cli *CLI
	periodFlags
}

func NewSummaryCmd(cli *CLI) *cobra.Command {
	sc := &SummaryCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show period totals, payment breakdown and the last seven days",
		Args:  cobra.NoArgs,
		RunE:  sc.run,
	}
	sc.register(cmd)
	return cmd
}

func (sc *SummaryCmd) run(cmd *cobra.Command, _ []string) error {
	if _, err := sc.cli.requireRole(domain.Role.CanViewDashboard); err != nil {
		return err
	}
	r, err := sc.dateRange()
	if err != nil {
		return err
	}

	summary, err := sc.cli.services.Summary.Summarize(cmd.Context(), r)
	if err != nil && (summary == nil || !errors.Is(err, apperrors.ErrStoreUnavailable)) {
		return err
	}
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("Armazenamento indisponível; exibindo últimos dados conhecidos."))
	}
	renderSummary(cmd.OutOrStdout(), summary)
	return nil
}

type ExportCmd struct {
	cli    *CLI
	output string
	periodFlags
}

func NewExportCmd(cli *CLI) *cobra.Command {
	ec := &ExportCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export closings to an xlsx workbook",
		Args:  cobra.NoArgs,
		RunE:  ec.run,
	}
	ec.register(cmd)
	cmd.Flags().StringVarP(&ec.output, "output", "o", "", "Output file (default derived from the period)")
	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) error {
	if _, err := ec.cli.requireRole(domain.Role.CanViewDashboard); err != nil {
		return err
	}
	r, err := ec.dateRange()
	if err != nil {
		return err
	}

	summary, err := ec.cli.services.Summary.Summarize(cmd.Context(), r)
	if err != nil {
		return err
	}

	path := ec.output
	if path == "" {
		path = export.Filename(r)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	if err := export.WriteClosingsXLSX(f, *summary); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render(fmt.Sprintf("%d fechamentos exportados para %s", summary.Totals.Count, path)))
	return nil
}

// --- analyze ---

type AnalyzeCmd struct {
	cli *CLI
}

func NewAnalyzeCmd(cli *CLI) *cobra.Command {
	ac := &AnalyzeCmd{cli: cli}
	return &cobra.Command{
		Use:   "analyze <closing-id>",
		Short: "Show or generate the analysis of a closing",
		Args:  cobra.ExactArgs(1),
		RunE:  ac.run,
	}
}

func (ac *AnalyzeCmd) run(cmd *cobra.Command, args []string) error {
	if _, err := ac.cli.requireRole(domain.Role.CanViewDashboard); err != nil {
		return err
	}

	outcome, err := ac.cli.services.Analysis.AnalyzeClosing(cmd.Context(), args[0])
	if err != nil && (outcome == nil || !errors.Is(err, apperrors.ErrStoreUnavailable)) {
		return err
	}
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), warnStyle.Render("A análise não pôde ser salva."))
	}
	renderAnalysis(cmd.OutOrStdout(), outcome)
	return nil
}
