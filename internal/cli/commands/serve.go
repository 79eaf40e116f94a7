package commands

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cosmicmystery/cosmicsite/internal/cli/config"
	"github.com/cosmicmystery/cosmicsite/internal/contact"
	"github.com/cosmicmystery/cosmicsite/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Open bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the landing page",
		Long: `Start an HTTP server for the Cosmic Mystery Center landing page.

The server provides:
- The landing page at /, revealed after first paint
- A Markdown rendition at /index.md
- The Organization JSON-LD at /structured-data.json
- The contact form endpoint at /contact (unless disabled)
- A health check at /healthz`,
		Example: `  # Serve on the default port
  cosmicsite serve

  # Develop with live reload on asset changes
  cosmicsite serve --dev --watch --open

  # Keep contact inquiries in a local file
  cosmicsite serve --inbox inquiries.jsonl`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	d := config.Default()
	cmd.Flags().String("host", d.Server.Host, "Interface to bind (default: all)")
	cmd.Flags().Int("port", d.Server.Port, "Port to serve on (0 picks a free port)")
	cmd.Flags().Bool("watch", d.Server.Watch, "Watch static assets and reload open pages")
	cmd.Flags().Bool("dev", d.Server.Dev, "Enable development routes")
	cmd.Flags().String("inbox", d.Server.Inbox, "Append contact inquiries to this JSON-lines file")
	cmd.Flags().BoolVar(&opts.Open, "open", false, "Open the page in a browser once listening")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cc := NewCommandContext(cmd)

	server, err := newServer(cc)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.Open {
		go func() {
			if addr := waitForAddr(ctx, server); addr != nil {
				openBrowser(browserURL(addr))
			}
		}()
	}

	if !cc.Renderer.Structured() {
		cc.Renderer.Muted("Press Ctrl+C to stop")
	}
	return server.Serve(ctx)
}

// newServer builds the site server from the loaded configuration.
func newServer(cc *CommandContext) (*ui.Server, error) {
	sc := cc.Cfg.Server
	liveReload := sc.Dev && sc.Watch

	s, err := cc.Site(liveReload)
	if err != nil {
		return nil, fmt.Errorf("failed to build site: %w", err)
	}

	if !sc.Dev && sc.SessionSecret == config.DefaultSessionSecret {
		cc.Logger.Warn("using the default session secret; set server.session_secret or COSMICSITE_SERVER__SESSION_SECRET")
	}

	return ui.NewServer(ui.Config{
		Site:              s,
		ContactSink:       contactSink(cc),
		Host:              sc.Host,
		Port:              sc.Port,
		Watch:             sc.Watch,
		Dev:               sc.Dev,
		SessionSecret:     sc.SessionSecret,
		Logger:            cc.Logger,
		ShutdownTimeout:   sc.ShutdownTimeout,
		ReadHeaderTimeout: sc.ReadHeaderTimeout,
	}), nil
}

// contactSink logs every inquiry and, when an inbox is configured, appends
// it there too.
func contactSink(cc *CommandContext) contact.Sink {
	logSink := contact.LogSink{Logger: cc.Logger}
	if cc.Cfg.Server.Inbox == "" {
		return logSink
	}
	return contact.MultiSink{contact.NewFileSink(cc.Cfg.Server.Inbox), logSink}
}

func waitForAddr(ctx context.Context, s *ui.Server) net.Addr {
	for {
		if addr := s.Addr(); addr != nil {
			return addr
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(50 * time.Millisecond):
		}
	}
}

// browserURL maps a bound address to a URL a local browser can open.
func browserURL(addr net.Addr) string {
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return "http://" + addr.String()
	}
	host := "localhost"
	if !tcp.IP.IsUnspecified() && !tcp.IP.IsLoopback() {
		host = tcp.IP.String()
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(tcp.Port))
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
