package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/sagarc03/servedir/filesystem"
	servedirhttp "github.com/sagarc03/servedir/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP file server",
	Long:  `Start the servedir HTTP server over the configured root directory.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringP("root", "r", ".", "root directory to serve files from")
	serveCmd.Flags().StringP("ip", "i", "0.0.0.0", "IP address to bind to")
	serveCmd.Flags().IntP("port", "p", 8000, "port to listen on")
	serveCmd.Flags().BoolP("upload", "u", false, "enable upload support")
	serveCmd.Flags().StringP("auth", "a", "", "enable basic authentication, format: username:password")
	serveCmd.Flags().Bool("qr", false, "print a QR code of the LAN URL on startup")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := configFromContext(cmd.Context())
	if err != nil {
		return err
	}

	root, err := os.OpenRoot(cfg.Storage.Root)
	if err != nil {
		return fmt.Errorf("open root directory: %w", err)
	}
	defer func() { _ = root.Close() }()

	store := filesystem.NewStore(root)

	handlerConfig := servedirhttp.HandlerConfig{
		UploadEnabled: cfg.Upload.Enabled,
		Credential:    cfg.Auth.Credential,
		CORS:          cfg.CORS,
	}
	handler := servedirhttp.NewHandler(&handlerConfig, store)

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))

	// WriteTimeout stays 0: large downloads must be able to outlive any
	// fixed deadline, so only read and idle timeouts are bounded.
	server := &http.Server{
		Addr:        addr,
		Handler:     handler.Router(),
		ReadTimeout: 30 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
	}()

	slog.Info("starting server",
		"addr", addr,
		"root", cfg.Storage.Root,
		"upload", cfg.Upload.Enabled,
	)
	if cfg.Auth.Credential == "" {
		slog.Warn("basic auth not enabled")
	} else {
		slog.Info("basic auth enabled")
	}

	if showQR, _ := cmd.Flags().GetBool("qr"); showQR {
		printLANQRCode(cfg.Server.Host, cfg.Server.Port)
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// printLANQRCode prints a scannable terminal QR code of the server URL so
// phones on the same network can open it directly.
func printLANQRCode(host string, port int) {
	if host == "0.0.0.0" || host == "::" {
		lan, err := localIPv4()
		if err != nil {
			slog.Warn("could not determine LAN address for QR code", "err", err)
			return
		}
		host = lan
	}

	url := fmt.Sprintf("http://%s", net.JoinHostPort(host, strconv.Itoa(port)))
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		slog.Warn("could not build QR code", "err", err)
		return
	}

	fmt.Println(url)
	fmt.Print(qr.ToSmallString(false))
}
