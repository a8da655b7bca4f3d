// Package main implements the FreeCiv protocol client CLI: connect to
// a server, complete the join handshake, and stream decoded packets
// into the accumulated game state until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rcarmo/freeciv-go-client/internal/config"
	"github.com/rcarmo/freeciv-go-client/internal/fcclient"
	"github.com/rcarmo/freeciv-go-client/internal/logging"
)

var (
	appName    = "FreeCiv Go Client"
	appVersion = "dev" // injected at build time via -ldflags
)

func main() {
	args, action := parseFlags()
	if action != "" {
		return
	}
	if err := run(args); err != nil {
		log.Fatalln(err)
	}
}

// parsedArgs holds the parsed command line arguments.
type parsedArgs struct {
	host             string
	port             string
	username         string
	logLevel         string
	capabilityString string
	captureDir       string
	dedupCaptures    bool
	validateCapture  string
}

// parseFlags parses os.Args[1:] and returns the parsed args. Returns a
// non-empty action string if help/version was shown (caller returns early).
func parseFlags() (parsedArgs, string) {
	return parseFlagsWithArgs(os.Args[1:])
}

func parseFlagsWithArgs(args []string) (parsedArgs, string) {
	fs := flag.NewFlagSet("fcclient", flag.ContinueOnError)
	hostFlag := fs.String("host", "", "FreeCiv server host")
	portFlag := fs.String("port", "", "FreeCiv server port")
	usernameFlag := fs.String("username", "", "username to join as")
	logLevelFlag := fs.String("log-level", "", "log level (debug, info, warn, error)")
	capabilityFlag := fs.String("capability", "", "client capability string sent in SERVER_JOIN_REQ")
	captureDirFlag := fs.String("capture-dir", "", "directory to write raw captured frames into")
	dedupCapturesFlag := fs.Bool("dedup-captures", false, "skip writing capture files whose content hash repeats an already-captured frame")
	validateCaptureFlag := fs.String("validate-capture", "", "validate .packet files under this directory and exit")
	helpFlag := fs.Bool("help", false, "show help")
	versionFlag := fs.Bool("version", false, "show version")

	_ = fs.Parse(args)

	if *helpFlag {
		showHelp()
		return parsedArgs{}, "help"
	}
	if *versionFlag {
		showVersion()
		return parsedArgs{}, "version"
	}

	return parsedArgs{
		host:             strings.TrimSpace(*hostFlag),
		port:             strings.TrimSpace(*portFlag),
		username:         strings.TrimSpace(*usernameFlag),
		logLevel:         strings.TrimSpace(*logLevelFlag),
		capabilityString: strings.TrimSpace(*capabilityFlag),
		captureDir:       strings.TrimSpace(*captureDirFlag),
		dedupCaptures:    *dedupCapturesFlag,
		validateCapture:  strings.TrimSpace(*validateCaptureFlag),
	}, ""
}

// run loads configuration, opens the connection, completes the join
// handshake, and drives the dispatch loop until SIGINT/SIGTERM or a
// fatal protocol error.
func run(args parsedArgs) error {
	if args.validateCapture != "" {
		return validateCaptureDir(args.validateCapture)
	}

	opts := config.LoadOptions{
		Host:             args.host,
		Port:             args.port,
		Username:         args.username,
		LogLevel:         args.logLevel,
		CapabilityString: args.capabilityString,
		CaptureDir:       args.captureDir,
		DedupCaptures:    args.dedupCaptures,
	}

	cfg, err := config.LoadWithOverrides(opts)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.SetLevelFromString(cfg.Logging.Level)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	client := fcclient.New(cfg, logging.Default())
	if err := client.Dial(); err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	defer client.Close()

	if err := client.Join(); err != nil {
		return fmt.Errorf("join: %w", err)
	}

	logging.Info("joined as %q, streaming packets (ctrl-c to stop)", cfg.Client.Username)

	if err := client.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

func showHelp() {
	fmt.Println(appName)
	fmt.Println("USAGE: fcclient [options]")
	fmt.Println("OPTIONS:")
	fmt.Println("  -host               Server host")
	fmt.Println("  -port               Server port (default 6556)")
	fmt.Println("  -username           Username to join as")
	fmt.Println("  -capability         Capability string sent in SERVER_JOIN_REQ")
	fmt.Println("  -log-level          Log level (debug, info, warn, error)")
	fmt.Println("  -capture-dir        Write raw captured frames to this directory")
	fmt.Println("  -dedup-captures     Skip capture files whose content hash repeats a prior frame")
	fmt.Println("  -validate-capture   Validate .packet files under this directory and exit")
	fmt.Println("  -version            Show version information")
	fmt.Println("  -help               Show this help message")
}

func showVersion() {
	fmt.Printf("%s %s\n", appName, appVersion)
	fmt.Println("Built with Go", time.Now().Year())
	fmt.Println("Protocol: FreeCiv network protocol")
}
