package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"specforge/internal/logger"
)

const (
	appName    = "specforge"
	appVersion = "1.0.0"
	appDesc    = "Source-to-source generators for Spring (Java) + TypeScript codebases"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	defer logger.Close()

	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "❌ %v\n", err)
		return 1
	}
	return 0
}

func printBanner() {
	fmt.Println(color.CyanString(bannerText()))
}

func bannerText() string {
	title := fmt.Sprintf("%s v%s", strings.ToUpper(appName), appVersion)
	banner := fmt.Sprintf(`
╔═══════════════════════════════════════════════════════════╗
║%s║
║    Contracts, models and cleanup for Spring + TS apps     ║
╚═══════════════════════════════════════════════════════════╝
`, centered(title, bannerWidth))
	return banner
}

const bannerWidth = 59

// centered pads s with spaces to width, favoring the right side
func centered(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
