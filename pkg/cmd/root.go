package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/mattn/go-isatty"
	"github.com/musemeta/bqshell"
	"github.com/musemeta/bqshell/pkg/diag"
	"github.com/musemeta/bqshell/pkg/render"
	"github.com/musemeta/bqshell/pkg/repl"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is the version for bqshell
var Version string

// Build holds the date bin was released
var Build string

var RootCmd = &cobra.Command{
	Use:           "bqshell",
	Short:         "bqshell: query a local BigQuery emulator interactively.",
	Long:          `bqshell connects to a locally running BigQuery emulator, lists the tables of a dataset, runs a fixed set of diagnostic queries, and opens an interactive SQL prompt.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run:           runCommand,
	Version:       fmt.Sprintf("%s (%s)\n", Version, Build),
}

func init() {
	RootCmd.Flags().StringP("endpoint", "e", "http://localhost:9050", "Emulator endpoint to connect to")
	RootCmd.Flags().StringP("project", "p", "test-project", "Logical project id the emulator serves")
	RootCmd.Flags().StringP("dataset", "d", "music_metadata", "Dataset to list at startup")
	RootCmd.Flags().StringP("table", "t", "release_notifications", "Table the diagnostic queries run against")
	RootCmd.Flags().IntP("limit", "l", bqshell.DefaultLimit, "Rows fetched per query. Set `0` to fetch unlimited.")

	RootCmd.SetVersionTemplate(fmt.Sprintf("bqshell version %s (%s)\n", Version, Build))

	viper.SetEnvPrefix("bqshell")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	if err := viper.BindPFlags(RootCmd.Flags()); err != nil {
		panic(err)
	}
}

func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		printError(err)
		os.Exit(1)
	}
}

var session *repl.Session

func runCommand(cmd *cobra.Command, args []string) {
	fmt.Println("🎵 BigQuery Emulator Query Tool")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	console, err := bqshell.New(viper.GetString("project"),
		bqshell.OptionEndpoint(viper.GetString("endpoint")),
		bqshell.OptionDataset(viper.GetString("dataset")),
		bqshell.OptionTable(viper.GetString("table")),
		bqshell.OptionDefaultLimit(viper.GetInt("limit")))
	if err != nil {
		printError(err)
		os.Exit(1)
	}

	ctx := context.Background()

	if err := console.Connect(ctx); err != nil {
		fmt.Printf("❌ Failed to connect to emulator: %s\n", err)
		fmt.Println()
		fmt.Println("Make sure:")
		fmt.Printf("  1. Emulator is running at %s\n", console.Endpoint())
		fmt.Println("  2. The data loading step has been run")
		os.Exit(1)
	}
	defer console.Close()
	fmt.Printf("✅ Connected to BigQuery emulator at %s\n", console.Endpoint())
	fmt.Println()

	fmt.Println("📋 Available tables:")
	fmt.Println(strings.Repeat("-", 60))
	tables, err := console.ListTables(ctx, console.DatasetID())
	if err != nil {
		fmt.Printf("   ❌ Error: %s\n", err)
		fmt.Println("   Make sure the emulator is running and data has been loaded")
		os.Exit(1)
	}
	render.Tables(os.Stdout, tables)

	diag.NewRunner(console, console.QualifiedTable(), os.Stdout).Run(ctx)

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("💡 Interactive query mode")
	fmt.Println("   Enter SQL queries or 'quit' to exit")
	fmt.Println(strings.Repeat("=", 60))

	session = repl.NewSession(console, os.Stdout)
	if isatty.IsTerminal(os.Stdin.Fd()) {
		initPrompt(ctx)
	} else {
		sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
		if err := session.Run(sigCtx, os.Stdin); err != nil {
			printError(err)
		}
	}
}

func initPrompt(ctx context.Context) {
	p := prompt.New(
		func(in string) { session.HandleLine(ctx, in) },
		completer,
		prompt.OptionPrefix("SQL> "),
		prompt.OptionTitle("bqshell"),
		prompt.OptionSetExitCheckerOnInput(exitChecker),
		prompt.OptionAddKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn:  func(*prompt.Buffer) { session.HandleInterrupt() },
		}))
	p.Run()
}

func printError(err error) {
	fmt.Printf("error: %s \n", err.Error())
}

func completer(d prompt.Document) []prompt.Suggest {
	var s []prompt.Suggest
	return prompt.FilterHasPrefix(s, d.GetWordBeforeCursor(), true)
}

func exitChecker(in string, breakline bool) bool {
	return session.Done()
}
