package cli

import (
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recs-data/internal/app"
	"recs-data/internal/core"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "RECS_DATA"

type RootConfig struct {
	ConfigFile   string
	LogLevel     string
	CacheDir     string
	BaseURL      string
	MicrodataURL string
	HTTPTimeout  int
	Schemas      []string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:           "recs-data",
		Short:         "Look up published RECS housing characteristics figures",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	flags := cmd.PersistentFlags()
	flags.StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	flags.StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	flags.StringVar(&cfg.CacheDir, "cache-dir", app.DefaultCacheDir, "Directory holding downloaded files")
	flags.StringVar(&cfg.BaseURL, "base-url", app.DefaultBaseURL, "Base URL of the table workbooks")
	flags.StringVar(&cfg.MicrodataURL, "microdata-url", app.DefaultMicrodataURL, "URL of the microdata file")
	flags.IntVar(&cfg.HTTPTimeout, "http-timeout", app.DefaultHTTPTimeout, "Download timeout in seconds (0 disables)")
	flags.StringSliceVar(&cfg.Schemas, "schema", nil, "Catalog overlay files loaded on top of the built-in catalog")
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("cache_dir", flags.Lookup("cache-dir"))
	_ = viper.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = viper.BindPFlag("microdata_url", flags.Lookup("microdata-url"))
	_ = viper.BindPFlag("http_timeout", flags.Lookup("http-timeout"))
	_ = viper.BindPFlag("schema", flags.Lookup("schema"))

	cmd.AddCommand(newFindCommand())
	cmd.AddCommand(newBrowseCommand())
	cmd.AddCommand(newTablesCommand())
	cmd.AddCommand(newInspectCommand())
	cmd.AddCommand(newFetchCommand())
	cmd.AddCommand(newReleaseCommand())
	cmd.AddCommand(newMicrodataCommand())
	cmd.AddCommand(newValidateCommand())
	return cmd
}

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("recs-data")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/recs-data")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// Results go to stdout, so log lines go to stderr.
func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func newAppService() (app.Service, error) {
	return app.NewService(app.Config{
		CacheDir:     viper.GetString("cache_dir"),
		BaseURL:      viper.GetString("base_url"),
		MicrodataURL: viper.GetString("microdata_url"),
		HTTPTimeout:  viper.GetInt("http_timeout"),
		CatalogFiles: viper.GetStringSlice("schema"),
	})
}

func exitCodeForError(err error) int {
	code := errbuilder.CodeOf(err)
	message := errorMessage(err)
	switch code {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeNotFound:
		if core.IsMissingKey(err) {
			return 3
		}
		if strings.HasPrefix(message, "no data available") {
			return 4
		}
		return 5
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
