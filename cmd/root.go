// Package cmd implements the wildmatch command line.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andribas404/aho-corasick/internal/logger"
	"github.com/andribas404/aho-corasick/internal/textio"
	"github.com/andribas404/aho-corasick/meta"
)

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logger.Error("wildmatch failed", "error", err)
		os.Exit(1)
	}
}

// NewRootCmd returns the wildmatch command tree bound to a fresh viper
// instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "wildmatch",
		Short: "Find wildcard pattern occurrences in a text",
		Long: `wildmatch reads a pattern and a text separated by whitespace and prints
the 0-based position of every occurrence of the pattern in the text, each
followed by a space. '?' in the pattern matches any single byte.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(v, cfgFile); err != nil {
				return err
			}
			return logger.Initialize(v.GetString("log-level"), v.GetString("log-format"), cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return search(cmd, v)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.wildmatch.yaml)")
	pf.String("log-level", "warn", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	pf.StringP("strategy", "s", meta.UseFlat.String(), "automaton form: flat, completed or failure")
	pf.String("wildcard", string(meta.DefaultConfig().Wildcard), "pattern byte matching any text byte")
	pf.Int("max-pattern-len", meta.DefaultConfig().MaxPatternLen, "longest accepted pattern")
	pf.Bool("no-prefilter", false, "disable the prefilter")

	f := rootCmd.Flags()
	f.StringP("input", "i", "", "input file (default is stdin)")
	f.StringP("output", "o", "", "output file (default is stdout)")
	f.Int("buffer-size", textio.DefaultBufferSize, "I/O buffer size in bytes")
	f.Bool("stream", true, "match while reading; disable to load the text and search it at once")

	bindFlags(v, pf, f)
	v.SetDefault("prefilter", true)

	rootCmd.AddCommand(newInspectCmd(v))
	return rootCmd
}

// bindFlags makes every flag in sets a viper key of the same name.
func bindFlags(v *viper.Viper, sets ...*pflag.FlagSet) {
	for _, set := range sets {
		cobra.CheckErr(v.BindPFlags(set))
	}
}

func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("WILDMATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", cfgFile, err)
		}
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	v.AddConfigPath(home)
	v.SetConfigType("yaml")
	v.SetConfigName(".wildmatch")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// engineConfig assembles the compile configuration from flags, environment
// and config file.
func engineConfig(v *viper.Viper) (meta.Config, error) {
	strategy, err := meta.ParseStrategy(v.GetString("strategy"))
	if err != nil {
		return meta.Config{}, err
	}
	wildcard := v.GetString("wildcard")
	if len(wildcard) != 1 {
		return meta.Config{}, fmt.Errorf("wildcard must be a single byte, got %q", wildcard)
	}
	return meta.DefaultConfig().
		WithStrategy(strategy).
		WithWildcard(wildcard[0]).
		WithMaxPatternLen(v.GetInt("max-pattern-len")).
		WithPrefilter(v.GetBool("prefilter") && !v.GetBool("no-prefilter")), nil
}

func search(cmd *cobra.Command, v *viper.Viper) error {
	config, err := engineConfig(v)
	if err != nil {
		return err
	}
	size := v.GetInt("buffer-size")

	var in io.Reader = cmd.InOrStdin()
	if path := v.GetString("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = cmd.OutOrStdout()
	var outFile *os.File
	if path := v.GetString("output"); path != "" {
		outFile, err = os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer outFile.Close()
		out = outFile
	}

	r := textio.NewReader(in, size)
	pattern, err := r.ReadPattern()
	if err != nil {
		return err
	}
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return err
	}
	logger.Debug("pattern compiled",
		"pattern_len", engine.PatternLen(),
		"segments", len(engine.Segments()),
		"states", engine.NumStates(),
		"strategy", engine.Strategy().String(),
		"prefilter", engine.PrefilterKind().String())

	w := textio.NewWriter(out, size)
	if v.GetBool("stream") {
		err = searchStream(engine, r, w)
	} else {
		err = searchAll(engine, r, w)
	}
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fmt.Errorf("close output: %w", err)
		}
	}
	return nil
}

// searchStream matches the text while it is read.
func searchStream(engine *meta.Engine, r *textio.Reader, w *textio.Writer) error {
	m := engine.NewStream()
	var werr error
	err := r.Stream(func(chunk []byte) {
		if werr != nil {
			return
		}
		m.Feed(chunk, func(anchor int) {
			if werr == nil {
				werr = w.WriteAnchor(anchor)
			}
		})
	})
	if err != nil {
		return err
	}
	if werr != nil {
		return werr
	}
	logger.Debug("search finished", "text_len", m.Pos(), "matches", w.Count())
	return nil
}

// searchAll loads the whole text and searches it with the prefilter.
func searchAll(engine *meta.Engine, r *textio.Reader, w *textio.Writer) error {
	var text []byte
	if err := r.Stream(func(chunk []byte) {
		text = append(text, chunk...)
	}); err != nil {
		return err
	}
	for _, anchor := range engine.FindAll(text) {
		if err := w.WriteAnchor(anchor); err != nil {
			return err
		}
	}
	st := engine.Stats()
	logger.Debug("search finished",
		"text_len", len(text),
		"matches", st.Matches,
		"prefilter_rejections", st.PrefilterRejections,
		"prefilter_skipped", st.PrefilterSkipped)
	return nil
}
