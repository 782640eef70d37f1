package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/phrasecast/internal/adapter/manifest"
	"github.com/heartmarshall/phrasecast/internal/domain"
	"github.com/heartmarshall/phrasecast/internal/service/playlist"
)

type generateOptions struct {
	seed           string
	text           string
	textFile       string
	baseURL        string
	out            string
	opener         string
	openerDuration float64
	maxPhraseLen   int
	targetDuration int
}

type generateOutput struct {
	SessionID string              `json:"sessionId"`
	Tokens    []domain.Token      `json:"tokens"`
	Matches   []domain.Match      `json:"matches"`
	Script    []domain.ScriptItem `json:"script"`
	Dropped   []int               `json:"dropped"`
	Stats     domain.Stats        `json:"stats"`
	Playlist  string              `json:"playlist"`
}

func newGenerateCmd() *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a playlist for a text (or the manifest's fixed text)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.seed, "seed", "", "Selection seed / session id (default: random uuid)")
	f.StringVar(&opts.text, "text", "", "Text to render")
	f.StringVar(&opts.textFile, "text-file", "", "Read the text to render from a file")
	f.StringVar(&opts.baseURL, "base-url", "", "Absolute origin for clip URLs (default: site-relative)")
	f.StringVarP(&opts.out, "out", "o", "", "Write the playlist to this file instead of stdout")
	f.StringVar(&opts.opener, "opener", "opener.ts", "Opener segment filename (empty to omit)")
	f.Float64Var(&opts.openerDuration, "opener-duration", 8.08, "Opener segment duration in seconds")
	f.IntVar(&opts.maxPhraseLen, "max-phrase-length", playlist.DefaultMaxPhraseLength, "Longest phrase, in words, to try")
	f.IntVar(&opts.targetDuration, "target-duration", 10, "EXT-X-TARGETDURATION value")
	cmd.MarkFlagsMutuallyExclusive("text", "text-file")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts generateOptions) error {
	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	text, err := resolveText(cmd, opts)
	if err != nil {
		return err
	}
	if opts.seed == "" {
		opts.seed = uuid.NewString()
	}

	svc := playlist.NewService(newLogger(cmd.ErrOrStderr()), m, playlist.Options{
		MaxPhraseLength: opts.maxPhraseLen,
		BaseURL:         opts.baseURL,
		OpenerFilename:  opts.opener,
		OpenerDuration:  opts.openerDuration,
		TargetDuration:  opts.targetDuration,
	})

	res, err := svc.Generate(cmd.Context(), playlist.GenerateInput{Seed: opts.seed, Text: text})
	if err != nil {
		return err
	}

	write := func(w io.Writer) error { return writeResult(w, opts.seed, res) }
	if opts.out != "" {
		err = writeFile(opts.out, write)
	} else {
		err = write(cmd.OutOrStdout())
	}
	if err != nil {
		return err
	}

	writeStats(cmd.ErrOrStderr(), opts.seed, res.Stats)
	return nil
}

// createFile opens the --out destination.
var createFile = func(name string) (io.WriteCloser, error) { return os.Create(name) }

// writeFile runs write against a freshly created file. The close error is
// returned since it may carry a failed flush.
func writeFile(name string, write func(io.Writer) error) error {
	file, err := createFile(name)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if err := write(file); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

func writeResult(w io.Writer, seed string, res *playlist.Result) error {
	if !outputJSON {
		if _, err := io.WriteString(w, res.Playlist); err != nil {
			return fmt.Errorf("write playlist: %w", err)
		}
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(generateOutput{
		SessionID: seed,
		Tokens:    res.Tokens,
		Matches:   res.Matches,
		Script:    res.Script,
		Dropped:   res.Dropped,
		Stats:     res.Stats,
		Playlist:  res.Playlist,
	}); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// resolveText returns nil when neither --text nor --text-file is given, so
// the manifest's fixed text is used.
func resolveText(cmd *cobra.Command, opts generateOptions) (*string, error) {
	switch {
	case opts.textFile != "":
		data, err := os.ReadFile(opts.textFile)
		if err != nil {
			return nil, fmt.Errorf("read text file: %w", err)
		}
		s := string(data)
		return &s, nil
	case cmd.Flags().Changed("text"):
		return &opts.text, nil
	default:
		return nil, nil
	}
}
