package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/kailas-cloud/folio"
	logpkg "github.com/kailas-cloud/folio/internal/logger"
	"github.com/kailas-cloud/folio/internal/version"
)

// catalog is what the commands need from the SDK.
type catalog interface {
	Works(ctx context.Context) ([]folio.Work, error)
	Speeches(ctx context.Context, playID, query string, page, pageSize int) (folio.SpeechSearchResult, error)
	Collections(ctx context.Context) ([]folio.Collection, error)
	Dump(ctx context.Context, name string) (string, error)
}

// connectFunc builds a catalog from the global flags.
type connectFunc func(cliCtx *cli.Context, logger *zap.Logger) (catalog, error)

// session carries per-run state shared by the commands.
type session struct {
	connect connectFunc
	logger  *zap.Logger
	catalog catalog
}

func newApp(out, errOut io.Writer, connect connectFunc) *cli.App {
	s := &session{connect: connect, logger: zap.NewNop()}

	app := &cli.App{
		Name:      "folioctl",
		Usage:     "Inspect the play catalog in the search index",
		Version:   version.Version,
		Writer:    out,
		ErrWriter: errOut,
		Commands: []*cli.Command{
			s.worksCommand(),
			s.speechesCommand(),
			s.collectionsCommand(),
			s.dumpCommand(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				EnvVars: []string{"TYPESENSE_HOST"},
				Usage:   "Search service host name or URL",
			},
			&cli.StringFlag{
				Name:    "api-key",
				EnvVars: []string{"TYPESENSE_API_KEY"},
				Usage:   "Search service API key",
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Value:   10 * time.Second,
				EnvVars: []string{"FOLIO_TIMEOUT"},
				Usage:   "Connection timeout",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"FOLIO_LOG_LEVEL"},
				Usage:   "Set logging level",
				Value:   "warn",
			},
		},
		Before: func(cliCtx *cli.Context) error {
			logger, err := logpkg.NewCLILogger(cliCtx.String("log-level"))
			if err != nil {
				return err
			}
			s.logger = logger
			return nil
		},
		After: func(*cli.Context) error {
			_ = s.logger.Sync()
			return nil
		},
	}

	app.ExitErrHandler = func(cliCtx *cli.Context, err error) {
		if err == nil {
			return
		}
		s.logger.Debug("command failed", zap.Error(err))
		_, _ = fmt.Fprintln(cliCtx.App.ErrWriter, "error:", err)
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))
	return app
}

// catalogFor connects on first use so that help and version need no credentials.
func (s *session) catalogFor(cliCtx *cli.Context) (catalog, error) {
	if s.catalog != nil {
		return s.catalog, nil
	}
	c, err := s.connect(cliCtx, s.logger)
	if err != nil {
		return nil, err
	}
	s.catalog = c
	return c, nil
}

func (s *session) worksCommand() *cli.Command {
	return &cli.Command{
		Name:  "works",
		Usage: "List plays (first 250)",
		Action: func(cliCtx *cli.Context) error {
			c, err := s.catalogFor(cliCtx)
			if err != nil {
				return err
			}
			works, err := c.Works(cliCtx.Context)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cliCtx.App.Writer, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tTITLE")
			for _, w := range works {
				_, _ = fmt.Fprintf(tw, "%s\t%s\n", w.ID, w.Title)
			}
			return tw.Flush()
		},
	}
}

func (s *session) speechesCommand() *cli.Command {
	return &cli.Command{
		Name:      "speeches",
		Usage:     "Search speeches within a play",
		ArgsUsage: "<play-id> [query]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "page",
				Value:   1,
				Aliases: []string{"p"},
			},
			&cli.IntFlag{
				Name:    "per-page",
				Value:   250,
				Aliases: []string{"n"},
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print the full result as JSON",
			},
		},
		Action: func(cliCtx *cli.Context) error {
			playID := cliCtx.Args().Get(0)
			if playID == "" {
				return fmt.Errorf("%w: play id is required", folio.ErrInvalidArgument)
			}

			c, err := s.catalogFor(cliCtx)
			if err != nil {
				return err
			}
			res, err := c.Speeches(cliCtx.Context, playID, cliCtx.Args().Get(1),
				cliCtx.Int("page"), cliCtx.Int("per-page"))
			if err != nil {
				return err
			}

			if cliCtx.Bool("json") {
				enc := json.NewEncoder(cliCtx.App.Writer)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}

			_, _ = fmt.Fprintf(cliCtx.App.Writer, "%s: %d found, page %d of %d\n",
				res.Play.Title, res.Found, res.Page, res.TotalPages)
			for _, sp := range res.Speeches {
				_, _ = fmt.Fprintf(cliCtx.App.Writer, "[%s] %s: %s\n", sp.SceneID, sp.Speaker, sp.Content)
			}
			return nil
		},
	}
}

func (s *session) collectionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "collections",
		Usage: "List collections with their fields and document counts",
		Action: func(cliCtx *cli.Context) error {
			c, err := s.catalogFor(cliCtx)
			if err != nil {
				return err
			}
			cols, err := c.Collections(cliCtx.Context)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cliCtx.App.Writer, 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "NAME\tDOCUMENTS\tFIELDS")
			for _, col := range cols {
				fields := ""
				for i, f := range col.Fields {
					if i > 0 {
						fields += ", "
					}
					fields += f.Name + ":" + f.Type
				}
				_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\n", col.Name, col.DocumentCount, fields)
			}
			return tw.Flush()
		},
	}
}

func (s *session) dumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "Print the first 250 raw hits of a collection",
		ArgsUsage: "<collection>",
		Action: func(cliCtx *cli.Context) error {
			c, err := s.catalogFor(cliCtx)
			if err != nil {
				return err
			}
			out, err := c.Dump(cliCtx.Context, cliCtx.Args().First())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cliCtx.App.Writer, out)
			return err
		},
	}
}

// sdkCatalog adapts *folio.Client to catalog.
type sdkCatalog struct {
	client *folio.Client
}

func newSDKCatalog(cliCtx *cli.Context, logger *zap.Logger) (catalog, error) {
	client, err := folio.New(
		folio.WithTypesense(cliCtx.String("host"), cliCtx.String("api-key")),
		folio.WithTimeout(cliCtx.Duration("timeout")),
		folio.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}
	return &sdkCatalog{client: client}, nil
}

func (s *sdkCatalog) Works(ctx context.Context) ([]folio.Work, error) {
	return s.client.Works().List(ctx)
}

func (s *sdkCatalog) Speeches(
	ctx context.Context, playID, query string, page, pageSize int,
) (folio.SpeechSearchResult, error) {
	return s.client.Speeches().Search(ctx, playID, query, folio.WithPage(page), folio.WithPageSize(pageSize))
}

func (s *sdkCatalog) Collections(ctx context.Context) ([]folio.Collection, error) {
	return s.client.Collections().List(ctx)
}

func (s *sdkCatalog) Dump(ctx context.Context, name string) (string, error) {
	return s.client.Collections().Dump(ctx, name)
}
