// Command outlines browses the course-outline catalog from the terminal and
// renders outline documents.
//
//	outlines browse [-no-clear] [-show]
//	outlines show [-no-color] <file|->
//	outlines grid [-format text|json|pjson|yaml|xlsx] [-o out] <file|->
//	outlines save <year/term/dept/course/section>
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mghazyfawazh/outlines/internal/catalog"
	"github.com/mghazyfawazh/outlines/internal/config"
	"github.com/mghazyfawazh/outlines/internal/export"
	"github.com/mghazyfawazh/outlines/internal/models"
	"github.com/mghazyfawazh/outlines/internal/outline"
	"github.com/mghazyfawazh/outlines/internal/render"
	"github.com/mghazyfawazh/outlines/internal/repo"
	"github.com/mghazyfawazh/outlines/internal/walker"
)

func main() {
	config.LoadEnv()
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	a := &app{cfg: cfg, stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}
	os.Exit(a.run(context.Background(), os.Args[1:]))
}

type app struct {
	cfg    config.Config
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (a *app) usage() {
	fmt.Fprintln(a.stderr, "usage: outlines <browse|show|grid|save> [flags] [args]")
}

func (a *app) run(ctx context.Context, args []string) int {
	if len(args) == 0 {
		a.usage()
		return 2
	}
	var err error
	switch args[0] {
	case "browse":
		err = a.browse(ctx, args[1:])
	case "show":
		err = a.show(args[1:])
	case "grid":
		err = a.grid(args[1:])
	case "save":
		err = a.save(ctx, args[1:])
	default:
		a.usage()
		return 2
	}
	if errors.Is(err, flag.ErrHelp) {
		return 2
	}
	if err != nil {
		fmt.Fprintln(a.stderr, "error:", err)
		return 1
	}
	return 0
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	return fs
}

func (a *app) catalog() (*catalog.Client, error) {
	return catalog.New(a.cfg.CatalogURL, a.cfg.HTTPTimeout, a.cfg.CacheTTL)
}

func (a *app) renderOptions(noColor bool) render.Options {
	return render.Options{WebURL: a.cfg.WebURL, Policy: a.cfg.DuplicateDays, NoColor: noColor}
}

func (a *app) browse(ctx context.Context, args []string) error {
	fs := a.flags("browse")
	noClear := fs.Bool("no-clear", false, "do not clear the screen between levels")
	show := fs.Bool("show", false, "render the chosen outline after the JSON dump")
	if err := fs.Parse(args); err != nil {
		return err
	}
	cat, err := a.catalog()
	if err != nil {
		return err
	}
	w := walker.New(cat, a.stdin, a.stdout)
	w.ClearScreen = !*noClear
	res, err := w.Run(ctx)
	if err != nil || res == nil || !*show {
		return err
	}
	o, err := outline.Parse(res.Document)
	if err != nil {
		return err
	}
	return render.Render(a.stdout, o, a.renderOptions(false))
}

func (a *app) readDocument(fs *flag.FlagSet) ([]byte, error) {
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("%s: expected one outline file (or - for stdin)", fs.Name())
	}
	if name := fs.Arg(0); name != "-" {
		return os.ReadFile(name)
	}
	return io.ReadAll(a.stdin)
}

func (a *app) show(args []string) error {
	fs := a.flags("show")
	noColor := fs.Bool("no-color", false, "plain output without colours")
	if err := fs.Parse(args); err != nil {
		return err
	}
	data, err := a.readDocument(fs)
	if err != nil {
		return err
	}
	o, err := outline.Parse(data)
	if errors.Is(err, outline.ErrNotEnoughData) {
		fmt.Fprintln(a.stdout, "Not enough data")
		fmt.Fprintln(a.stdout, strings.TrimSpace(string(data)))
		return err
	}
	if err != nil {
		return err
	}
	return render.Render(a.stdout, o, a.renderOptions(*noColor))
}

func (a *app) grid(args []string) error {
	fs := a.flags("grid")
	format := fs.String("format", "text", "output format: "+strings.Join(export.Formats(), ", "))
	out := fs.String("o", "", "write to this file instead of stdout")
	if err := fs.Parse(args); err != nil {
		return err
	}
	conv, err := export.New(*format)
	if err != nil {
		return err
	}
	data, err := a.readDocument(fs)
	if err != nil {
		return err
	}
	o, err := outline.Parse(data)
	if err != nil {
		return err
	}
	g, err := outline.Grid(o, a.cfg.DuplicateDays)
	if err != nil {
		return err
	}
	if g == nil {
		fmt.Fprintln(a.stderr, "No schedule available")
		return nil
	}

	w := a.stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return conv.Write(w, g)
}

func (a *app) save(ctx context.Context, args []string) error {
	fs := a.flags("save")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("save: expected a section path like 2024/fall/cmpt/120/d100")
	}
	s, err := a.fetchSaved(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(a.cfg.MongoURI))
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())
	store, err := repo.NewMongoRepo(ctx, client.Database(a.cfg.DBName).Collection("saved_outlines"))
	if err != nil {
		return err
	}
	if err := store.Insert(ctx, s); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "saved %s as %s\n", s.OutlinePath, s.UUID)
	return nil
}

// fetchSaved fetches a section and prepares it for storage, keyed by the
// same normalized path the HTTP API uses.
func (a *app) fetchSaved(ctx context.Context, arg string) (*models.SavedOutline, error) {
	path := catalog.SplitPath(arg)
	if len(path) == 0 {
		return nil, errors.New("save: empty section path")
	}
	cat, err := a.catalog()
	if err != nil {
		return nil, err
	}
	raw, err := cat.Raw(ctx, path)
	if err != nil {
		return nil, err
	}
	return outline.NewSaved(path, raw, time.Now().UTC())
}
