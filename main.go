package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/bryan-buckman/foodmood/internal/api"
	"github.com/bryan-buckman/foodmood/internal/catalog"
	"github.com/bryan-buckman/foodmood/internal/config"
	"github.com/bryan-buckman/foodmood/internal/database"
	"github.com/bryan-buckman/foodmood/internal/feed"
	"github.com/bryan-buckman/foodmood/internal/model"
	"github.com/bryan-buckman/foodmood/internal/opml"
	"github.com/bryan-buckman/foodmood/internal/planner"
	"github.com/bryan-buckman/foodmood/internal/search"
	"github.com/bryan-buckman/foodmood/internal/server"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli"
)

var version = "v0.1.0"

var storeFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "db",
		Usage: "SQLite database file (default $FOODMOOD_DB or foodmood.db)",
	},
	cli.StringFlag{
		Name:  "database-url",
		Usage: "PostgreSQL connection string (default $DATABASE_URL)",
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "foodmood"
	app.Usage = "food posts, search and budget planning"
	app.Version = version
	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "run the posts service",
			Action: serve,
			Flags: append([]cli.Flag{
				cli.StringFlag{Name: "addr", Usage: "listen address (default $FOODMOOD_ADDR or :8000)"},
				cli.BoolFlag{Name: "no-poll", Usage: "disable background feed imports"},
			}, storeFlags...),
		},
		{
			Name:   "search",
			Usage:  "filter posts from the service, or the built-in catalog when it is unreachable",
			Action: searchPosts,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "api", Usage: "service base URL (default $FOODMOOD_API_BASE)"},
				cli.StringFlag{Name: "type", Value: "all", Usage: "all, recipe, restaurant, foodWalk or sightseeing"},
				cli.StringFlag{Name: "q", Usage: "text in title, description or tags"},
				cli.IntFlag{Name: "max-time", Value: search.DefaultMaxTime, Usage: "cooking time ceiling for recipes (minutes)"},
				cli.IntFlag{Name: "max-budget", Value: search.DefaultMaxBudget, Usage: "budget ceiling (yen)"},
				cli.StringSliceFlag{Name: "situation"},
				cli.StringSliceFlag{Name: "genre"},
				cli.StringSliceFlag{Name: "priority"},
				cli.StringSliceFlag{Name: "shop-preference"},
				cli.StringSliceFlag{Name: "category"},
				cli.StringSliceFlag{Name: "recipe-genre"},
				cli.StringSliceFlag{Name: "recipe-preference"},
			},
		},
		{
			Name:   "plan",
			Usage:  "print restaurant and recipe bundles for a calorie target",
			Action: plan,
			Flags: []cli.Flag{
				cli.StringFlag{Name: "type", Value: "all", Usage: "all, recipe or restaurant"},
				cli.IntFlag{Name: "calories", Value: planner.DefaultCalories},
				cli.BoolFlag{Name: "json", Usage: "print JSON"},
			},
		},
		{
			Name:      "import-opml",
			Usage:     "subscribe to the feeds listed in an OPML file",
			ArgsUsage: "FILE",
			Action:    importOPML,
			Flags: append([]cli.Flag{
				cli.BoolFlag{Name: "fetch", Usage: "import posts from the new sources right away"},
			}, storeFlags...),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(c *cli.Context) *config.Config {
	cfg := config.Load()
	if c.IsSet("db") {
		cfg.DatabasePath = c.String("db")
	}
	if c.IsSet("database-url") {
		cfg.DatabaseURL = c.String("database-url")
	}
	return cfg
}

func openStore(cfg *config.Config) (database.Store, error) {
	if cfg.UsePostgres() {
		log.Printf("Using PostgreSQL")
		return database.NewPostgres(cfg.DatabaseURL)
	}
	log.Printf("Using SQLite at %s", cfg.DatabasePath)
	return database.New(cfg.DatabasePath)
}

func serve(c *cli.Context) error {
	cfg := loadConfig(c)
	if c.IsSet("addr") {
		cfg.Addr = c.String("addr")
	}
	if c.Bool("no-poll") {
		cfg.DisablePoller = true
	}

	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	if err := database.Seed(store); err != nil {
		return err
	}

	srv := server.New(store, cfg)
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		log.Printf("Shutting down")
		srv.Stop()
		store.Close()
		os.Exit(0)
	}()
	return srv.Start(cfg.Addr)
}

func searchPosts(c *cli.Context) error {
	cfg := config.Load()
	base := cfg.APIBase
	if c.IsSet("api") {
		base = c.String("api")
	}

	q := url.Values{}
	q.Set("type", c.String("type"))
	q.Set("q", c.String("q"))
	q.Set("maxTime", strconv.Itoa(c.Int("max-time")))
	q.Set("maxBudget", strconv.Itoa(c.Int("max-budget")))
	for flag, key := range map[string]string{
		"situation":         "situation",
		"genre":             "genre",
		"priority":          "priority",
		"shop-preference":   "shopPreference",
		"category":          "category",
		"recipe-genre":      "recipeGenre",
		"recipe-preference": "recipePreference",
	} {
		q[key] = c.StringSlice(flag)
	}
	opts := search.ParseQuery(q)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	posts := api.New(base, nil).GetPosts(ctx)
	if len(posts) == 0 {
		log.Printf("No posts from %s, searching the built-in catalog", base)
		posts = catalog.Posts()
	}
	results := search.Filter(posts, opts)

	if len(results) == 0 {
		fmt.Println("条件に一致する投稿が見つかりませんでした")
		return nil
	}
	for _, p := range results {
		fmt.Printf("%-4s %-11s %-24s ¥%-7s ★%.1f  %s\n",
			p.ID, p.Type, p.Title, humanize.Comma(int64(p.Budget)), p.Rating, p.Age())
	}
	return nil
}

func plan(c *cli.Context) error {
	req := planner.DefaultRequest()
	req.Type = model.PostType(c.String("type"))
	req.Calories = c.Int("calories")
	result := planner.Build(req)

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	for _, o := range result.RestaurantOrders {
		fmt.Printf("[外食] %s  %dkcal  ¥%s\n", o.Title, o.TotalCalories, humanize.Comma(int64(o.TotalPrice)))
		for _, it := range o.Items {
			fmt.Printf("    %s ¥%s\n", it.Name, humanize.Comma(int64(it.Price)))
		}
	}
	for _, o := range result.RecipeOrders {
		fmt.Printf("[自炊] %s  %dkcal  ¥%s\n", o.Title, o.TotalCalories, humanize.Comma(int64(o.TotalPrice)))
		for _, it := range o.Items {
			fmt.Printf("    %s %s ¥%s\n", it.Name, it.Quantity, humanize.Comma(int64(it.Price)))
			for _, alt := range it.Alternatives {
				fmt.Printf("      → %s ¥%s (%s)\n", alt.Name, humanize.Comma(int64(alt.Price)), alt.Reason)
			}
		}
	}
	return nil
}

func importOPML(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.NewExitError("missing OPML file", 2)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	entries, err := opml.Parse(f)
	if err != nil {
		return err
	}

	store, err := openStore(loadConfig(c))
	if err != nil {
		return err
	}
	defer store.Close()

	imported := server.ImportEntries(store, entries)
	log.Printf("Imported %d new sources (%d in file)", imported, len(entries))

	if c.Bool("fetch") {
		results, err := feed.NewImporter(store, nil).ImportAll(context.Background())
		if err != nil {
			return err
		}
		total := 0
		for _, n := range results {
			total += n
		}
		log.Printf("Imported %d posts from %d sources", total, len(results))
	}
	return nil
}
