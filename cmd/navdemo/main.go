package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"

	"github.com/routewise/routewise/driver"
	"github.com/routewise/routewise/matcher"
	"github.com/routewise/routewise/route"
	"github.com/routewise/routewise/router"
)

func main() {
	var (
		routesFile  = flag.String("routes", "", "Path to a TOML route table (built-in demo table when empty)")
		path        = flag.String("path", "", "Address to navigate to and print")
		authed      = flag.Bool("auth", false, "Start with an authenticated session")
		logFile     = flag.String("log", "", "Write navigation logs to this file")
		list        = flag.Bool("list", false, "List the route table and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *path == "" && !*list && !*interactive {
		fmt.Fprintln(os.Stderr, "Usage: navdemo -path <address> [-routes table.toml] [-auth] [-log file]")
		fmt.Fprintln(os.Stderr, "       navdemo -list [-routes table.toml]")
		fmt.Fprintln(os.Stderr, "       navdemo -i  (interactive mode)")
		os.Exit(1)
	}

	if *logFile != "" {
		if err := setupLogger(*logFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	cfgs, err := loadConfigs(*routesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(cfgs, *authed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(cfgs, *path, *authed, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogger routes structured navigation logs to a file so they never
// interleave with the terminal output.
func setupLogger(file string) error {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{file}
	cfg.ErrorOutputPaths = []string{file}
	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	router.SetLogger(log)
	return nil
}

// tableFile is the TOML shape of a route table. Children nest under a
// repeated [[routes.routes]] block.
type tableFile struct {
	Routes []routeDef `toml:"routes"`
}

type routeDef struct {
	Path      string         `toml:"path"`
	Name      string         `toml:"name"`
	Component string         `toml:"component"`
	Redirect  string         `toml:"redirect"`
	Meta      map[string]any `toml:"meta"`
	Routes    []routeDef     `toml:"routes"`
}

func loadConfigs(file string) ([]matcher.Config, error) {
	if file == "" {
		return demoConfigs(), nil
	}
	var tf tableFile
	if _, err := toml.DecodeFile(file, &tf); err != nil {
		return nil, fmt.Errorf("decode %s: %w", file, err)
	}
	if len(tf.Routes) == 0 {
		return nil, fmt.Errorf("%s declares no routes", file)
	}
	return buildConfigs(tf.Routes), nil
}

func buildConfigs(defs []routeDef) []matcher.Config {
	cfgs := make([]matcher.Config, len(defs))
	for i, d := range defs {
		cfg := matcher.Config{
			Path:     d.Path,
			Name:     d.Name,
			Redirect: d.Redirect,
			Meta:     d.Meta,
			Children: buildConfigs(d.Routes),
		}
		if d.Redirect == "" {
			name := d.Component
			if name == "" {
				name = d.Path
			}
			cfg.Component = &route.Component{Name: name}
		}
		cfgs[i] = cfg
	}
	return cfgs
}

// demoConfigs is the built-in table: a public home, an auth-gated settings
// area with a nested profile, a lazily loaded reports view and a catch-all.
func demoConfigs() []matcher.Config {
	return []matcher.Config{
		{Path: "/", Name: "home", Component: &route.Component{Name: "HomeView"}},
		{Path: "/login", Name: "login", Component: &route.Component{Name: "LoginView"}},
		{
			Path:      "/settings",
			Name:      "settings",
			Component: &route.Component{Name: "SettingsView"},
			Meta:      map[string]any{"requiresAuth": true},
			Children: []matcher.Config{
				{Path: "profile", Name: "settings-profile", Component: &route.Component{Name: "ProfileView"}},
			},
		},
		{
			Path: "/users/:id",
			Name: "user",
			Component: &route.Component{Name: "UserView"},
		},
		{
			Path: "/reports",
			Name: "reports",
			Component: &route.Component{
				Loader: func() (*route.Component, error) {
					return &route.Component{Name: "ReportsView"}, nil
				},
			},
			Meta: map[string]any{"requiresAuth": true},
		},
		{Path: "/old-home", Redirect: "/"},
		{Path: "*", Name: "not-found", Component: &route.Component{Name: "NotFoundView"}},
	}
}

// session is the toy authentication state the demo guard checks.
type session struct {
	loggedIn bool
}

// requiresAuth reports whether any matched record is flagged in its meta.
func requiresAuth(rt *route.Route) bool {
	for _, rec := range rt.Matched {
		if v, ok := rec.Meta["requiresAuth"].(bool); ok && v {
			return true
		}
	}
	return false
}

// newDemoRouter assembles the router every mode shares: a memory driver, a
// compiled table and the auth guard redirecting gated routes to /login.
func newDemoRouter(cfgs []matcher.Config, s *session, opts ...router.Option) (*router.Router, *driver.Memory) {
	d := driver.NewMemory("/")
	r := router.New(matcher.NewTable(cfgs), d, opts...)

	r.BeforeEach(func(to, from *route.Route, next *route.Next) {
		if requiresAuth(to) && !s.loggedIn {
			loc := route.PathLocation("/login")
			loc.Query = map[string]string{"redirect": to.FullPath}
			next.Redirect(loc)
			return
		}
		next.Proceed()
	})

	return r, d
}

func run(cfgs []matcher.Config, path string, authed, listOnly bool) error {
	if listOnly {
		printTable(cfgs, "")
		return nil
	}

	s := &session{loggedIn: authed}
	r, d := newDemoRouter(cfgs, s)

	// The ready registry settles on the final landing even when the push
	// is redirected or resolves lazy components off the calling goroutine.
	done := make(chan struct{})
	var landed *route.Route
	var navErr error
	r.OnError(func(error) {})
	r.OnReady(func(rt *route.Route) {
		landed = rt
		close(done)
	}, func(err error) {
		navErr = err
		close(done)
	})

	r.Push(route.ParseLocation(path), nil, nil)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		return fmt.Errorf("navigation to %s never settled", path)
	}
	if navErr != nil {
		return navErr
	}

	printRoute(landed)
	fmt.Printf("\nHistory entries: %d\n", d.Len())
	return nil
}

func printTable(cfgs []matcher.Config, indent string) {
	for _, cfg := range cfgs {
		line := indent + cfg.Path
		if cfg.Name != "" {
			line += "  (" + cfg.Name + ")"
		}
		if cfg.Redirect != "" {
			line += "  -> " + cfg.Redirect
		}
		if requiresAuthCfg(cfg) {
			line += "  [auth]"
		}
		fmt.Println(line)
		printTable(cfg.Children, indent+"  ")
	}
}

func requiresAuthCfg(cfg matcher.Config) bool {
	v, ok := cfg.Meta["requiresAuth"].(bool)
	return ok && v
}

func printRoute(rt *route.Route) {
	fmt.Printf("Landed on: %s\n", rt.FullPath)
	if rt.Name != "" {
		fmt.Printf("Name:      %s\n", rt.Name)
	}
	if rt.RedirectedFrom != nil {
		fmt.Printf("Redirected from: %s\n", rt.RedirectedFrom.FullPath())
	}
	if len(rt.Params) > 0 {
		fmt.Printf("Params:    %s\n", formatMap(rt.Params))
	}
	if len(rt.Query) > 0 {
		fmt.Printf("Query:     %s\n", formatMap(rt.Query))
	}
	if rt.Hash != "" {
		fmt.Printf("Hash:      #%s\n", rt.Hash)
	}

	fmt.Printf("\nMatched chain:\n")
	if len(rt.Matched) == 0 {
		fmt.Println("  (nothing matched)")
		return
	}
	for _, rec := range rt.Matched {
		names := make([]string, 0, len(rec.Components))
		for slot, c := range rec.Components {
			label := c.Name
			if label == "" && c.Loader != nil {
				label = "(lazy)"
			}
			names = append(names, slot+"="+label)
		}
		sort.Strings(names)
		fmt.Printf("  %s  [%s]\n", rec.Path, strings.Join(names, ", "))
	}
}

func formatMap(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + m[k]
	}
	return strings.Join(parts, " ")
}
