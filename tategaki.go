//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/timburks/tategaki/caret"
	"github.com/timburks/tategaki/commander"
	"github.com/timburks/tategaki/config"
	"github.com/timburks/tategaki/editor"
	"github.com/timburks/tategaki/gui"
	"github.com/timburks/tategaki/screen"
	tate "github.com/timburks/tategaki/types"
)

type options struct {
	terminal   bool
	debug      bool
	configPath string
	script     string
	filename   string
}

func parseArgs(args []string) (*options, error) {
	opts := &options{}
	for i := 0; i < len(args); i++ {
		argi := args[i]
		switch argi {
		case "--terminal", "-t":
			opts.terminal = true
		case "--debug":
			opts.debug = true
		case "--config":
			i++
			if i >= len(args) {
				return nil, errors.New("no file specified for --config option")
			}
			opts.configPath = args[i]
		case "--eval": // eval an expression
			i++
			if i >= len(args) {
				return nil, errors.New("no expression specified for --eval option")
			}
			opts.script = args[i]
		default:
			// If a file was specified on the command line, read it.
			if opts.filename != "" {
				return nil, fmt.Errorf("only one file can be opened, got %s and %s", opts.filename, argi)
			}
			opts.filename = argi
		}
	}
	if opts.configPath == "" {
		opts.configPath = config.GetConfigPath()
	}
	return opts, nil
}

// openLog directs the default logger to the log file.
func openLog(path string, debug bool) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f, nil
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfg, cfgErr := config.Load(opts.configPath)

	// Open a log file.
	if f, err := openLog(cfg.GetLogFile(), opts.debug); err != nil {
		fmt.Fprintln(os.Stderr, err)
	} else {
		defer f.Close()
	}
	if cfgErr != nil {
		slog.Error("config not loaded", "err", cfgErr)
	}

	// The editor manages all text manipulation.
	e := editor.NewEditor(cfg.GetMaxLines(), cfg.GetLocale())

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)
	c.SetDebug(opts.debug)

	if opts.filename != "" {
		if err := e.ReadFile(opts.filename); err != nil {
			if opts.script != "" || !errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			slog.Info("starting a new file", "path", opts.filename)
		}
	}

	switch {
	case opts.script != "":
		// Run a script and exit.
		result, err := commander.ParseEval(opts.script)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(result)
	case opts.terminal:
		if err := runTerminal(e, c, cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	default:
		gui.Run(e, c, cfg)
	}
}

func runTerminal(e *editor.Editor, c *commander.Commander, cfg *config.Config) error {
	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		return err
	}
	defer s.Close()

	e.SetDialogs(c)
	e.SetClipboard(screen.Clipboard{})

	visible := true
	blinker := caret.NewBlinker(cfg.GetBlinkInterval(), s.Post)
	blinker.Start(func(v bool) { visible = v })
	defer blinker.Stop()

	// Run the main event loop.
	events := s.Events()
	for c.IsRunning() {
		s.Render(e.GetBuffer(), e, c, visible)
		select {
		case f := <-s.Posted():
			f()
		case event := <-events:
			if event.Type == tate.EventKey {
				blinker.Show()
				visible = true
			}
			if err := c.ProcessEvent(event); err != nil {
				slog.Error("event", "err", err)
			}
		}
	}
	return nil
}
