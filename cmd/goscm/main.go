/*
Copyright (C) 2023  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	"github.com/fsnotify/fsnotify"

	"github.com/launix-de/goscm/driver"
)

const (
	newPrompt    = "\033[32m>\033[0m "
	contPrompt   = "\033[32m.\033[0m "
	resultPrompt = "\033[31m=\033[0m "
)

func main() {
	watch := flag.Bool("watch", false, "re-run the given script whenever it changes on disk")
	tracePath := flag.String("trace", "", "write a JSON run trace to this file")
	listenAddr := flag.String("listen", "", "serve a websocket REPL on this address (e.g. :6066) instead of the terminal")
	flag.Parse()

	sess := driver.NewSession()
	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		tracer := driver.NewTracer(f)
		onexit.Register(func() { tracer.Close() })
		sess.WithTracer(tracer)
	}

	if *listenAddr != "" {
		if err := listen(sess, *listenAddr); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() > 0 {
		path := flag.Arg(0)
		runFile(sess, path)
		if *watch {
			watchFile(sess, path)
		}
		return
	}

	repl(sess)
}

func runFile(sess *driver.Session, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	result, err := sess.Run(string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if result != "" {
		fmt.Println(result)
	}
}

func watchFile(sess *driver.Session, path string) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer w.Close()
	if err := w.Add(path); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("watching %s for changes (ctrl-c to stop)\n", path)
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				runFile(sess, path)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			fmt.Fprintln(os.Stderr, err)
		}
	}
}

func repl(sess *driver.Session) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newPrompt,
		HistoryFile:       ".goscm-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	pending := ""
	for {
		line, err := l.Readline()
		line = pending + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		result, runErr := sess.Run(line)
		if runErr != nil && strings.Contains(runErr.Error(), "unterminated list") {
			pending = line + "\n"
			l.SetPrompt(contPrompt)
			continue
		}
		pending = ""
		l.SetPrompt(newPrompt)
		if runErr != nil {
			fmt.Println("error:", runErr)
			continue
		}
		if result != "" {
			fmt.Print(resultPrompt)
			fmt.Println(result)
		}
	}
}
