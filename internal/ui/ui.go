// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the slur language.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/slur-lang/slur/internal/system/history"
)

// Run launches a line editor that sends each complete form to e and
// prints the result. It returns when the input ends.
func Run(e Evaluator) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	_ = history.Load(cli.ReadHistory)

	s := New(e, os.Stdout, os.Stderr)

	for {
		line, err := cli.Prompt(s.Prompt())

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			s.Reset()

			continue
		case io.EOF:
			fmt.Println()

			return history.Save(cli.WriteHistory)
		default:
			return err
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		s.Line(context.Background(), line)
	}
}
