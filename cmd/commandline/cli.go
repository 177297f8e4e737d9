package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ethanbaker/names/pkg/sdk"
	"github.com/jessevdk/go-flags"
)

// Options is the root command. The struct tags are interpreted by github.com/jessevdk/go-flags
type Options struct {
	URL     string        `short:"u" long:"url" env:"NAMES_API_URL" default:"http://localhost:8080/api" description:"Base URL of the names API"`
	Timeout time.Duration `short:"t" long:"timeout" default:"10s" description:"Request timeout"`

	List   *ListCmd   `command:"list" description:"List stored names, newest first"`
	Add    *AddCmd    `command:"add" description:"Store a new name"`
	Health *HealthCmd `command:"health" description:"Check API and database health"`

	out io.Writer
}

// newOptions creates the root command with every sub-command bound to it
func newOptions(out io.Writer) *Options {
	o := &Options{out: out}
	o.List = &ListCmd{opts: o}
	o.Add = &AddCmd{opts: o}
	o.Health = &HealthCmd{opts: o}
	return o
}

// client is a helper that builds an SDK client and a request context from the options
func (o *Options) client() (*sdk.Client, context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), o.Timeout)
	return sdk.NewClient(o.URL), ctx, cancel
}

// ListCmd prints every stored name
type ListCmd struct {
	opts *Options
}

func (c *ListCmd) Execute(_ []string) error {
	client, ctx, cancel := c.opts.client()
	defer cancel()

	list, err := client.ListNames(ctx)
	if err != nil {
		return err
	}

	if len(list) == 0 {
		fmt.Fprintln(c.opts.out, "No names stored")
		return nil
	}

	for _, n := range list {
		fmt.Fprintf(c.opts.out, "%d\t%s\t%s\n", n.ID, n.CreatedAt.Format(time.RFC3339), n.Value)
	}
	return nil
}

// AddCmd stores the positional arguments, joined by spaces, as one name
type AddCmd struct {
	Args struct {
		Value []string `positional-arg-name:"value" required:"1"`
	} `positional-args:"yes"`

	opts *Options
}

func (c *AddCmd) Execute(_ []string) error {
	client, ctx, cancel := c.opts.client()
	defer cancel()

	created, err := client.CreateName(ctx, strings.Join(c.Args.Value, " "))
	if err != nil {
		return err
	}

	fmt.Fprintf(c.opts.out, "Stored %q with id %d\n", created.Value, created.ID)
	return nil
}

// HealthCmd prints the health report
type HealthCmd struct {
	opts *Options
}

func (c *HealthCmd) Execute(_ []string) error {
	client, ctx, cancel := c.opts.client()
	defer cancel()

	status, err := client.Health(ctx)
	if status != nil {
		fmt.Fprintf(c.opts.out, "status: %s\ndatabase: %s\ntable_exists: %t\n", status.Status, status.Database, status.TableExists)
		if status.Error != "" {
			fmt.Fprintf(c.opts.out, "error: %s\n", status.Error)
		}
	}
	return err
}

// Run parses args and executes the selected command, writing output to out
func Run(args []string, out io.Writer) error {
	parser := flags.NewParser(newOptions(out), flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	return err
}
