package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Glimesh/goems/config"
	"github.com/Glimesh/goems/pkg/ems"
	"github.com/Glimesh/goems/pkg/protocol"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const usage = `usage: emsctl [flags] <command> [key=value ...]
       emsctl [flags] commands`

func main() {
	log := logrus.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, log); err != nil {
		stop()
		log.Fatal(err)
	}
}

func run(ctx context.Context, args []string, out io.Writer, log *logrus.Logger) error {
	cfg, rest, err := config.Load(args)
	if err != nil {
		return errors.Wrap(err, "failed to read config")
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "failed to parse log level")
	}
	log.SetLevel(level)

	if len(rest) == 0 {
		return errors.New(usage)
	}
	if rest[0] == "commands" {
		return printCommands(out)
	}

	cmd, ok := ems.Commands[rest[0]]
	if !ok {
		return errors.Errorf("unknown command %q, see emsctl commands", rest[0])
	}
	params, err := parseParams(rest[1:])
	if err != nil {
		return err
	}

	client, err := ems.New(cfg.URI,
		ems.WithLogger(log),
		ems.WithTimeout(cfg.Timeout),
		ems.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
	)
	if err != nil {
		return err
	}

	log.Debugf("Sending %s to %s", cmd.Name, cfg.URI)
	data, err := client.Call(ctx, cmd, params)
	if err != nil {
		return errors.Wrapf(err, "%s failed (%s error)", cmd.Name, protocol.KindOf(err))
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, data, "", "  "); err != nil {
		return errors.Wrap(err, "format response")
	}
	pretty.WriteByte('\n')
	_, err = pretty.WriteTo(out)
	return err
}

// parseParams turns key=value tokens into params, keeping their order.
// Only the first '=' splits, values may contain more.
func parseParams(tokens []string) (protocol.Params, error) {
	var params protocol.Params
	for _, token := range tokens {
		key, value, ok := strings.Cut(token, "=")
		if !ok || key == "" {
			return nil, errors.Errorf("expected key=value, got %q", token)
		}
		params.Add(key, value)
	}
	return params, nil
}

func printCommands(out io.Writer) error {
	for _, name := range ems.CommandNames() {
		cmd := ems.Commands[name]
		line := name
		if len(cmd.Required) > 0 {
			line += " " + strings.Join(cmd.Required, " ")
		}
		if len(cmd.Optional) > 0 {
			line += " [" + strings.Join(cmd.Optional, " ") + "]"
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
