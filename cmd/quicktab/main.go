// Command quicktab is a panel-style client for a running coordinator:
// it connects one session, runs a single operation or watches events,
// and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quicktab/internal/config"
	"quicktab/internal/engine"
	"quicktab/internal/entity"
	"quicktab/internal/ownership"
	"quicktab/internal/session"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: quicktab [flags] <command> [args]

Commands:
  create <url>
  move <id> <left> <top>
  resize <id> <width> <height>
  minimize <id>
  restore <id>
  focus <id>
  close <id>
  adopt <id>
  list
  watch

Flags:
`)
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	var (
		addr      = flag.String("addr", "127.0.0.1:9470", "coordinator address")
		namespace = flag.String("namespace", "default", "isolation namespace")
		contextID = flag.String("context", "", "context id (random when empty)")
	)
	flag.Usage = usage
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
	}

	cid := *contextID
	if cid == "" {
		cid = "cli-" + entity.NewID()[:8]
	}
	identity := ownership.Identity{ContextID: cid, NamespaceID: *namespace, Kind: ownership.KindPanel}

	cfg := session.Config{
		Identity:  identity,
		Heartbeat: config.Default().Heartbeat,
	}
	watching := args[0] == "watch"
	if watching {
		cfg.Handler = printEvent
	}

	sess, err := session.Dial(*addr, cfg)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := sess.Start(ctx); err != nil {
		cancel()
		log.Fatalf("connect %s: %v", *addr, err)
	}
	cancel()
	defer sess.Stop()

	if watching {
		fmt.Printf("watching namespace %s as %s; ctrl-c to stop\n", *namespace, cid)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		return
	}
	if args[0] == "list" {
		for _, q := range sess.Engine().WorkingSet() {
			state := "open"
			if q.Minimized {
				state = "min"
			}
			fmt.Printf("%s  z=%-3d %-4s %4dx%-4d @%d,%d  %s\n",
				q.ID, q.ZIndex, state, q.Size.Width, q.Size.Height, q.Position.Left, q.Position.Top, q.URL)
		}
		return
	}

	req, err := parseOp(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
	}

	opCtx, opCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer opCancel()
	res := <-sess.Apply(opCtx, req)
	if res.Err != nil {
		log.Fatalf("%s: %v", req.Op, res.Err)
	}
	fmt.Printf("%s %s committed at revision %d\n", res.Op, res.EntityID, res.Revision)
}

func parseOp(args []string) (engine.OpRequest, error) {
	need := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s takes %d argument(s)", args[0], n-1)
		}
		return nil
	}
	atoi := func(s string) (int, error) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("not a number: %s", s)
		}
		return n, nil
	}

	switch args[0] {
	case "create":
		if err := need(2); err != nil {
			return engine.OpRequest{}, err
		}
		return engine.OpRequest{Op: entity.OpCreate, URL: args[1]}, nil
	case "move":
		if err := need(4); err != nil {
			return engine.OpRequest{}, err
		}
		left, err := atoi(args[2])
		if err != nil {
			return engine.OpRequest{}, err
		}
		top, err := atoi(args[3])
		if err != nil {
			return engine.OpRequest{}, err
		}
		return engine.OpRequest{Op: entity.OpMove, EntityID: args[1], Position: &entity.Position{Left: left, Top: top}}, nil
	case "resize":
		if err := need(4); err != nil {
			return engine.OpRequest{}, err
		}
		w, err := atoi(args[2])
		if err != nil {
			return engine.OpRequest{}, err
		}
		h, err := atoi(args[3])
		if err != nil {
			return engine.OpRequest{}, err
		}
		return engine.OpRequest{Op: entity.OpResize, EntityID: args[1], Size: &entity.Size{Width: w, Height: h}}, nil
	case "minimize", "restore", "focus", "close", "adopt":
		if err := need(2); err != nil {
			return engine.OpRequest{}, err
		}
		return engine.OpRequest{Op: entity.Op(args[0]), EntityID: args[1]}, nil
	default:
		return engine.OpRequest{}, fmt.Errorf("unknown command: %s", args[0])
	}
}

func printEvent(ev engine.Event) {
	fmt.Printf("%s %s (%s) %s\n", time.Now().Format(time.TimeOnly), ev.Kind, ev.Reason, ev.Entity.ID)
}
