// The tester runs a live scenario against a running chat server: two users
// join a room, exchange messages and leave, while a stream opened for the
// first user checks everything arrives in order. Results are printed as a
// summary table.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"chat-rooms/client"
	"chat-rooms/domain"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type step struct {
	Name     string
	Expected string
	Got      string
	OK       bool
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	steps, err := runScenario(ctx, cfg)
	if err != nil {
		log.Fatalf("scenario aborted: %v", err)
	}

	printSummary(cfg, steps)

	for _, s := range steps {
		if !s.OK {
			os.Exit(1)
		}
	}
}

func runScenario(ctx context.Context, cfg Config) ([]step, error) {
	c := client.New(cfg.ServerURL)
	var steps []step

	// Open user1's stream before joining so its own JOIN is observed
	stream, err := c.Stream(ctx, "user1", cfg.Room)
	if err != nil {
		return nil, err
	}
	// Let the server attach the subscription before producing events
	time.Sleep(200 * time.Millisecond)

	user1, err := c.Join(ctx, domain.JoinRequest{Username: "user1", Room: cfg.Room})
	if err != nil {
		return nil, err
	}
	steps = append(steps, check("join user1", "user1", user1.Username))

	user2, err := c.Join(ctx, domain.JoinRequest{Room: cfg.Room})
	if err != nil {
		return nil, err
	}
	steps = append(steps, check("join anonymous", "non-empty username", nonEmpty(user2.Username)))

	if err := c.Send(ctx, "hello from user1", user1.Username, cfg.Room); err != nil {
		return nil, err
	}
	if err := c.Leave(ctx, user1.Username, cfg.Room); err != nil {
		return nil, err
	}

	expected := []struct {
		kind    domain.Kind
		content string
	}{
		{domain.KindJoin, "user1 has joined the chat"},
		{domain.KindJoin, fmt.Sprintf("%s has joined the chat", user2.Username)},
		{domain.KindChat, "hello from user1"},
		{domain.KindLeave, "user1 has left the chat"},
	}

	for _, want := range expected {
		name := fmt.Sprintf("stream %s", want.kind)
		select {
		case msg, ok := <-stream:
			if !ok {
				steps = append(steps, step{Name: name, Expected: want.content, Got: "stream closed", OK: false})
				continue
			}
			got := fmt.Sprintf("[%s] %s", msg.Kind, msg.Content)
			steps = append(steps, step{
				Name:     name,
				Expected: want.content,
				Got:      got,
				OK:       msg.Kind == want.kind && msg.Content == want.content,
			})
		case <-time.After(5 * time.Second):
			steps = append(steps, step{Name: name, Expected: want.content, Got: "timeout", OK: false})
		}
	}

	return steps, nil
}

func check(name, expected, got string) step {
	return step{Name: name, Expected: expected, Got: got, OK: expected == got}
}

func nonEmpty(s string) string {
	if s == "" {
		return ""
	}
	return "non-empty username"
}

func printSummary(cfg Config, steps []step) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Step", "Expected", "Got", "Status"})

	rows := lo.Map(steps, func(s step, _ int) []string {
		status := "PASS"
		if !s.OK {
			status = "FAIL"
		}
		if cfg.Colours {
			if s.OK {
				status = color.Green.Render(status)
			} else {
				status = color.Red.Render(status)
			}
		}
		return []string{s.Name, s.Expected, s.Got, status}
	})
	table.AppendBulk(rows)
	table.Render()
}
