package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jewelify/design-engine/internal/design"
	"github.com/jewelify/design-engine/internal/geometry"
	"github.com/jewelify/design-engine/internal/prompt"
	"github.com/jewelify/design-engine/internal/session"
	"github.com/jewelify/design-engine/internal/store"
	"github.com/jewelify/design-engine/internal/survey"
)

// #region main
func main() {
	dbPath := envOr("JEWELIFY_DB", "")
	backendURL := envOr("GEOMETRY_ADDR", "")

	var svc geometry.Service
	if backendURL != "" {
		svc = geometry.NewClient(backendURL)
	} else {
		svc = geometry.NewSimulator(geometry.DefaultSimConfig(), nil)
	}

	opts := session.Options{Geometry: svc}
	if dbPath != "" {
		st, err := store.NewStore(dbPath)
		if err != nil {
			log.Fatalf("failed to open store: %v", err)
		}
		defer st.Close()
		opts.Store = st
	}

	scanner := bufio.NewScanner(os.Stdin)

	var sess *session.Session
	fmt.Print("Take the style survey? (enter to start, 'skip' for the house default): ")
	if scanner.Scan() && strings.TrimSpace(scanner.Text()) == "skip" {
		var err error
		sess, err = session.New(design.Fallback(""), opts)
		if err != nil {
			log.Fatalf("failed to start session: %v", err)
		}
	} else {
		answers := runSurvey(scanner)
		s, res, err := session.FromSurvey(answers, opts)
		if err != nil {
			log.Fatalf("failed to start session: %v", err)
		}
		if res.MaterialLocked {
			fmt.Println("Material locked by your metal preference.")
		}
		sess = s
	}

	fmt.Println("\nDesign Studio ready.")
	if dbPath != "" {
		fmt.Printf("  DB: %s", dbPath)
	}
	if backendURL != "" {
		fmt.Printf("  Backend: %s", backendURL)
	}
	fmt.Println()
	printEstimate(sess)
	fmt.Println("Describe a change, prefix with 'stone:', 'band:' or 'head:' to target a part,")
	fmt.Println("or use: undo, redo, price, concepts, validate, redesign <text>, show, quit")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		runCommand(sess, line)
	}
}

// #endregion main

// #region commands
func runCommand(sess *session.Session, line string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch {
	case line == "undo":
		sess.Undo()
		printEstimate(sess)

	case line == "redo":
		sess.Redo()
		printEstimate(sess)

	case line == "price":
		for _, item := range sess.Breakdown() {
			fmt.Printf("  %-35s %6d\n", item.Label, item.Amount)
		}
		printEstimate(sess)

	case line == "concepts":
		for _, c := range sess.Concepts() {
			fmt.Printf("  %-10d %s: style=%s band=%s stone=%s\n",
				c.ID, c.Name, c.Config.Style, c.Config.BandDesign, c.Config.StoneShape)
		}

	case line == "validate":
		v := sess.Validate()
		fmt.Printf("  valid=%v %s\n", v.Valid, v.Message)

	case line == "show":
		data, _ := json.MarshalIndent(sess.Current(), "  ", "  ")
		fmt.Printf("  %s\n", data)

	case strings.HasPrefix(line, "redesign"):
		text := strings.TrimSpace(strings.TrimPrefix(line, "redesign"))
		if _, err := sess.Redesign(ctx, text); err != nil {
			log.Printf("redesign failed: %v", err)
			return
		}
		printEstimate(sess)

	case strings.HasPrefix(line, "polish ") || strings.HasPrefix(line, "clarity "):
		applySlider(ctx, sess, line)

	case strings.HasPrefix(line, "stone:"), strings.HasPrefix(line, "band:"), strings.HasPrefix(line, "head:"):
		idx := strings.Index(line, ":")
		part := prompt.Part(line[:idx])
		text := strings.TrimSpace(line[idx+1:])
		_, p, err := sess.EditPart(ctx, part, text)
		if err != nil {
			log.Printf("edit failed: %v", err)
			return
		}
		fmt.Printf("  applied to %s: %v\n", part, p.Fields())
		printEstimate(sess)

	default:
		_, p, err := sess.EditPrompt(ctx, line)
		if err != nil {
			log.Printf("edit failed: %v", err)
			return
		}
		fmt.Printf("  applied: %v\n", p.Fields())
		printEstimate(sess)
	}
}

func applySlider(ctx context.Context, sess *session.Session, line string) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		fmt.Println("  usage: polish 0.8")
		return
	}
	v, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		fmt.Printf("  not a number: %s\n", parts[1])
		return
	}
	var p design.Patch
	if parts[0] == "polish" {
		p.Polish = design.FloatPtr(v)
	} else {
		p.Clarity = design.FloatPtr(v)
	}
	if _, err := sess.Apply(ctx, "instant", p); err != nil {
		log.Printf("edit failed: %v", err)
		return
	}
	printEstimate(sess)
}

func printEstimate(sess *session.Session) {
	price, days := sess.Estimate()
	cfg := sess.Current()
	fmt.Printf("  [%s %s %s] price=%d days=%s\n", cfg.Material, cfg.Style, cfg.StoneShape, price, days)
}

// #endregion commands

// #region survey
// runSurvey walks through the questionnaire on stdin. Empty input picks
// the first option.
func runSurvey(scanner *bufio.Scanner) survey.Answers {
	answers := survey.Answers{Category: "ring", Survey: make(map[string]string)}

	fmt.Println("Answer the style survey (enter for the first option):")
	for _, q := range survey.Questions() {
		fmt.Printf("\n%s\n", q.Label)
		for i, opt := range q.Options {
			fmt.Printf("  %d) %s\n", i+1, opt.Label)
		}
		fmt.Print("choice: ")

		choice := q.Options[0].ID
		if scanner.Scan() {
			input := strings.TrimSpace(scanner.Text())
			if n, err := strconv.Atoi(input); err == nil && n >= 1 && n <= len(q.Options) {
				choice = q.Options[n-1].ID
			} else if input != "" {
				choice = input
			}
		}
		answers.Survey[q.ID] = choice
	}
	return answers
}

// #endregion survey

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
