// chesspal is a minimal line-protocol composition root over pkg/engine.
// It reads one command per stdin line and writes each command's response to
// stdout (the board and export responses span several lines); it carries no banners, no localized strings, and no persisted
// report writer -- it only demonstrates the facade is callable end to end.
package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/herohde/chesspal/pkg/board"
	"github.com/herohde/chesspal/pkg/engine"
	"github.com/seekerror/logw"
)

func main() {
	ctx := context.Background()

	f, err := engine.New(ctx)
	if err != nil {
		logw.Exitf(ctx, "failed to initialize engine: %v", err)
	}

	out := make(chan string, 1)
	go func() {
		defer close(out)
		for line := range engine.ReadStdinLines(ctx) {
			out <- handle(ctx, f, line)
		}
	}()
	engine.WriteStdoutLines(ctx, out)
}

func handle(ctx context.Context, f *engine.Facade, line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	switch fields[0] {
	case "move":
		return handleMove(ctx, f, fields)
	case "classify":
		return handleClassify(ctx, f, fields)
	case "best":
		return handleBest(ctx, f)
	case "board":
		return boardString(f)
	case "config":
		return handleConfig(f, fields[1:])
	case "export":
		var sb strings.Builder
		if err := f.ExportAnalysis(&sb, time.Now()); err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return sb.String()
	case "reset":
		f.Reset(ctx)
		return "ok"
	default:
		return fmt.Sprintf("unknown command: %v", fields[0])
	}
}

func handleMove(ctx context.Context, f *engine.Facade, fields []string) string {
	if len(fields) != 2 {
		return "usage: move <f1r1f2r2>"
	}
	m := f.ParseMove(fields[1])
	if !m.IsValid() {
		return "invalid"
	}
	if !f.ApplyMove(ctx, m) {
		return "illegal"
	}
	return "ok"
}

func handleClassify(ctx context.Context, f *engine.Facade, fields []string) string {
	if len(fields) != 2 {
		return "usage: classify <f1r1f2r2>"
	}
	m := f.ParseMove(fields[1])
	rec, err := f.ClassifyUserMove(ctx, m)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return rec.String()
}

func handleBest(ctx context.Context, f *engine.Facade) string {
	res, err := f.BestMove(ctx)
	if err != nil {
		return fmt.Sprintf("no legal move, score=%v", res.Score)
	}
	return fmt.Sprintf("%v depth=%v score=%v nodes=%v", res.BestMove, res.Depth, res.Score, res.Nodes)
}

func handleConfig(f *engine.Facade, args []string) string {
	var opts []engine.Option
	for _, a := range args {
		kv := strings.SplitN(a, "=", 2)
		if len(kv) != 2 {
			return fmt.Sprintf("invalid config arg: %v", a)
		}

		key, val := kv[0], kv[1]
		switch key {
		case "depth":
			d, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Sprintf("invalid depth: %v", val)
			}
			opts = append(opts, engine.WithMaxDepth(d))
		case "timelimit":
			ms, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Sprintf("invalid timelimit: %v", val)
			}
			opts = append(opts, engine.WithTimeLimitMs(ms))
		case "timelimitenabled":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Sprintf("invalid timelimitenabled: %v", val)
			}
			opts = append(opts, engine.WithTimeLimitEnabled(b))
		case "trace":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Sprintf("invalid trace: %v", val)
			}
			opts = append(opts, engine.WithTreeTraceEnabled(b))
		case "classifier":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Sprintf("invalid classifier: %v", val)
			}
			opts = append(opts, engine.WithClassifierEnabled(b))
		default:
			return fmt.Sprintf("unknown config key: %v", key)
		}
	}

	if err := f.Configure(opts...); err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return fmt.Sprintf("ok %v", f.Config())
}

func boardString(f *engine.Facade) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteString(f.GetPiece(board.NewSquare(file, rank)).String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
