// Package shell 终端里与引擎对弈的逐行命令循环
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"negachess/internal/chess"
	"negachess/internal/engine"
	"negachess/internal/notation"
)

const (
	DefaultDepth   = 4
	DefaultTimeout = 5 * time.Minute

	// ap 最多走这么多步，光杆王永远不会终局
	maxAutoplayPlies = 400
)

var (
	errQuit           = errors.New("quit")
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
	ErrIllegalMove    = errors.New("illegal move")
)

// Shell 保存一盘棋以及命令可修改的搜索设置
type Shell struct {
	out    io.Writer
	engine *engine.Engine

	start   *chess.Position
	pos     *chess.Position
	moves   []chess.Move
	depth   int
	timeout time.Duration
}

func New(eng *engine.Engine, out io.Writer) *Shell {
	if eng == nil {
		eng = engine.NewEngine()
	}
	pos := chess.NewInitialPosition()
	return &Shell{
		out:     out,
		engine:  eng,
		start:   pos,
		pos:     pos,
		depth:   DefaultDepth,
		timeout: DefaultTimeout,
	}
}

func (s *Shell) Position() *chess.Position { return s.pos }

func (s *Shell) SetDepth(depth int) {
	if depth > 0 {
		s.depth = depth
	}
}

// SetTimeout 单次搜索的时间上限，0 表示不限制
func (s *Shell) SetTimeout(d time.Duration) {
	if d >= 0 {
		s.timeout = d
	}
}

// Run 打印棋盘，逐行执行命令，直到 "q"、输入结束或 ctx 结束。
// 命令出错时打印错误，继续循环
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.printBoard()
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		err := s.Execute(ctx, line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		s.printBoard()
	}
	return sc.Err()
}

// Execute 执行一行命令
func (s *Shell) Execute(ctx context.Context, line string) error {
	code, args, _ := strings.Cut(strings.TrimSpace(line), " ")
	fields := strings.Fields(args)
	switch code {
	case "pp":
		return s.placePiece(fields)
	case "rp":
		return s.removePiece(fields)
	case "mm":
		return s.makeMove(fields)
	case "fm":
		return s.findMove(ctx)
	case "dd":
		return s.setDepth(fields)
	case "wt":
		return s.setWaitTime(fields)
	case "rb":
		s.reset(chess.NewInitialPosition())
		return nil
	case "ap":
		return s.autoplay(ctx)
	case "pm":
		s.printMoves()
		return nil
	case "fen":
		return s.fen(args)
	case "q", "quit":
		return errQuit
	}
	return fmt.Errorf("%w %q", ErrUnknownCommand, code)
}

func (s *Shell) printBoard() {
	fmt.Fprint(s.out, Render(s.pos))
	if s.pos.IsGameOver() {
		fmt.Fprintln(s.out, "gameover")
	}
}

// reset 以 pos 为起点重新记录着法
func (s *Shell) reset(pos *chess.Position) {
	s.start = pos
	s.pos = pos
	s.moves = nil
}

func (s *Shell) placePiece(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: pp <w|b> <kind> <field>", ErrBadArguments)
	}
	side := chess.Black
	if args[0] == "w" {
		side = chess.White
	}
	kind, ok := chess.ParsePieceKind(args[1])
	if !ok {
		return fmt.Errorf("no piece %s", args[1])
	}
	field, ok := chess.ParseField(args[2])
	if !ok {
		return fmt.Errorf("no field %s", args[2])
	}
	pos, err := s.pos.Place(side, kind, field)
	if err != nil {
		return err
	}
	s.reset(pos)
	return nil
}

func (s *Shell) removePiece(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: rp <field>", ErrBadArguments)
	}
	field, ok := chess.ParseField(args[0])
	if !ok {
		return fmt.Errorf("no field %s", args[0])
	}
	s.reset(s.pos.Remove(field))
	return nil
}

func (s *Shell) makeMove(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: mm <from> <to> [promotion]", ErrBadArguments)
	}
	from, ok := chess.ParseField(args[0])
	if !ok {
		return fmt.Errorf("no field %s", args[0])
	}
	to, ok := chess.ParseField(args[1])
	if !ok {
		return fmt.Errorf("no field %s", args[1])
	}
	promote := chess.Queen
	if len(args) == 3 {
		if promote, ok = chess.ParsePieceKind(args[2]); !ok {
			return fmt.Errorf("no piece %s", args[2])
		}
	}

	for _, mv := range s.pos.LegalMoves() {
		if mv.From != from || mv.To != to {
			continue
		}
		if mv.Type == chess.MovePromotion && mv.Promoted != promote {
			continue
		}
		fmt.Fprintln(s.out, mv)
		return s.play(mv)
	}
	// 空格、不该走的一方，按原错误报告
	if _, err := s.pos.Apply(chess.NewMove(from, to)); err != nil {
		return err
	}
	return fmt.Errorf("%w: %v to %v", ErrIllegalMove, from, to)
}

func (s *Shell) play(mv chess.Move) error {
	pos, err := s.pos.Apply(mv)
	if err != nil {
		return err
	}
	s.pos = pos
	s.moves = append(s.moves, mv)
	return nil
}

func (s *Shell) search(ctx context.Context) (engine.SearchResult, error) {
	return s.engine.Search(ctx, s.pos, engine.SearchConfig{
		Depth:     s.depth,
		TimeLimit: s.timeout,
	})
}

func (s *Shell) findMove(ctx context.Context) error {
	res, err := s.search(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%v found in %dms (depth %d, %d nodes, score %.1f)\n",
		res.BestMove, res.TimeUsed.Milliseconds(), res.Depth, res.Nodes, res.Score)
	return s.play(res.BestMove)
}

func (s *Shell) autoplay(ctx context.Context) error {
	for ply := 0; !s.pos.IsGameOver(); ply++ {
		if ply == maxAutoplayPlies {
			return fmt.Errorf("autoplay stopped after %d plies", ply)
		}
		res, err := s.search(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(s.out, res.BestMove)
		if err := s.play(res.BestMove); err != nil {
			return err
		}
		fmt.Fprint(s.out, Render(s.pos))
	}
	return nil
}

func (s *Shell) printMoves() {
	for i, san := range notation.History(s.start, s.moves) {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, san)
	}
}

func (s *Shell) setDepth(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: dd <depth>", ErrBadArguments)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return fmt.Errorf("%w: depth %q", ErrBadArguments, args[0])
	}
	s.depth = n
	return nil
}

func (s *Shell) setWaitTime(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: wt <seconds>", ErrBadArguments)
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return fmt.Errorf("%w: seconds %q", ErrBadArguments, args[0])
	}
	s.timeout = time.Duration(n) * time.Second
	return nil
}

func (s *Shell) fen(args string) error {
	args = strings.TrimSpace(args)
	if args == "" {
		fmt.Fprintln(s.out, s.pos.EncodeFEN())
		return nil
	}
	pos, err := chess.DecodeFEN(args)
	if err != nil {
		return err
	}
	s.reset(pos)
	return nil
}
