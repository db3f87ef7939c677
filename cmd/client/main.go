package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/dayanaadylkhanova/kctf-pow/internal/entity"
	"github.com/dayanaadylkhanova/kctf-pow/pkg/logger"
	"github.com/dayanaadylkhanova/kctf-pow/pkg/pow"
)

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func main() {
	log := logger.NewJSON(logger.LevelFromEnv(getenv("LOG_LEVEL", "info")))
	addr := getenv("SERVER_ADDR", "localhost:8080")

	dialCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := (&net.Dialer{}).DialContext(dialCtx, "tcp", addr)
	if err != nil {
		log.Error("dial failed", "err", err)
		os.Exit(1)
	}
	defer conn.Close()

	br := bufio.NewReader(conn)
	bw := bufio.NewWriter(conn)

	// 1) challenge
	line, err := br.ReadString('\n')
	if err != nil {
		log.Error("read challenge failed", "err", err)
		os.Exit(1)
	}
	var ch entity.Challenge
	if err := json.Unmarshal([]byte(strings.TrimSpace(line)), &ch); err != nil {
		log.Error("unmarshal challenge failed", "err", err)
		os.Exit(1)
	}
	if ch.Algo != entity.AlgoSloth {
		log.Error("unsupported challenge", "algo", ch.Algo)
		os.Exit(1)
	}
	c, err := pow.Decode(ch.Challenge)
	if err != nil {
		log.Error("decode challenge failed", "err", err)
		os.Exit(1)
	}
	log.Debug("challenge received", "id", ch.ID, "difficulty", c.Difficulty, "expires", ch.Expires)

	// 2) solve, giving up once the challenge expires
	solveCtx, cancelSolve := context.WithDeadline(context.Background(), time.Unix(ch.Expires, 0))
	defer cancelSolve()
	start := time.Now()
	sol, err := c.SolveContext(solveCtx)
	if err != nil {
		log.Error("challenge expired before solved", "err", err)
		os.Exit(2)
	}
	log.Debug("solved", "took", time.Since(start).String())

	// 3) send solution
	out, _ := json.Marshal(entity.Solution{Solution: sol})
	if _, err := bw.Write(append(out, '\n')); err != nil {
		log.Error("write solution failed", "err", err)
		os.Exit(1)
	}
	if err := bw.Flush(); err != nil {
		log.Error("flush failed", "err", err)
		os.Exit(1)
	}

	// 4) read quote
	reply, err := br.ReadString('\n')
	if err != nil {
		log.Error("read quote failed", "err", err)
		os.Exit(1)
	}
	fmt.Println(strings.TrimSpace(reply))
}
