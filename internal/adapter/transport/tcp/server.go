package tcp

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dayanaadylkhanova/kctf-pow/internal/entity"
	"github.com/dayanaadylkhanova/kctf-pow/internal/metrics"
)

const (
	replyBadJSON = "invalid solution json\n"
	replyPoWFail = "pow verification failed\n"
)

type Server struct {
	log       *slog.Logger
	addr      string
	ttl       time.Duration
	pow       PoW
	quotes    Quote
	metrics   *metrics.Metrics
	ln        net.Listener
	wg        sync.WaitGroup
	connsMu   sync.Mutex
	active    map[net.Conn]struct{}
	shutdownT time.Duration
}

func NewServer(log *slog.Logger, addr string, ttl time.Duration, shutdown time.Duration, pow PoW, quotes Quote, m *metrics.Metrics) *Server {
	if m == nil {
		m = metrics.Nop()
	}
	return &Server{
		log:       log,
		addr:      addr,
		ttl:       ttl,
		shutdownT: shutdown,
		pow:       pow,
		quotes:    quotes,
		metrics:   m,
		active:    make(map[net.Conn]struct{}),
	}
}

func (s *Server) Run(ctx context.Context, difficulty uint32) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	s.ln = ln
	s.log.Info("server started", "addr", ln.Addr().String(), "difficulty", difficulty, "ttl", s.ttl.String())

	errCh := make(chan error, 1)
	go func() { errCh <- s.acceptLoop(difficulty) }()

	select {
	case <-ctx.Done():
		s.log.Info("shutdown: closing listener")
		_ = s.ln.Close()

		s.connsMu.Lock()
		for c := range s.active {
			_ = c.SetDeadline(time.Now().Add(200 * time.Millisecond))
			if tc, ok := c.(*net.TCPConn); ok {
				_ = tc.CloseWrite()
			}
		}
		s.connsMu.Unlock()

		done := make(chan struct{})
		go func() { s.wg.Wait(); close(done) }()
		select {
		case <-done:
			s.log.Info("shutdown: all connections drained")
		case <-time.After(s.shutdownT):
			s.log.Warn("shutdown: force-close remaining connections")
			s.connsMu.Lock()
			for c := range s.active {
				_ = c.Close()
			}
			s.connsMu.Unlock()
		}
		return nil

	case err := <-errCh:
		return err
	}
}

func (s *Server) acceptLoop(difficulty uint32) error {
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				s.log.Warn("temporary accept error", "err", err)
				time.Sleep(50 * time.Millisecond)
				continue
			}
			return fmt.Errorf("accept: %w", err)
		}
		s.track(conn, true)
		s.wg.Add(1)
		go func(c net.Conn) {
			defer s.wg.Done()
			defer s.track(c, false)
			s.handle(c, difficulty)
		}(conn)
	}
}

func (s *Server) track(c net.Conn, add bool) {
	s.connsMu.Lock()
	if add {
		s.active[c] = struct{}{}
		s.metrics.ConnOpened()
	} else {
		delete(s.active, c)
		s.metrics.ConnClosed()
	}
	s.connsMu.Unlock()
}

func (s *Server) handle(conn net.Conn, difficulty uint32) {
	defer conn.Close()
	_ = conn.SetDeadline(time.Now().Add(2 * s.ttl))
	log := s.log.With("conn_id", uuid.NewString(), "remote", conn.RemoteAddr().String())

	ch, err := s.pow.NewChallenge(difficulty, int64(s.ttl.Seconds()))
	if err != nil {
		log.Error("challenge create failed", "err", err)
		return
	}
	bw := bufio.NewWriter(conn)
	br := bufio.NewReader(conn)

	payload, err := json.Marshal(ch)
	if err != nil {
		log.Error("challenge marshal failed", "err", err)
		return
	}
	if _, err := bw.Write(append(payload, '\n')); err != nil {
		log.Debug("write challenge failed", "err", err)
		return
	}
	if err := bw.Flush(); err != nil {
		log.Debug("write challenge failed", "err", err)
		return
	}
	s.metrics.ChallengeIssued()
	log.Debug("challenge issued",
		"challenge_id", ch.ID,
		"expires", ch.Expires,
		"difficulty", ch.Difficulty,
	)

	line, err := br.ReadString('\n')
	if err != nil {
		s.metrics.Verified(metrics.ResultIO, 0)
		log.Debug("read solution failed", "err", err)
		return
	}
	line = strings.TrimSpace(line)
	var sol entity.Solution
	if err := json.Unmarshal([]byte(line), &sol); err != nil || sol.Solution == "" {
		s.reply(bw, replyBadJSON)
		s.metrics.Verified(metrics.ResultBadJSON, 0)
		log.Debug("bad solution", "err", err)
		return
	}

	start := time.Now()
	err = s.pow.Verify(ch, sol)
	s.metrics.Verified(verifyResult(err), time.Since(start))
	if err != nil {
		s.reply(bw, replyPoWFail)
		log.Debug("pow failed", "challenge_id", ch.ID, "reason", err.Error())
		return
	}

	s.reply(bw, s.quotes.Random()+"\n")
	log.Info("success", "challenge_id", ch.ID)
}

func (s *Server) reply(bw *bufio.Writer, msg string) {
	_, _ = bw.WriteString(msg)
	_ = bw.Flush()
}

func verifyResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultOK
	case errors.Is(err, entity.ErrExpired):
		return metrics.ResultExpired
	case errors.Is(err, entity.ErrUnsupported):
		return metrics.ResultUnsupported
	case errors.Is(err, entity.ErrMalformed):
		return metrics.ResultMalformed
	default:
		return metrics.ResultInvalid
	}
}
