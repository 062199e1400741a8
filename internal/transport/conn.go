package transport

import (
	"context"
	"fmt"
	"math/rand"
	"net"
	"sync/atomic"
	"time"

	"github.com/danmuck/mobwire/internal/protocol"
	"github.com/danmuck/mobwire/internal/protocol/packet"
	"github.com/rs/zerolog/log"
)

// Conn reads and writes packets on a stream connection. One goroutine may
// read while another writes; concurrent reads or concurrent writes are not
// supported. The inbound pool may be swapped from any goroutine.
type Conn struct {
	conn   net.Conn
	cfg    Config
	pool   atomic.Pointer[packet.Pool]
	reader *Reader
	writer *Writer
}

// NewConn wraps conn. Inbound packets are decoded with pool.
func NewConn(conn net.Conn, pool packet.Pool, cfg Config) *Conn {
	c := &Conn{
		conn:   conn,
		cfg:    cfg,
		reader: NewReader(conn, cfg.Limits),
		writer: NewWriter(conn, cfg.Limits),
	}
	c.pool.Store(&pool)
	return c
}

// Dial connects to addr, retrying with backoff until MaxConnectAttempts
// is reached (0 retries forever) or ctx is done.
func Dial(ctx context.Context, addr string, pool packet.Pool, cfg Config) (*Conn, error) {
	dialer := net.Dialer{Timeout: cfg.ConnectTimeout}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for attempt := 1; ; attempt++ {
		conn, err := dialer.DialContext(ctx, "tcp", addr)
		if err == nil {
			if tcp, ok := conn.(*net.TCPConn); ok {
				_ = tcp.SetNoDelay(true)
			}
			log.Info().Str("addr", addr).Int("attempt", attempt).Msg("transport connected")
			return NewConn(conn, pool, cfg), nil
		}
		if cfg.MaxConnectAttempts > 0 && attempt >= cfg.MaxConnectAttempts {
			return nil, fmt.Errorf("transport: dial %s: %d attempts: %w", addr, attempt, err)
		}
		delay := cfg.Backoff.Delay(attempt, rng)
		log.Warn().Err(err).Str("addr", addr).Int("attempt", attempt).Dur("retry_in", delay).Msg("transport dial failed")
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// SetPool switches the layouts used for inbound packets, e.g. after a
// phase change. A read already in progress keeps the pool it started with.
func (c *Conn) SetPool(pool packet.Pool) {
	c.pool.Store(&pool)
}

func (c *Conn) Pool() packet.Pool {
	return *c.pool.Load()
}

// ReadPacket reads and decodes the next packet. Decode failures are
// returned as is; the caller decides whether the session survives.
func (c *Conn) ReadPacket() (packet.Packet, error) {
	if c.cfg.ReadTimeout > 0 {
		_ = c.conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout))
	}
	frame, err := c.reader.ReadFrame()
	if err != nil {
		return nil, err
	}
	return protocol.Unmarshal(c.Pool(), frame)
}

// WritePacket encodes pk and writes it as one frame.
func (c *Conn) WritePacket(pk packet.Packet) error {
	data, err := protocol.Marshal(pk)
	if err != nil {
		return err
	}
	if c.cfg.WriteTimeout > 0 {
		_ = c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout))
	}
	return c.writer.WriteFrame(data)
}

func (c *Conn) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *Conn) Close() error {
	return c.conn.Close()
}
