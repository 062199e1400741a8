package main

import (
	"context"
	"encoding/hex"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/danmuck/mobwire/internal/config"
	"github.com/danmuck/mobwire/internal/protocol"
	"github.com/danmuck/mobwire/internal/protocol/packet"
	"github.com/danmuck/mobwire/internal/testutil/testlog"
	"github.com/danmuck/mobwire/internal/transport"
	"github.com/google/uuid"
)

func TestExampleConfigLoads(t *testing.T) {
	cfg, err := config.Load("ex.config.toml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ProtocolVersion != packet.ProtocolVersion {
		t.Fatalf("unexpected protocol version: %d", cfg.ProtocolVersion)
	}
	if cfg.Transport.Limits.MaxFrameBytes != transport.MaxFrameBytes {
		t.Fatalf("unexpected max frame bytes: %d", cfg.Transport.Limits.MaxFrameBytes)
	}
	if cfg.Transport.ConnectTimeout != 5*time.Second {
		t.Fatalf("unexpected connect timeout: %v", cfg.Transport.ConnectTimeout)
	}
}

func TestDefaultConfigPathShipsWithTree(t *testing.T) {
	if _, err := config.Load(filepath.Join("..", "..", defaultConfigPath)); err != nil {
		t.Fatalf("default config path: %v", err)
	}
}

func TestDecodeExampleHex(t *testing.T) {
	testlog.Start(t)
	data, err := protocol.Marshal(exampleAddMob())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := runDecode([]string{"-phase", "play", hex.EncodeToString(data)}); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := runDecode([]string{"-phase", "login", hex.EncodeToString(data)}); err == nil {
		t.Fatalf("expected login phase to reject add_mob bytes")
	}
	if err := runDecode([]string{"zz"}); err == nil {
		t.Fatalf("expected invalid hex error")
	}
}

func TestLayoutsListsEveryPool(t *testing.T) {
	if err := runLayouts(); err != nil {
		t.Fatalf("layouts: %v", err)
	}
}

// serveStatus answers one status exchange the way a server would.
func serveStatus(ln net.Listener, done chan<- error) {
	raw, err := ln.Accept()
	if err != nil {
		done <- err
		return
	}
	conn := transport.NewConn(raw, packet.NewPool(packet.Handshake, packet.Serverbound), transport.DefaultConfig())
	defer conn.Close()

	pk, err := conn.ReadPacket()
	if err != nil {
		done <- err
		return
	}
	intent, ok := pk.(*packet.ClientIntention)
	if !ok || intent.Intention != packet.IntentionStatus {
		done <- errUnexpected(pk)
		return
	}
	conn.SetPool(packet.NewPool(packet.Status, packet.Serverbound))
	if _, err := conn.ReadPacket(); err != nil {
		done <- err
		return
	}
	if err := conn.WritePacket(&packet.StatusResponse{Status: `{"players":{"online":3}}`}); err != nil {
		done <- err
		return
	}
	pk, err = conn.ReadPacket()
	if err != nil {
		done <- err
		return
	}
	ping, ok := pk.(*packet.Ping)
	if !ok {
		done <- errUnexpected(pk)
		return
	}
	done <- conn.WritePacket(&packet.Pong{Time: ping.Time})
}

type unexpectedPacketError struct{ name string }

func (e unexpectedPacketError) Error() string { return "unexpected packet " + e.name }

func errUnexpected(pk packet.Packet) error {
	return unexpectedPacketError{name: pk.Layout().Name}
}

func TestPingAgainstStatusServer(t *testing.T) {
	testlog.Start(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	done := make(chan error, 1)
	go serveStatus(ln, done)

	cfg := config.Default()
	cfg.Address = ln.Addr().String()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ping(ctx, cfg); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("server: %v", err)
	}
}

// serveLogin reads the login handshake and Hello, then answers with reply.
func serveLogin(ln net.Listener, reply packet.Packet, names chan<- string, done chan<- error) {
	raw, err := ln.Accept()
	if err != nil {
		done <- err
		return
	}
	conn := transport.NewConn(raw, packet.NewPool(packet.Handshake, packet.Serverbound), transport.DefaultConfig())
	defer conn.Close()

	pk, err := conn.ReadPacket()
	if err != nil {
		done <- err
		return
	}
	intent, ok := pk.(*packet.ClientIntention)
	if !ok || intent.Intention != packet.IntentionLogin {
		done <- errUnexpected(pk)
		return
	}
	conn.SetPool(packet.NewPool(packet.Login, packet.Serverbound))
	pk, err = conn.ReadPacket()
	if err != nil {
		done <- err
		return
	}
	hello, ok := pk.(*packet.Hello)
	if !ok {
		done <- errUnexpected(pk)
		return
	}
	names <- hello.Name
	done <- conn.WritePacket(reply)
}

func TestLoginSendsConfiguredUsername(t *testing.T) {
	testlog.Start(t)
	cases := map[string]struct {
		reply   packet.Packet
		wantErr string
	}{
		"accepted":    {reply: &packet.GameProfile{UUID: uuid.New(), Name: "Alex"}},
		"compression": {reply: &packet.LoginCompression{Threshold: 256}},
		"rejected":    {reply: &packet.LoginDisconnect{Reason: `{"text":"whitelist"}`}, wantErr: "whitelist"},
	}
	for name, tc := range cases {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("listen: %v", err)
		}
		names := make(chan string, 1)
		done := make(chan error, 1)
		go serveLogin(ln, tc.reply, names, done)

		cfg := config.Default()
		cfg.Address = ln.Addr().String()
		cfg.Username = "Alex"
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = login(ctx, cfg)
		cancel()
		if serr := <-done; serr != nil {
			t.Fatalf("%s: server: %v", name, serr)
		}
		ln.Close()

		if got := <-names; got != "Alex" {
			t.Fatalf("%s: server saw username %q", name, got)
		}
		if tc.wantErr == "" && err != nil {
			t.Fatalf("%s: login: %v", name, err)
		}
		if tc.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tc.wantErr)) {
			t.Fatalf("%s: expected error containing %q, got %v", name, tc.wantErr, err)
		}
	}
}
