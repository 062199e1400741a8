package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/danmuck/mobwire/internal/config"
	"github.com/danmuck/mobwire/internal/logging"
	"github.com/danmuck/mobwire/internal/observability"
	"github.com/danmuck/mobwire/internal/protocol"
	"github.com/danmuck/mobwire/internal/protocol/layout"
	"github.com/danmuck/mobwire/internal/protocol/packet"
	"github.com/danmuck/mobwire/internal/transport"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: mobwirectl <command> [flags]

commands:
  example               print the framed add_mob example packet as hex
  decode [flags] <hex>  decode one framed packet
  layouts               list every registered packet layout
  ping [flags]          query a server status and measure latency
  login [flags]         start a login as the configured username
`

func main() {
	logging.ConfigureRuntime()
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "example":
		err = runExample()
	case "decode":
		err = runDecode(os.Args[2:])
	case "layouts":
		err = runLayouts()
	case "ping":
		err = runPing(os.Args[2:])
	case "login":
		err = runLogin(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Error().Err(err).Str("command", os.Args[1]).Msg("mobwirectl failed")
		os.Exit(1)
	}
}

func exampleAddMob() *packet.AddMob {
	return &packet.AddMob{
		EntityID:   300,
		UUID:       uuid.MustParse("00112233-4455-6677-8899-aabbccddeeff"),
		EntityType: 50,
		X:          1.5,
		Y:          64.0,
		Z:          -3.25,
		XRot:       10,
		YRot:       -5,
		YHeadRot:   0,
		XVel:       0,
		YVel:       400,
		ZVel:       65535,
	}
}

func runExample() error {
	data, err := protocol.Marshal(exampleAddMob())
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(data))
	return nil
}

func runDecode(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	phaseFlag := fs.String("phase", "game", "protocol phase (handshake, status, login, game)")
	dirFlag := fs.String("dir", "clientbound", "direction (clientbound, serverbound)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("decode: expected exactly one hex argument")
	}
	pool, err := parsePool(*phaseFlag, *dirFlag)
	if err != nil {
		return err
	}
	data, err := hex.DecodeString(strings.Join(strings.Fields(fs.Arg(0)), ""))
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	id, rec, err := protocol.UnmarshalRecord(pool, data)
	if err != nil {
		return err
	}
	logRecord(log.Info().Int32("type_id", id), rec).Msg("decoded " + rec.Layout().Name)
	return nil
}

func parsePool(phaseRaw, dirRaw string) (packet.Pool, error) {
	phase, err := packet.ParsePhase(phaseRaw)
	if err != nil {
		return packet.Pool{}, err
	}
	dir, err := packet.ParseDirection(dirRaw)
	if err != nil {
		return packet.Pool{}, err
	}
	return packet.NewPool(phase, dir), nil
}

func logRecord(ev *zerolog.Event, rec *layout.Record) *zerolog.Event {
	for _, name := range rec.Names() {
		v, _ := rec.Get(name)
		if nested, ok := v.(*layout.Record); ok {
			ev = ev.Dict(name, logRecord(zerolog.Dict(), nested))
			continue
		}
		ev = ev.Interface(name, v)
	}
	return ev
}

func runLayouts() error {
	for _, phase := range []packet.Phase{packet.Handshake, packet.Status, packet.Login, packet.Game} {
		for _, dir := range []packet.Direction{packet.Clientbound, packet.Serverbound} {
			pool := packet.NewPool(phase, dir)
			for _, id := range pool.IDs() {
				factory, err := pool.Lookup(id)
				if err != nil {
					return err
				}
				fmt.Printf("%-9s %-11s 0x%02x %s\n", phase, dir, id, factory().Layout())
			}
		}
	}
	return nil
}

const defaultConfigPath = "cmd/mobwirectl/ex.config.toml"

// loadConfig parses the -config flag for name and applies the file's log
// level and metrics listener.
func loadConfig(name string, args []string) (config.Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath, "path to the TOML config")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		return config.Config{}, err
	}
	if lvl, ok := logging.ParseLevel(cfg.LogLevel); ok {
		zerolog.SetGlobalLevel(lvl)
	}
	log.Info().Str("path", *configPath).Str("address", cfg.Address).Msg("loaded config")
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}
	return cfg, nil
}

func runPing(args []string) error {
	cfg, err := loadConfig("ping", args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return ping(ctx, cfg)
}

func runLogin(args []string) error {
	cfg, err := loadConfig("login", args)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return login(ctx, cfg)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", observability.Handler())
	log.Info().Str("addr", addr).Msg("serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("metrics server stopped")
	}
}

// ping runs the status exchange: handshake, status request, ping/pong.
func ping(ctx context.Context, cfg config.Config) error {
	conn, err := transport.Dial(ctx, cfg.Address, packet.NewPool(packet.Status, packet.Clientbound), cfg.Transport)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.WritePacket(&packet.ClientIntention{
		ProtocolVersion: cfg.ProtocolVersion,
		HostName:        cfg.HostName,
		Port:            cfg.Port,
		Intention:       packet.IntentionStatus,
	}); err != nil {
		return fmt.Errorf("write handshake: %w", err)
	}
	if err := conn.WritePacket(&packet.StatusRequest{}); err != nil {
		return fmt.Errorf("write status request: %w", err)
	}
	pk, err := conn.ReadPacket()
	if err != nil {
		return fmt.Errorf("read status: %w", err)
	}
	status, ok := pk.(*packet.StatusResponse)
	if !ok {
		return fmt.Errorf("expected status_response, got %s", pk.Layout().Name)
	}
	log.Info().Str("status", status.Status).Msg("server status")

	sent := time.Now()
	if err := conn.WritePacket(&packet.Ping{Time: sent.UnixMilli()}); err != nil {
		return fmt.Errorf("write ping: %w", err)
	}
	pk, err = conn.ReadPacket()
	if err != nil {
		return fmt.Errorf("read pong: %w", err)
	}
	pong, ok := pk.(*packet.Pong)
	if !ok {
		return fmt.Errorf("expected pong, got %s", pk.Layout().Name)
	}
	if pong.Time != sent.UnixMilli() {
		log.Warn().Int64("sent", sent.UnixMilli()).Int64("echoed", pong.Time).Msg("pong time mismatch")
	}
	log.Info().Dur("latency", time.Since(sent)).Msg("pong")
	return nil
}

// login sends the login handshake and Hello, then reports the first
// server answer. Compression and encryption are not negotiated, so the
// exchange stops there.
func login(ctx context.Context, cfg config.Config) error {
	conn, err := transport.Dial(ctx, cfg.Address, packet.NewPool(packet.Login, packet.Clientbound), cfg.Transport)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := conn.WritePacket(&packet.ClientIntention{
		ProtocolVersion: cfg.ProtocolVersion,
		HostName:        cfg.HostName,
		Port:            cfg.Port,
		Intention:       packet.IntentionLogin,
	}); err != nil {
		return fmt.Errorf("write handshake: %w", err)
	}
	if err := conn.WritePacket(&packet.Hello{Name: cfg.Username}); err != nil {
		return fmt.Errorf("write hello: %w", err)
	}
	pk, err := conn.ReadPacket()
	if err != nil {
		return fmt.Errorf("read login response: %w", err)
	}
	switch pk := pk.(type) {
	case *packet.GameProfile:
		log.Info().Str("uuid", pk.UUID.String()).Str("name", pk.Name).Msg("login accepted")
	case *packet.LoginCompression:
		log.Info().Int32("threshold", pk.Threshold).Msg("server requested compression, stopping")
	case *packet.LoginDisconnect:
		return fmt.Errorf("login rejected: %s", pk.Reason)
	default:
		return fmt.Errorf("unexpected login packet %s", pk.Layout().Name)
	}
	return nil
}
