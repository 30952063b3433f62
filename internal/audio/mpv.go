package audio

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"time"

	"github.com/castwave/castwave/internal/domain"
)

const (
	// observer ids for mpv property-change events
	observeTimePos  = 1
	observeDuration = 2

	connectRetries = 20
	connectDelay   = 100 * time.Millisecond
)

// Player drives mpv as a headless audio backend over its JSON IPC socket.
// mpv reports time-pos and duration property changes, which are forwarded
// to the registered AudioEvents sink; nothing here polls.
type Player struct {
	command    string
	socketPath string
	logger     *slog.Logger

	mu     sync.Mutex
	events domain.AudioEvents
	cmd    *exec.Cmd
	conn   net.Conn
	reqID  int
}

// NewPlayer creates an mpv-backed player. An empty command selects "mpv"
// from PATH. The process is started lazily on the first Load.
func NewPlayer(command string, logger *slog.Logger) *Player {
	if command == "" {
		command = "mpv"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Player{
		command:    command,
		socketPath: filepath.Join(os.TempDir(), fmt.Sprintf("castwave-mpv-%d.sock", os.Getpid())),
		logger:     logger,
	}
}

// SetEvents registers the callback sink for time and duration updates.
func (p *Player) SetEvents(events domain.AudioEvents) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = events
}

// Load replaces the current stream with url, paused.
func (p *Player) Load(url string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureStarted(); err != nil {
		return err
	}
	if err := p.send("set_property", "pause", true); err != nil {
		return err
	}
	return p.send("loadfile", url, "replace")
}

func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.send("set_property", "pause", false)
}

func (p *Player) Pause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.send("set_property", "pause", true)
}

// Seek moves to an absolute position in seconds.
func (p *Player) Seek(t float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.send("seek", t, "absolute")
}

// Stop quits mpv and tears down the IPC connection.
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}

	_ = p.send("quit")
	p.conn.Close()
	p.conn = nil

	if p.cmd != nil && p.cmd.Process != nil {
		// mpv exits on quit; reap it
		go p.cmd.Wait()
		p.cmd = nil
	}
	os.Remove(p.socketPath)
	return nil
}

// ensureStarted launches mpv and connects to its IPC socket. Callers hold mu.
func (p *Player) ensureStarted() error {
	if p.conn != nil {
		return nil
	}

	cmd := exec.Command(p.command,
		"--no-video",
		"--no-terminal",
		"--idle=yes",
		"--pause",
		"--input-ipc-server="+p.socketPath,
	)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", p.command, err)
	}
	p.cmd = cmd
	p.logger.Info("audio backend started", "command", p.command, "pid", cmd.Process.Pid)

	conn, err := p.dial()
	if err != nil {
		cmd.Process.Kill()
		p.cmd = nil
		return err
	}
	p.conn = conn

	go p.readLoop(conn)

	if err := p.send("observe_property", observeTimePos, "time-pos"); err != nil {
		return err
	}
	return p.send("observe_property", observeDuration, "duration")
}

// dial retries until mpv has created its socket.
func (p *Player) dial() (net.Conn, error) {
	var lastErr error
	for i := 0; i < connectRetries; i++ {
		conn, err := net.Dial("unix", p.socketPath)
		if err == nil {
			return conn, nil
		}
		lastErr = err
		time.Sleep(connectDelay)
	}
	return nil, fmt.Errorf("failed to connect to mpv ipc socket: %w", lastErr)
}

// send writes one IPC command. Callers hold mu.
func (p *Player) send(args ...interface{}) error {
	if p.conn == nil {
		return fmt.Errorf("audio backend not running")
	}
	p.reqID++
	msg := map[string]interface{}{
		"command":    args,
		"request_id": p.reqID,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	if _, err := p.conn.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("ipc write failed: %w", err)
	}
	return nil
}

// ipcEvent is the subset of mpv's event stream the player cares about.
type ipcEvent struct {
	Event string      `json:"event"`
	ID    int         `json:"id"`
	Name  string      `json:"name"`
	Data  interface{} `json:"data"`
}

// readLoop forwards property-change events to the AudioEvents sink until
// the connection closes.
func (p *Player) readLoop(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var ev ipcEvent
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			continue
		}
		if ev.Event != "property-change" {
			continue
		}

		value, ok := ev.Data.(float64)
		if !ok {
			continue
		}

		p.mu.Lock()
		events := p.events
		p.mu.Unlock()
		if events == nil {
			continue
		}

		switch ev.ID {
		case observeTimePos:
			events.OnTimeUpdate(value)
		case observeDuration:
			events.OnDurationChange(value)
		}
	}
	p.logger.Debug("audio backend ipc stream closed")
}
