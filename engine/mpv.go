package engine

import (
	"crypto/rand"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/cine-cli/cine/key"
	"github.com/cine-cli/cine/log"
	"github.com/spf13/viper"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
)

// MPV implements the Engine interface using mpv's JSON-IPC protocol.
type MPV struct {
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when mpv process exits
	mu         sync.Mutex    // Protects socket writes
}

// NewMPV creates a new MPV engine instance (does not start the process).
func NewMPV() *MPV {
	return &MPV{
		exited: make(chan struct{}),
	}
}

// Load starts playback of the given file path. The first call spawns an
// idle mpv process bound to a private IPC socket; subsequent calls reuse
// the running instance via the loadfile command.
func (m *MPV) Load(path string) error {
	safePath, err := sanitizeMediaTarget(path)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if m.IsRunning() {
		if _, err := m.sendCommand([]interface{}{"loadfile", safePath, "replace"}); err != nil {
			return fmt.Errorf("load %q: %w", safePath, err)
		}
		return nil
	}

	return m.spawn(safePath)
}

// spawn launches a fresh mpv process with the given file as its first entry.
func (m *MPV) spawn(path string) error {
	// Random socket path under os.TempDir() for cross-platform support
	// (macOS $TMPDIR is /var/folders/... not /tmp/).
	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(os.TempDir(), fmt.Sprintf("cine-%x.sock", randomBytes))
	}

	// Pass ONLY what the controller needs. No --vo, --profile or --hwdec,
	// the user's mpv.conf stays in charge of rendering.
	// --keep-open parks the engine at end-of-file so the end state stays observable.
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		"--force-window=yes",
		"--idle=yes",
		"--keep-open=yes",
		path,
	}

	binary := viper.GetString(key.PlayerDefault)
	if binary == "" {
		binary = "mpv"
	}

	m.cmd = exec.Command(binary, args...)

	// Detach from parent process group to prevent cascading shell panics.
	m.cmd.SysProcAttr = sysProcAttr()

	// Disable standard pipes to prevent resource leaks.
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", binary, err)
	}

	// Background goroutine to reap the process and prevent zombies
	m.exited = make(chan struct{})
	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()

	// Wait for the IPC socket to become available
	if err := m.waitForSocket(); err != nil {
		// If socket never became ready, kill the orphaned process
		if m.cmd.Process != nil {
			select {
			case <-m.exited:
				// Already exited
			default:
				log.Warnf("killing %s: socket never became ready", binary)
				_ = m.cmd.Process.Kill()
			}
		}
		return fmt.Errorf("%s socket not ready: %w", binary, err)
	}

	return nil
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// waitForSocket polls until the mpv IPC socket is accepting connections.
func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		// Check if process already exited
		select {
		case <-m.exited:
			return fmt.Errorf("engine exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// TogglePause inverts the pause property.
func (m *MPV) TogglePause() error {
	_, err := m.sendCommand([]interface{}{"cycle", "pause"})
	return err
}

// Stop unloads the current media. With --idle the process keeps running.
func (m *MPV) Stop() error {
	_, err := m.sendCommand([]interface{}{"stop"})
	return err
}

// Seek moves playback to the given absolute position in milliseconds.
func (m *MPV) Seek(ms int) error {
	_, err := m.sendCommand([]interface{}{"seek", float64(ms) / 1000, "absolute"})
	return err
}

// SetVolume sets the engine volume on the 0-100 scale.
func (m *MPV) SetVolume(volume int) error {
	return m.set("volume", volume)
}

// SetMute forces the engine mute flag.
func (m *MPV) SetMute(muted bool) error {
	return m.set("mute", muted)
}

// State derives the engine condition from observable mpv properties.
// The lookup order matters: end-of-file is checked before idle because a
// finished file under --keep-open reports both position and eof.
func (m *MPV) State() State {
	if !m.IsRunning() {
		return NotLoaded
	}

	if eof, err := m.getBoolProperty("eof-reached"); err == nil && eof {
		return Ended
	}

	if idle, err := m.getBoolProperty("idle-active"); err == nil && idle {
		return Stopped
	}

	paused, err := m.getBoolProperty("pause")
	if err != nil {
		return Loading
	}
	if paused {
		return Paused
	}
	return Playing
}

// PositionMs returns the current playback position in milliseconds.
func (m *MPV) PositionMs() (int, error) {
	pos, err := m.getFloatProperty("time-pos")
	if err != nil {
		return 0, err
	}
	return int(pos * 1000), nil
}

// DurationMs returns the total media length in milliseconds.
// A zero return with nil error means mpv has not probed the length yet.
func (m *MPV) DurationMs() (int, error) {
	dur, err := m.getFloatProperty("duration")
	if err != nil {
		// "property unavailable" means the demuxer has not reported yet
		if strings.Contains(err.Error(), "property unavailable") {
			return 0, nil
		}
		return 0, err
	}
	return int(dur * 1000), nil
}

// IsRunning reports whether mpv is responding to IPC commands.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" {
		return false
	}

	// Fast check: process already exited?
	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]interface{}{"get_property", "pid"})
	return err == nil
}

// Close shuts down the mpv process and cleans up resources.
func (m *MPV) Close() error {
	if m.socketPath == "" {
		return nil
	}

	// Try graceful quit via IPC
	_, _ = m.sendCommand([]interface{}{"quit"})

	// Wait for process to exit (with timeout)
	select {
	case <-m.exited:
		// Clean exit
	case <-time.After(3 * time.Second):
		// Force kill if graceful quit didn't work
		_ = killProcess(m.cmd)
	}

	// Clean up the socket file
	_ = os.Remove(m.socketPath)

	return nil
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

// set assigns a property value via IPC.
func (m *MPV) set(property string, value interface{}) error {
	_, err := m.sendCommand([]interface{}{"set_property", property, value})
	return err
}

// getFloatProperty retrieves a float64 mpv property via IPC.
func (m *MPV) getFloatProperty(name string) (float64, error) {
	data, err := m.sendCommand([]interface{}{"get_property", name})
	if err != nil {
		return 0, err
	}

	if data == nil {
		return 0, fmt.Errorf("property %s: nil response", name)
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}

	return val, nil
}

// getBoolProperty retrieves a bool mpv property via IPC.
func (m *MPV) getBoolProperty(name string) (bool, error) {
	data, err := m.sendCommand([]interface{}{"get_property", name})
	if err != nil {
		return false, err
	}

	val, ok := data.(bool)
	if !ok {
		return false, fmt.Errorf("property %s: expected bool, got %T", name, data)
	}

	return val, nil
}

// sanitizeMediaTarget validates that a path is safe to pass to mpv.
func sanitizeMediaTarget(path string) (string, error) {
	p := strings.TrimSpace(path)
	if p == "" {
		return "", fmt.Errorf("empty path")
	}

	// Reject control characters
	if strings.ContainsAny(p, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in path")
	}

	// Prevent flag injection: paths must not start with -
	if strings.HasPrefix(p, "-") {
		return "", fmt.Errorf("path must not start with '-' (looks like a flag)")
	}

	return filepath.Clean(p), nil
}
