//go:build unix

// Package pipetest emulates the application side of the scripting pipe
// pair so channel behavior can be exercised against real FIFOs.
package pipetest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// Script answers one received command with response lines. The blank
// sentinel line is appended by the responder, not the script.
type Script func(command string) []string

// Responder owns a pair of FIFO endpoints and answers commands the way the
// application would: accept a rendezvous, read one command line, write the
// scripted lines plus the blank sentinel, then wait for the caller to
// close its side before accepting the next exchange.
type Responder struct {
	toPath   string
	fromPath string
	script   Script

	quit      chan struct{}
	done      chan struct{}
	closeOnce sync.Once

	mu       sync.Mutex
	received []string
	served   int
}

// Start creates the two FIFOs under dir and begins accepting exchanges.
func Start(dir string, script Script) (*Responder, error) {
	r := &Responder{
		toPath:   filepath.Join(dir, "audacity_script_pipe.to.test"),
		fromPath: filepath.Join(dir, "audacity_script_pipe.from.test"),
		script:   script,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	if err := unix.Mkfifo(r.toPath, 0o600); err != nil {
		return nil, fmt.Errorf("mkfifo %s: %w", r.toPath, err)
	}
	if err := unix.Mkfifo(r.fromPath, 0o600); err != nil {
		return nil, fmt.Errorf("mkfifo %s: %w", r.fromPath, err)
	}
	go r.serve()
	return r, nil
}

// ToPath returns the endpoint the client writes commands to.
func (r *Responder) ToPath() string { return r.toPath }

// FromPath returns the endpoint the client reads responses from.
func (r *Responder) FromPath() string { return r.fromPath }

// Received returns the raw command lines read so far, terminators included.
func (r *Responder) Received() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.received...)
}

// Served reports how many complete exchanges have finished.
func (r *Responder) Served() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.served
}

// Close shuts the accept loop down and removes the FIFOs. Safe to call
// more than once.
func (r *Responder) Close() {
	r.closeOnce.Do(func() {
		close(r.quit)
		// Open both FIFOs ourselves so a loop blocked in a rendezvous can
		// observe quit. The handles stay open until the loop exits.
		nudgeWriter, writeErr := os.OpenFile(r.toPath, os.O_WRONLY|unix.O_NONBLOCK, 0)
		nudgeReader, readErr := os.OpenFile(r.fromPath, os.O_RDONLY|unix.O_NONBLOCK, 0)
		<-r.done
		if writeErr == nil {
			_ = nudgeWriter.Close()
		}
		if readErr == nil {
			_ = nudgeReader.Close()
		}
		_ = os.Remove(r.toPath)
		_ = os.Remove(r.fromPath)
	})
}

func (r *Responder) serve() {
	defer close(r.done)
	for {
		select {
		case <-r.quit:
			return
		default:
		}
		to, err := os.Open(r.toPath)
		if err != nil {
			return
		}
		from, err := os.OpenFile(r.fromPath, os.O_WRONLY, 0)
		if err != nil {
			_ = to.Close()
			return
		}
		select {
		case <-r.quit:
			_ = to.Close()
			_ = from.Close()
			return
		default:
		}
		r.serveOne(to, from)
		_ = to.Close()
		_ = from.Close()
	}
}

func (r *Responder) serveOne(to, from *os.File) {
	reader := bufio.NewReader(to)
	raw, err := reader.ReadString('\n')
	if err != nil {
		return
	}
	r.mu.Lock()
	r.received = append(r.received, raw)
	r.mu.Unlock()

	command := strings.TrimRight(raw, "\r\n\x00")
	for _, line := range r.script(command) {
		if _, err := fmt.Fprintf(from, "%s\n", line); err != nil {
			return
		}
	}
	if _, err := io.WriteString(from, "\n"); err != nil {
		return
	}

	// Drain until the client closes its write side so the next exchange
	// starts from a fresh rendezvous.
	_, _ = io.Copy(io.Discard, reader)

	r.mu.Lock()
	r.served++
	r.mu.Unlock()
}
