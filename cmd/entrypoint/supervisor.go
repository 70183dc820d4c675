package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// config locates the child binaries and the addresses they share.
type config struct {
	UsersBin      string        `env:"USERBOARD_ENTRYPOINT_USERS_BIN" envDefault:"/app/users"`
	AdminBin      string        `env:"USERBOARD_ENTRYPOINT_ADMIN_BIN" envDefault:"/app/admin"`
	UsersPort     int           `env:"USERBOARD_USERS_PORT" envDefault:"8093"`
	AdminAddr     string        `env:"USERBOARD_ADMIN_ADDR" envDefault:"0.0.0.0:8082"`
	ShutdownGrace time.Duration `env:"USERBOARD_ENTRYPOINT_SHUTDOWN_GRACE" envDefault:"10s"`
}

type childSpec struct {
	name string
	path string
	args []string
}

type plan struct {
	children []childSpec
	grace    time.Duration
}

func (c config) children() plan {
	usersAddr := fmt.Sprintf("127.0.0.1:%d", c.UsersPort)
	return plan{
		children: []childSpec{
			{name: "users", path: c.UsersBin, args: []string{fmt.Sprintf("-port=%d", c.UsersPort)}},
			{name: "admin", path: c.AdminBin, args: []string{"-http-addr=" + c.AdminAddr, "-users-addr=" + usersAddr}},
		},
		grace: c.ShutdownGrace,
	}
}

type childProcess struct {
	name string
	cmd  *exec.Cmd
}

type processExit struct {
	name string
	err  error
}

// supervise starts every child in order and returns the exit code to use
// once the first child exits or ctx ends.
func supervise(ctx context.Context, p plan) int {
	var running []*childProcess
	exitCh := make(chan processExit, len(p.children))
	for _, spec := range p.children {
		child, err := startChild(spec)
		if err != nil {
			log.Printf("%v", err)
			terminateChildren(running)
			waitForChildren(exitCh, len(running), p.grace, running)
			return 1
		}
		running = append(running, child)
		go waitChild(child, exitCh)
	}

	select {
	case <-ctx.Done():
		log.Printf("shutdown signal received")
		terminateChildren(running)
		waitForChildren(exitCh, len(running), p.grace, running)
		return 0
	case exit := <-exitCh:
		log.Printf("%s exited: %v", exit.name, exit.err)
		terminateChildren(running)
		waitForChildren(exitCh, len(running)-1, p.grace, running)
		return exitCode(exit.err)
	}
}

func startChild(spec childSpec) (*childProcess, error) {
	cmd := exec.Command(spec.path, spec.args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", spec.name, err)
	}
	return &childProcess{name: spec.name, cmd: cmd}, nil
}

func waitChild(child *childProcess, exitCh chan<- processExit) {
	err := child.cmd.Wait()
	exitCh <- processExit{name: child.name, err: err}
}

func terminateChildren(children []*childProcess) {
	for _, child := range children {
		if child == nil || child.cmd == nil || child.cmd.Process == nil {
			continue
		}
		_ = child.cmd.Process.Signal(syscall.SIGTERM)
	}
}

// waitForChildren drains remaining exits, killing stragglers after timeout.
func waitForChildren(exitCh <-chan processExit, remaining int, timeout time.Duration, children []*childProcess) {
	if remaining <= 0 {
		return
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for remaining > 0 {
		select {
		case <-exitCh:
			remaining--
		case <-timer.C:
			for _, child := range children {
				if child == nil || child.cmd == nil || child.cmd.Process == nil || child.cmd.ProcessState != nil {
					continue
				}
				_ = child.cmd.Process.Kill()
			}
			return
		}
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 1
}
