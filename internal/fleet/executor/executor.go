package executor

import (
	"VCS_SMS_Fleet/internal/fleet/model"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

//go:generate mockgen -source=executor.go -destination=mock_executor.go -package=executor

const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultCommandTimeout = 60 * time.Second

	ProbeCommand = `echo "Connection successful"`
)

// Executor opens one authenticated session per call and runs a single command.
// Failures are returned as *ExecError, never as panics.
type Executor interface {
	Execute(ctx context.Context, server model.Server, command string) (string, error)
}

type Config struct {
	ConnectTimeout time.Duration
	CommandTimeout time.Duration
	KnownHostsPath string
}

type sshExecutor struct {
	credentials     []CredentialProvider
	connectTimeout  time.Duration
	commandTimeout  time.Duration
	hostKeyCallback ssh.HostKeyCallback
	dial            func(ctx context.Context, network, address string) (net.Conn, error)
	logger          *zap.Logger
}

type commandResult struct {
	output []byte
	err    error
}

func (e *sshExecutor) Execute(ctx context.Context, server model.Server, command string) (string, error) {
	signer, err := ResolveSigner(e.credentials, server)
	if err != nil {
		return "", err
	}
	addr := server.Address()
	if err = ctx.Err(); err != nil {
		return "", connectivityError(fmt.Sprintf("connection to %s cancelled: %v", addr, err), err)
	}
	start := time.Now()
	client, err := e.connect(ctx, addr, server.Username, signer)
	if err != nil {
		e.logger.Debug("ssh connect failed", zap.String("address", addr), zap.Error(err))
		return "", err
	}
	defer client.Close()

	output, err := e.run(ctx, client, command)
	e.logger.Debug("ssh command finished",
		zap.String("address", addr),
		zap.Duration("duration", time.Since(start)),
		zap.Bool("success", err == nil))
	return output, err
}

func (e *sshExecutor) connect(ctx context.Context, addr string, username string, signer ssh.Signer) (*ssh.Client, error) {
	dialCtx, cancel := context.WithTimeout(ctx, e.connectTimeout)
	defer cancel()
	conn, err := e.dial(dialCtx, "tcp", addr)
	if err != nil {
		if isTimeout(err) {
			return nil, connectivityError(fmt.Sprintf("connection to %s timed out after %s", addr, e.connectTimeout), err)
		}
		return nil, connectivityError(fmt.Sprintf("failed to connect to %s: %v", addr, err), err)
	}
	// the handshake shares the connect budget
	_ = conn.SetDeadline(time.Now().Add(e.connectTimeout))
	c, chans, reqs, err := ssh.NewClientConn(conn, addr, &ssh.ClientConfig{
		User:            username,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: e.hostKeyCallback,
		Timeout:         e.connectTimeout,
	})
	if err != nil {
		_ = conn.Close()
		if strings.Contains(err.Error(), "unable to authenticate") {
			return nil, authConfigurationError("SSH authentication failed", err)
		}
		if isTimeout(err) {
			return nil, connectivityError(fmt.Sprintf("SSH handshake with %s timed out after %s", addr, e.connectTimeout), err)
		}
		return nil, connectivityError(fmt.Sprintf("SSH handshake with %s failed: %v", addr, err), err)
	}
	_ = conn.SetDeadline(time.Time{})
	return ssh.NewClient(c, chans, reqs), nil
}

func (e *sshExecutor) run(ctx context.Context, client *ssh.Client, command string) (string, error) {
	session, err := client.NewSession()
	if err != nil {
		return "", remoteCommandError(fmt.Sprintf("failed to open SSH session: %v", err), err)
	}
	defer session.Close()

	done := make(chan commandResult, 1)
	go func() {
		out, runErr := session.CombinedOutput(command)
		done <- commandResult{output: out, err: runErr}
	}()

	timer := time.NewTimer(e.commandTimeout)
	defer timer.Stop()
	select {
	case res := <-done:
		if res.err != nil {
			// a non-zero exit status still carries meaningful output
			var exitErr *ssh.ExitError
			if errors.As(res.err, &exitErr) {
				return string(res.output), nil
			}
			return "", remoteCommandError(fmt.Sprintf("remote command failed: %v", res.err), res.err)
		}
		return string(res.output), nil
	case <-timer.C:
		_ = client.Close()
		return "", connectivityError(fmt.Sprintf("remote command timed out after %s", e.commandTimeout), nil)
	case <-ctx.Done():
		_ = client.Close()
		return "", connectivityError(fmt.Sprintf("remote command aborted: %v", ctx.Err()), ctx.Err())
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Probe runs a trivial command to verify the server accepts sessions.
func Probe(ctx context.Context, e Executor, server model.Server) (string, error) {
	return e.Execute(ctx, server, ProbeCommand)
}

func NewSSHExecutor(cfg Config, logger *zap.Logger) (Executor, error) {
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.CommandTimeout <= 0 {
		cfg.CommandTimeout = DefaultCommandTimeout
	}
	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if cfg.KnownHostsPath != "" {
		cb, err := knownhosts.New(cfg.KnownHostsPath)
		if err != nil {
			return nil, fmt.Errorf("NewSSHExecutor: %w", err)
		}
		hostKeyCallback = cb
	}
	dialer := &net.Dialer{}
	return &sshExecutor{
		credentials:     DefaultCredentialProviders(),
		connectTimeout:  cfg.ConnectTimeout,
		commandTimeout:  cfg.CommandTimeout,
		hostKeyCallback: hostKeyCallback,
		dial:            dialer.DialContext,
		logger:          logger,
	}, nil
}
